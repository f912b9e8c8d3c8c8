package workflow

import "github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"

// ConfirmationField is one row of the read-only confirmation card. On
// updates Before carries the original value so the dialog can toggle
// between "show before" and "show after"; the toggle is purely a display
// concern and never changes what gets submitted.
type ConfirmationField struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Before string `json:"before,omitempty"`
	After  string `json:"after"`
}

// Confirmation is the read-only snapshot of a clean draft, re-displayed
// to the user before the write commits.
type Confirmation struct {
	Entity string              `json:"entity"`
	Action form.Action         `json:"action"`
	Fields []ConfirmationField `json:"fields"`
}

func (e *Engine) buildConfirmation(f *form.Form) *Confirmation {
	fields := make([]ConfirmationField, 0, len(e.schema.Fields))
	for _, field := range e.schema.Fields {
		cf := ConfirmationField{
			Name:  field.Name,
			Label: field.Label,
			After: f.Value(field.Name),
		}
		if f.Action() == form.ActionUpdate {
			cf.Before = f.Original(field.Name)
		}
		fields = append(fields, cf)
	}
	return &Confirmation{
		Entity: e.schema.Entity,
		Action: f.Action(),
		Fields: fields,
	}
}
