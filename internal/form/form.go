package form

import (
	"strings"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
)

// Action is the mode a drawer was opened in.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionRead   Action = "read"
)

// Field declares one editable attribute of an entity: its validators and
// the actions for which a non-empty value is mandatory. Label is the
// human-readable name shown on the confirmation card.
type Field struct {
	Name       string
	Label      string
	Rules      []validation.Rule
	RequiredOn []Action
}

func (f Field) requiredFor(action Action) bool {
	for _, a := range f.RequiredOn {
		if a == action {
			return true
		}
	}
	return false
}

// Schema describes every editable field of one entity type. Each concrete
// entity screen supplies only a Schema; the controller and workflow engine
// are shared.
type Schema struct {
	Entity string
	Fields []Field
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Form owns the draft of one entity being created or edited, plus its
// per-field error lists. Every schema field always has an error entry and
// that entry is always a non-nil slice.
type Form struct {
	schema   *Schema
	action   Action
	draft    map[string]string
	original map[string]string
	errors   map[string][]string
}

// New seeds a form from an optional source record (nil means empty
// defaults) and clears all errors. It must be called again whenever the
// identity of the edited record or the action mode changes, so stale
// errors never carry over.
func New(schema *Schema, action Action, source map[string]string) *Form {
	f := &Form{schema: schema}
	f.Initialize(source, action)
	return f
}

// Initialize reseeds the draft and resets every error list to empty.
func (f *Form) Initialize(source map[string]string, action Action) {
	f.action = action
	f.draft = make(map[string]string, len(f.schema.Fields))
	f.original = make(map[string]string, len(f.schema.Fields))
	f.errors = make(map[string][]string, len(f.schema.Fields))
	for _, field := range f.schema.Fields {
		value := ""
		if source != nil {
			value = source[field.Name]
		}
		f.draft[field.Name] = value
		f.original[field.Name] = value
		f.errors[field.Name] = []string{}
	}
}

// Reset returns the form to empty defaults in create mode.
func (f *Form) Reset() {
	f.Initialize(nil, f.action)
}

// Action returns the current mode.
func (f *Form) Action() Action { return f.action }

// SetField writes one draft value and recomputes only that field's error
// list; every other field is untouched.
func (f *Form) SetField(name, value string) {
	field, ok := f.schema.Field(name)
	if !ok {
		return
	}
	f.draft[name] = value
	f.errors[name] = validation.Collect(value, field.Rules...)
}

// SetError overwrites a field's error list, used by the duplicate-check
// gate to inject cross-record uniqueness violations.
func (f *Form) SetError(name string, messages ...string) {
	if _, ok := f.schema.Field(name); !ok {
		return
	}
	f.errors[name] = append([]string{}, messages...)
}

// ValidateAll recomputes every field's error list from the draft.
func (f *Form) ValidateAll() {
	for _, field := range f.schema.Fields {
		f.errors[field.Name] = validation.Collect(f.draft[field.Name], field.Rules...)
	}
}

// Value returns one draft value.
func (f *Form) Value(name string) string { return f.draft[name] }

// Original returns the seeded value of one field, for before/after
// comparison on updates.
func (f *Form) Original(name string) string { return f.original[name] }

// Draft returns a copy of the current draft.
func (f *Form) Draft() map[string]string {
	out := make(map[string]string, len(f.draft))
	for k, v := range f.draft {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the per-field error lists.
func (f *Form) Errors() map[string][]string {
	out := make(map[string][]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = append([]string{}, v...)
	}
	return out
}

// HasErrors reports whether any field currently has a violation.
func (f *Form) HasErrors() bool {
	for _, msgs := range f.errors {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Submittable is true only when every field required for the current
// action has a non-empty value and every error list is empty.
func (f *Form) Submittable() bool {
	for _, field := range f.schema.Fields {
		if field.requiredFor(f.action) && strings.TrimSpace(f.draft[field.Name]) == "" {
			return false
		}
	}
	return !f.HasErrors()
}
