package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/review"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/workflow"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// ListFunc fetches one entity collection from the upstream.
type ListFunc func(ctx context.Context, sess *upstream.Session) (interface{}, error)

// ToggleFunc flips one record's soft enabled/disabled state.
type ToggleFunc func(ctx context.Context, sess *upstream.Session, id string) *upstream.Result

// Entity binds one admin screen to its workflow parameterization. Every
// create/update drawer in the application is an instance of this table;
// no control flow is copied per entity.
type Entity struct {
	Name      string
	Label     string
	Engine    *workflow.Engine
	Toggle    ToggleFunc
	List      ListFunc
	Cacheable bool
}

// WorkflowRequest is the draft the UI posts for prepare and commit.
type WorkflowRequest struct {
	Action   form.Action       `json:"action" binding:"required"`
	RecordID string            `json:"recordId,omitempty"`
	Draft    map[string]string `json:"draft" binding:"required"`
	Original map[string]string `json:"original,omitempty"`
}

// Registry holds every entity workflow plus the shared collaborators.
type Registry struct {
	entities map[string]*Entity
	client   *upstream.Client
	notifier *notify.Notifier
	logger   *zap.Logger
}

// NewRegistry wires every entity screen of the admin application.
func NewRegistry(client *upstream.Client, notifier *notify.Notifier, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		entities: make(map[string]*Entity),
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
	r.register(r.customers())
	r.register(r.providers())
	r.register(r.equipment())
	r.register(r.categories())
	r.register(r.maintenanceTypes())
	r.register(r.catalogues())
	r.register(r.products())
	r.register(r.maintenance())
	r.register(r.scheduledMaintenance())
	return r
}

func (r *Registry) register(e *Entity) { r.entities[e.Name] = e }

// Get looks an entity up by route name.
func (r *Registry) Get(name string) (*Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Names returns the registered entity route names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prepare runs the validate + duplicate-check stage for one entity.
func (r *Registry) Prepare(ctx context.Context, sess *upstream.Session, entity string, req WorkflowRequest) (*workflow.PrepareOutcome, error) {
	engine, err := r.engineFor(entity, req.Action)
	if err != nil {
		return nil, err
	}
	return engine.Prepare(ctx, sess, buildForm(engine, req), req.RecordID), nil
}

// Commit performs the confirmed write for one entity.
func (r *Registry) Commit(ctx context.Context, sess *upstream.Session, entity string, req WorkflowRequest) (*workflow.CommitOutcome, error) {
	engine, err := r.engineFor(entity, req.Action)
	if err != nil {
		return nil, err
	}
	return engine.Commit(ctx, sess, buildForm(engine, req), req.RecordID, verbFor(req.Action))
}

// Toggle flips one record's status and emits the outcome toast.
func (r *Registry) Toggle(ctx context.Context, sess *upstream.Session, entity, id string) (*workflow.CommitOutcome, error) {
	e, ok := r.entities[entity]
	if !ok || e.Toggle == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown entity: %s", entity))
	}
	result := e.Toggle(ctx, sess, id)
	toast := r.notifier.MutationOutcome(result, "cambió", "el estado de "+e.Label, "")
	return &workflow.CommitOutcome{Result: result, Toast: toast, Refresh: result.OK(), Close: result.OK()}, nil
}

// List fetches one collection, reporting whether the route may be cached.
func (r *Registry) List(ctx context.Context, sess *upstream.Session, entity string) (interface{}, bool, error) {
	e, ok := r.entities[entity]
	if !ok || e.List == nil {
		return nil, false, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown entity: %s", entity))
	}
	data, err := e.List(ctx, sess)
	return data, e.Cacheable, err
}

// CreateEquipmentWithMaintenances performs the atomic equipment +
// schedule create, validating every attached recurrence first.
func (r *Registry) CreateEquipmentWithMaintenances(ctx context.Context, sess *upstream.Session, req dto.CreateEquipmentWithMaintenancesRequest) (*workflow.CommitOutcome, error) {
	for _, item := range req.Maintenances {
		cdt, err := validation.ParseISO(item.NextMaintenanceDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, validation.MsgInvalidDate)
		}
		if err := review.ValidateSchedule(item.FrequencyValue, frequencyType(item.FrequencyType), cdt.UTC(), time.Now().UTC()); err != nil {
			return nil, err
		}
	}
	result := r.client.CreateEquipmentWithMaintenances(ctx, sess, req)
	toast := r.notifier.MutationOutcome(result, "creó", "el equipo "+req.Equipment.Name, "")
	return &workflow.CommitOutcome{Result: result, Toast: toast, Refresh: result.OK(), Close: result.OK()}, nil
}

func (r *Registry) engineFor(entity string, action form.Action) (*workflow.Engine, error) {
	e, ok := r.entities[entity]
	if !ok || e.Engine == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown entity: %s", entity))
	}
	if action != form.ActionCreate && action != form.ActionUpdate {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported action: %s", action))
	}
	return e.Engine, nil
}

func buildForm(engine *workflow.Engine, req WorkflowRequest) *form.Form {
	f := form.New(engine.Schema(), req.Action, req.Original)
	for name, value := range req.Draft {
		f.SetField(name, value)
	}
	return f
}

func verbFor(action form.Action) string {
	if action == form.ActionUpdate {
		return "actualizó"
	}
	return "creó"
}
