package service

import (
	"context"
	"fmt"
	"time"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/review"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/workflow"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

func (r *Registry) newEngine(cfg workflow.Config) *workflow.Engine {
	return workflow.New(cfg, r.notifier, r.logger)
}

func (r *Registry) customers() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: customerSchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "email", Message: notify.MsgDuplicateEmail},
			{Field: "nif", Message: notify.MsgDuplicateTaxID},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			customers, err := r.client.ListCustomers(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(customers))
			for _, c := range customers {
				out = append(out, workflow.Candidate{
					ID:     c.Email,
					Values: map[string]string{"email": c.Email, "nif": c.TaxID},
				})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action == form.ActionUpdate {
				return r.client.UpdateCustomer(ctx, sess, recordID, dto.UpdateCustomerRequest{
					Email:   trimmed(draft, "email"),
					Name:    trimmed(draft, "name"),
					TaxID:   trimmed(draft, "nif"),
					Phone:   optional(draft, "phoneNumber"),
					Address: optional(draft, "address"),
					Remarks: optional(draft, "remarks"),
				})
			}
			return r.client.CreateCustomer(ctx, sess, dto.CreateCustomerRequest{
				Email:   trimmed(draft, "email"),
				Name:    trimmed(draft, "name"),
				TaxID:   trimmed(draft, "nif"),
				Phone:   optional(draft, "phoneNumber"),
				Address: optional(draft, "address"),
				Remarks: optional(draft, "remarks"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el cliente " + trimmed(draft, "name"), trimmed(draft, "email")
		},
	})
	return &Entity{
		Name:   "customers",
		Label:  "el cliente",
		Engine: engine,
		Toggle: r.client.ToggleCustomerStatus,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListCustomers(ctx, sess)
		},
	}
}

func (r *Registry) providers() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: providerSchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "email", Message: notify.MsgDuplicateEmail},
			{Field: "nif", Message: notify.MsgDuplicateTaxID},
			{Field: "name", Message: notify.MsgDuplicateName},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			providers, err := r.client.ListProviders(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(providers))
			for _, p := range providers {
				out = append(out, workflow.Candidate{
					ID:     p.ID,
					Values: map[string]string{"email": p.Email, "nif": p.TaxID, "name": p.Name},
				})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action == form.ActionUpdate {
				return r.client.UpdateProvider(ctx, sess, recordID, dto.UpdateProviderRequest{
					Name:    trimmed(draft, "name"),
					Email:   trimmed(draft, "email"),
					TaxID:   trimmed(draft, "nif"),
					Phone:   optional(draft, "phoneNumber"),
					Address: optional(draft, "address"),
				})
			}
			return r.client.CreateProvider(ctx, sess, dto.CreateProviderRequest{
				Name:    trimmed(draft, "name"),
				Email:   trimmed(draft, "email"),
				TaxID:   trimmed(draft, "nif"),
				Phone:   optional(draft, "phoneNumber"),
				Address: optional(draft, "address"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el proveedor " + trimmed(draft, "name"), trimmed(draft, "email")
		},
	})
	return &Entity{
		Name:   "maintenance-providers",
		Label:  "el proveedor",
		Engine: engine,
		Toggle: r.client.ToggleProviderStatus,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListProviders(ctx, sess)
		},
	}
}

func (r *Registry) equipment() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: equipmentSchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "name", Message: notify.MsgDuplicateName},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			equipment, err := r.client.ListEquipment(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(equipment))
			for _, eq := range equipment {
				out = append(out, workflow.Candidate{ID: eq.ID, Values: map[string]string{"name": eq.Name}})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action == form.ActionUpdate {
				return r.client.UpdateEquipment(ctx, sess, recordID, dto.UpdateEquipmentRequest{
					Name:          trimmed(draft, "name"),
					Brand:         optional(draft, "brand"),
					Model:         optional(draft, "model"),
					SerialNumber:  optional(draft, "serialNumber"),
					CategoryID:    trimmed(draft, "categoryId"),
					CustomerEmail: optional(draft, "customerEmail"),
					Location:      optional(draft, "location"),
					Remarks:       optional(draft, "remarks"),
				})
			}
			return r.client.CreateEquipment(ctx, sess, dto.CreateEquipmentRequest{
				Name:          trimmed(draft, "name"),
				Brand:         optional(draft, "brand"),
				Model:         optional(draft, "model"),
				SerialNumber:  optional(draft, "serialNumber"),
				CategoryID:    trimmed(draft, "categoryId"),
				CustomerEmail: optional(draft, "customerEmail"),
				Location:      optional(draft, "location"),
				Remarks:       optional(draft, "remarks"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el equipo " + trimmed(draft, "name"), ""
		},
	})
	return &Entity{
		Name:   "equipment",
		Label:  "el equipo",
		Engine: engine,
		Toggle: r.client.ToggleEquipmentStatus,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListEquipment(ctx, sess)
		},
	}
}

func (r *Registry) categories() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: categorySchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "name", Message: notify.MsgDuplicateName},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			categories, err := r.client.ListCategories(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(categories))
			for _, c := range categories {
				out = append(out, workflow.Candidate{ID: c.ID, Values: map[string]string{"name": c.Name}})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			req := dto.CategoryRequest{
				Name:        trimmed(draft, "name"),
				Description: optional(draft, "description"),
			}
			if action == form.ActionUpdate {
				return r.client.UpdateCategory(ctx, sess, recordID, req)
			}
			return r.client.CreateCategory(ctx, sess, req)
		},
		Describe: func(draft map[string]string) (string, string) {
			return "la categoría " + trimmed(draft, "name"), ""
		},
	})
	return &Entity{
		Name:      "equipment-categories",
		Label:     "la categoría",
		Engine:    engine,
		Toggle:    r.client.ToggleCategoryStatus,
		Cacheable: true,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListCategories(ctx, sess)
		},
	}
}

func (r *Registry) maintenanceTypes() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: maintenanceTypeSchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "name", Message: notify.MsgDuplicateName},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			types, err := r.client.ListMaintenanceTypes(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(types))
			for _, t := range types {
				out = append(out, workflow.Candidate{ID: t.ID, Values: map[string]string{"name": t.Name}})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action == form.ActionUpdate {
				return r.client.UpdateMaintenanceType(ctx, sess, dto.UpdateMaintenanceTypeRequest{
					ID:          recordID,
					Name:        trimmed(draft, "name"),
					Description: optional(draft, "description"),
				})
			}
			return r.client.CreateMaintenanceType(ctx, sess, dto.CreateMaintenanceTypeRequest{
				Name:        trimmed(draft, "name"),
				Description: optional(draft, "description"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el tipo de mantenimiento " + trimmed(draft, "name"), ""
		},
	})
	return &Entity{
		Name:   "maintenance-types",
		Label:  "el tipo de mantenimiento",
		Engine: engine,
		// The upstream exposes DELETE as the status verb for this entity;
		// the client keeps that asymmetry explicit.
		Toggle: r.client.DeactivateMaintenanceType,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListMaintenanceTypes(ctx, sess)
		},
	}
}

func (r *Registry) catalogues() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: catalogueSchema(),
		DuplicateKeys: []workflow.DuplicateKey{
			{Field: "name", Message: notify.MsgDuplicateName},
		},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]workflow.Candidate, error) {
			catalogues, err := r.client.ListCatalogues(ctx, sess)
			if err != nil {
				return nil, err
			}
			out := make([]workflow.Candidate, 0, len(catalogues))
			for _, c := range catalogues {
				out = append(out, workflow.Candidate{ID: c.ID, Values: map[string]string{"name": c.Name}})
			}
			return out, nil
		},
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			req := dto.CatalogueRequest{
				Name:        trimmed(draft, "name"),
				Description: optional(draft, "description"),
			}
			if action == form.ActionUpdate {
				return r.client.UpdateCatalogue(ctx, sess, recordID, req)
			}
			return r.client.CreateCatalogue(ctx, sess, req)
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el catálogo " + trimmed(draft, "name"), ""
		},
	})
	return &Entity{
		Name:      "catalogues",
		Label:     "el catálogo",
		Engine:    engine,
		Toggle:    r.client.ToggleCatalogueStatus,
		Cacheable: true,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListCatalogues(ctx, sess)
		},
	}
}

func (r *Registry) products() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: productSchema(),
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action == form.ActionUpdate {
				return r.client.UpdateProduct(ctx, sess, recordID, dto.UpdateProductRequest{
					Name:            trimmed(draft, "name"),
					Description:     optional(draft, "description"),
					CatalogueID:     trimmed(draft, "catalogueId"),
					UnitID:          trimmed(draft, "unitOfMeasurementId"),
					WarehouseTypeID: optional(draft, "warehouseTypeId"),
					Stock:           numberOf(draft, "stock"),
					Price:           optionalNumber(draft, "price"),
				})
			}
			return r.client.CreateProduct(ctx, sess, dto.CreateProductRequest{
				Name:            trimmed(draft, "name"),
				Description:     optional(draft, "description"),
				CatalogueID:     trimmed(draft, "catalogueId"),
				UnitID:          trimmed(draft, "unitOfMeasurementId"),
				WarehouseTypeID: optional(draft, "warehouseTypeId"),
				Stock:           numberOf(draft, "stock"),
				Price:           optionalNumber(draft, "price"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el producto " + trimmed(draft, "name"), ""
		},
	})
	return &Entity{
		Name:   "products",
		Label:  "el producto",
		Engine: engine,
		Toggle: r.client.ToggleProductStatus,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListProducts(ctx, sess)
		},
	}
}

func (r *Registry) maintenance() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: maintenanceSchema(),
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			freqType := optional(draft, "frequencyType")
			freqValue := optionalInt(draft, "frequencyValue")
			nextDate := optional(draft, "nextMaintenanceDate")
			if freqType != nil {
				if freqValue == nil || nextDate == nil {
					return upstream.Failure(appErrors.Clone(appErrors.ErrValidation, validation.MsgRequired))
				}
				cdt, err := validation.ParseISO(*nextDate)
				if err != nil {
					return upstream.Failure(appErrors.Clone(appErrors.ErrValidation, validation.MsgInvalidDate))
				}
				if err := review.ValidateSchedule(*freqValue, frequencyType(*freqType), cdt.UTC(), time.Now().UTC()); err != nil {
					return upstream.Failure(err)
				}
			}
			if action == form.ActionUpdate {
				return r.client.UpdateMaintenance(ctx, sess, recordID, dto.UpdateMaintenanceRequest{
					MaintenanceTypeID:   trimmed(draft, "maintenanceTypeId"),
					ResponsibleID:       trimmed(draft, "responsibleId"),
					Priority:            trimmed(draft, "priority"),
					Description:         optional(draft, "description"),
					FrequencyType:       freqType,
					FrequencyValue:      freqValue,
					NextMaintenanceDate: nextDate,
				})
			}
			return r.client.CreateMaintenance(ctx, sess, dto.CreateMaintenanceRequest{
				EquipmentID:         trimmed(draft, "equipmentId"),
				MaintenanceTypeID:   trimmed(draft, "maintenanceTypeId"),
				ResponsibleID:       trimmed(draft, "responsibleId"),
				Priority:            trimmed(draft, "priority"),
				Description:         optional(draft, "description"),
				FrequencyType:       freqType,
				FrequencyValue:      freqValue,
				NextMaintenanceDate: nextDate,
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el servicio", ""
		},
	})
	return &Entity{
		Name:   "maintenance",
		Label:  "el servicio",
		Engine: engine,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.MyMaintenance(ctx, sess)
		},
	}
}

func (r *Registry) scheduledMaintenance() *Entity {
	engine := r.newEngine(workflow.Config{
		Schema: scheduledMaintenanceSchema(),
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			if action != form.ActionUpdate {
				return upstream.Failure(appErrors.Clone(appErrors.ErrValidation, "los mantenimientos programados solo admiten actualización"))
			}
			cdt, err := validation.ParseISO(trimmed(draft, "nextMaintenanceDate"))
			if err != nil {
				return upstream.Failure(appErrors.Clone(appErrors.ErrValidation, validation.MsgInvalidDate))
			}
			value := intOf(draft, "frequencyValue")
			unit := frequencyType(trimmed(draft, "frequencyType"))
			if err := review.ValidateSchedule(value, unit, cdt.UTC(), time.Now().UTC()); err != nil {
				return upstream.Failure(err)
			}
			return r.client.UpdateScheduledMaintenance(ctx, sess, recordID, dto.UpdateScheduledMaintenanceRequest{
				FrequencyType:       string(unit),
				FrequencyValue:      value,
				NextMaintenanceDate: trimmed(draft, "nextMaintenanceDate"),
			})
		},
		Describe: func(draft map[string]string) (string, string) {
			value := intOf(draft, "frequencyValue")
			unit := frequencyType(trimmed(draft, "frequencyType"))
			label := review.FrequencyLabel(value, unit)
			if cdt, err := validation.ParseISO(trimmed(draft, "nextMaintenanceDate")); err == nil {
				following := review.NextDate(cdt.UTC(), value, unit)
				label = fmt.Sprintf("%s, siguiente: %s", label, following.Format("2006-01-02"))
			}
			return "el mantenimiento programado", label
		},
	})
	return &Entity{
		Name:   "scheduled-maintenance",
		Label:  "el mantenimiento programado",
		Engine: engine,
		List: func(ctx context.Context, sess *upstream.Session) (interface{}, error) {
			return r.client.ListScheduledMaintenance(ctx, sess)
		},
	}
}

func frequencyType(raw string) models.FrequencyType {
	return models.FrequencyType(raw)
}
