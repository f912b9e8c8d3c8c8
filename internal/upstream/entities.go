package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
)

// Customers ---------------------------------------------------------------

func (c *Client) ListCustomers(ctx context.Context, sess *Session) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.get(ctx, sess, "/customers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, sess *Session, req dto.CreateCustomerRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/customers", req)
}

func (c *Client) UpdateCustomer(ctx context.Context, sess *Session, email string, req dto.UpdateCustomerRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/customers/"+url.PathEscape(email), req)
}

func (c *Client) ToggleCustomerStatus(ctx context.Context, sess *Session, email string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/customers/"+url.PathEscape(email)+"/toggle-status", nil)
}

// Maintenance providers ---------------------------------------------------

func (c *Client) ListProviders(ctx context.Context, sess *Session) ([]models.MaintenanceProvider, error) {
	var out []models.MaintenanceProvider
	if err := c.get(ctx, sess, "/maintenance-providers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProvider(ctx context.Context, sess *Session, req dto.CreateProviderRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance-providers", req)
}

func (c *Client) UpdateProvider(ctx context.Context, sess *Session, id string, req dto.UpdateProviderRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/maintenance-providers/"+id, req)
}

func (c *Client) ToggleProviderStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/maintenance-providers/"+id+"/toggle-status", nil)
}

// Equipment ---------------------------------------------------------------

func (c *Client) ListEquipment(ctx context.Context, sess *Session) ([]models.Equipment, error) {
	var out []models.Equipment
	if err := c.get(ctx, sess, "/equipment", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEquipment(ctx context.Context, sess *Session, req dto.CreateEquipmentRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/equipment", req)
}

// CreateEquipmentWithMaintenances performs the atomic create of an
// equipment record together with its scheduled services.
func (c *Client) CreateEquipmentWithMaintenances(ctx context.Context, sess *Session, req dto.CreateEquipmentWithMaintenancesRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/equipment/withMaintenances", req)
}

func (c *Client) UpdateEquipment(ctx context.Context, sess *Session, id string, req dto.UpdateEquipmentRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/equipment/"+id, req)
}

func (c *Client) ToggleEquipmentStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/equipment/"+id+"/toggle-status", nil)
}

// Equipment categories ----------------------------------------------------

func (c *Client) ListCategories(ctx context.Context, sess *Session) ([]models.EquipmentCategory, error) {
	var out []models.EquipmentCategory
	if err := c.get(ctx, sess, "/equipment-categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, sess *Session, req dto.CategoryRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/equipment-categories", req)
}

func (c *Client) UpdateCategory(ctx context.Context, sess *Session, id string, req dto.CategoryRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/equipment-categories/"+id, req)
}

func (c *Client) ToggleCategoryStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/equipment-categories/"+id+"/toggle-status", nil)
}

// Maintenance types -------------------------------------------------------

func (c *Client) ListMaintenanceTypes(ctx context.Context, sess *Session) ([]models.MaintenanceType, error) {
	var out []models.MaintenanceType
	if err := c.get(ctx, sess, "/maintenance-types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMaintenanceType(ctx context.Context, sess *Session, req dto.CreateMaintenanceTypeRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/maintenance-types", req)
}

// UpdateMaintenanceType uses a bare PUT with the ID in the body; the
// upstream exposes no /maintenance-types/{id} update route.
func (c *Client) UpdateMaintenanceType(ctx context.Context, sess *Session, req dto.UpdateMaintenanceTypeRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/maintenance-types", req)
}

// DeactivateMaintenanceType keeps the upstream's DELETE verb rather than
// pretending it is a toggle; whether the backend removes or merely
// disables the record is its call.
func (c *Client) DeactivateMaintenanceType(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodDelete, "/maintenance-types/"+id, nil)
}
