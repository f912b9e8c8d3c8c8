package upstream

import (
	"context"
	"net/http"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
)

// Products ----------------------------------------------------------------

func (c *Client) ListProducts(ctx context.Context, sess *Session) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, sess, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, sess *Session, req dto.CreateProductRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/products", req)
}

func (c *Client) UpdateProduct(ctx context.Context, sess *Session, id string, req dto.UpdateProductRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/products/"+id, req)
}

func (c *Client) ToggleProductStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/products/"+id+"/toggle-status", nil)
}

// Catalogues --------------------------------------------------------------

func (c *Client) ListCatalogues(ctx context.Context, sess *Session) ([]models.Catalogue, error) {
	var out []models.Catalogue
	if err := c.get(ctx, sess, "/catalogues", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCatalogue(ctx context.Context, sess *Session, req dto.CatalogueRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPost, "/catalogues", req)
}

func (c *Client) UpdateCatalogue(ctx context.Context, sess *Session, id string, req dto.CatalogueRequest) *Result {
	if err := dto.Check(req); err != nil {
		return Failure(err)
	}
	return c.mutate(ctx, sess, http.MethodPut, "/catalogues/"+id, req)
}

func (c *Client) ToggleCatalogueStatus(ctx context.Context, sess *Session, id string) *Result {
	return c.mutate(ctx, sess, http.MethodPatch, "/catalogues/"+id+"/toggle-status", nil)
}

// Reference lists ---------------------------------------------------------

func (c *Client) ListUnits(ctx context.Context, sess *Session) ([]models.UnitOfMeasurement, error) {
	var out []models.UnitOfMeasurement
	if err := c.get(ctx, sess, "/units-of-measurement", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListWarehouseTypes(ctx context.Context, sess *Session) ([]models.WarehouseType, error) {
	var out []models.WarehouseType
	if err := c.get(ctx, sess, "/warehouse-types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Notices -----------------------------------------------------------------

func (c *Client) MyAllNotices(ctx context.Context, sess *Session) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.get(ctx, sess, "/notices/my-all-notices", &out); err != nil {
		return nil, err
	}
	return out, nil
}
