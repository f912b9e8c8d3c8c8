package dto

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	CatalogueID     string   `json:"catalogueId" validate:"required,uuid4"`
	UnitID          string   `json:"unitOfMeasurementId" validate:"required,uuid4"`
	WarehouseTypeID *string  `json:"warehouseTypeId,omitempty" validate:"omitempty,uuid4"`
	Stock           float64  `json:"stock" validate:"min=0"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

// UpdateProductRequest is the payload for PUT /products/{id}.
type UpdateProductRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	CatalogueID     string   `json:"catalogueId" validate:"required,uuid4"`
	UnitID          string   `json:"unitOfMeasurementId" validate:"required,uuid4"`
	WarehouseTypeID *string  `json:"warehouseTypeId,omitempty" validate:"omitempty,uuid4"`
	Stock           float64  `json:"stock" validate:"min=0"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

// CatalogueRequest serves both POST /catalogues and PUT /catalogues/{id}.
type CatalogueRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}
