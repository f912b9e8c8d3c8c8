package models

// Catalogue groups products for stock management. Uniqueness is enforced
// on name.
type Catalogue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// UnitOfMeasurement is a reference record (piece, litre, kilogram...).
type UnitOfMeasurement struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Active       bool   `json:"active"`
}

// WarehouseType is a reference record describing where stock lives.
type WarehouseType struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Product is a stock item tied to a catalogue and a unit.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	CatalogueID     string  `json:"catalogueId"`
	UnitID          string  `json:"unitOfMeasurementId"`
	WarehouseTypeID string  `json:"warehouseTypeId,omitempty"`
	Stock           float64 `json:"stock"`
	Price           float64 `json:"price,omitempty"`
	Active          bool    `json:"active"`
}
