package models

import "time"

// Customer represents a client company or person owning equipment.
// Customers are keyed by email on the SGI API (update and toggle use the
// email as path token).
type Customer struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	TaxID     string    `json:"nif"`
	Phone     string    `json:"phoneNumber,omitempty"`
	Address   string    `json:"address,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// MaintenanceProvider represents an external company performing services.
// Uniqueness is enforced on name, email and tax id.
type MaintenanceProvider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TaxID     string    `json:"nif"`
	Phone     string    `json:"phoneNumber,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
