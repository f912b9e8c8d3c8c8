package dto

// CreateCustomerRequest is the server-shaped payload for POST /customers.
// Free-text fields arrive already trimmed and empty optionals nulled by
// the confirmation stage.
type CreateCustomerRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Name    string  `json:"name" validate:"required"`
	TaxID   string  `json:"nif" validate:"required,excludesall= \t\n"`
	Phone   *string `json:"phoneNumber,omitempty" validate:"omitempty,len=10,numeric"`
	Address *string `json:"address,omitempty"`
	Remarks *string `json:"remarks,omitempty"`
}

// UpdateCustomerRequest is the payload for PUT /customers/{email}.
type UpdateCustomerRequest struct {
	Email   string  `json:"email" validate:"required,email"`
	Name    string  `json:"name" validate:"required"`
	TaxID   string  `json:"nif" validate:"required,excludesall= \t\n"`
	Phone   *string `json:"phoneNumber,omitempty" validate:"omitempty,len=10,numeric"`
	Address *string `json:"address,omitempty"`
	Remarks *string `json:"remarks,omitempty"`
}

// CreateProviderRequest is the payload for POST /maintenance-providers.
type CreateProviderRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	TaxID   string  `json:"nif" validate:"required,excludesall= \t\n"`
	Phone   *string `json:"phoneNumber,omitempty" validate:"omitempty,len=10,numeric"`
	Address *string `json:"address,omitempty"`
}

// UpdateProviderRequest is the payload for PUT /maintenance-providers/{id}.
type UpdateProviderRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	TaxID   string  `json:"nif" validate:"required,excludesall= \t\n"`
	Phone   *string `json:"phoneNumber,omitempty" validate:"omitempty,len=10,numeric"`
	Address *string `json:"address,omitempty"`
}
