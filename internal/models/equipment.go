package models

import "time"

// EquipmentCategory groups equipment for filtering and reporting.
type EquipmentCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// Equipment represents a physical asset under maintenance.
type Equipment struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand,omitempty"`
	Model          string    `json:"model,omitempty"`
	SerialNumber   string    `json:"serialNumber,omitempty"`
	CategoryID     string    `json:"categoryId"`
	CustomerEmail  string    `json:"customerEmail,omitempty"`
	Location       string    `json:"location,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
	Active         bool      `json:"active"`
	AcquiredAt     *time.Time `json:"acquiredAt,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// MaintenanceType labels the kind of service performed (preventive,
// corrective, calibration...). Uniqueness is enforced on name.
type MaintenanceType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}
