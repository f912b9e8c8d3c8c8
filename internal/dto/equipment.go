package dto

// CreateEquipmentRequest is the payload for POST /equipment.
type CreateEquipmentRequest struct {
	Name          string  `json:"name" validate:"required"`
	Brand         *string `json:"brand,omitempty"`
	Model         *string `json:"model,omitempty"`
	SerialNumber  *string `json:"serialNumber,omitempty"`
	CategoryID    string  `json:"categoryId" validate:"required,uuid4"`
	CustomerEmail *string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	Location      *string `json:"location,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

// UpdateEquipmentRequest is the payload for PUT /equipment/{id}.
type UpdateEquipmentRequest struct {
	Name          string  `json:"name" validate:"required"`
	Brand         *string `json:"brand,omitempty"`
	Model         *string `json:"model,omitempty"`
	SerialNumber  *string `json:"serialNumber,omitempty"`
	CategoryID    string  `json:"categoryId" validate:"required,uuid4"`
	CustomerEmail *string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	Location      *string `json:"location,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

// EquipmentMaintenanceItem is one scheduled service attached at equipment
// creation time.
type EquipmentMaintenanceItem struct {
	MaintenanceTypeID   string `json:"maintenanceTypeId" validate:"required,uuid4"`
	ResponsibleID       string `json:"responsibleId" validate:"required,uuid4"`
	Priority            string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description         string `json:"description,omitempty"`
	FrequencyType       string `json:"frequencyType" validate:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	FrequencyValue      int    `json:"frequencyValue" validate:"required,min=1,max=127"`
	NextMaintenanceDate string `json:"nextMaintenanceDate" validate:"required"`
}

// CreateEquipmentWithMaintenancesRequest is the atomic payload for
// POST /equipment/withMaintenances.
type CreateEquipmentWithMaintenancesRequest struct {
	Equipment    CreateEquipmentRequest     `json:"equipment" validate:"required"`
	Maintenances []EquipmentMaintenanceItem `json:"maintenances" validate:"required,min=1,dive"`
}

// CategoryRequest serves both POST /equipment-categories and
// PUT /equipment-categories/{id}.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateMaintenanceTypeRequest is the payload for POST /maintenance-types.
type CreateMaintenanceTypeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateMaintenanceTypeRequest is the payload for PUT /maintenance-types.
// The upstream route carries no path ID; the identifier travels in the
// body.
type UpdateMaintenanceTypeRequest struct {
	ID          string  `json:"id" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}
