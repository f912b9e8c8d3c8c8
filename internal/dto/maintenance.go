package dto

// CreateMaintenanceRequest is the payload for POST /maintenance. Frequency
// fields are present only for scheduled services.
type CreateMaintenanceRequest struct {
	EquipmentID         string  `json:"equipmentId" validate:"required,uuid4"`
	MaintenanceTypeID   string  `json:"maintenanceTypeId" validate:"required,uuid4"`
	ResponsibleID       string  `json:"responsibleId" validate:"required,uuid4"`
	Priority            string  `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description         *string `json:"description,omitempty"`
	FrequencyType       *string `json:"frequencyType,omitempty" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	FrequencyValue      *int    `json:"frequencyValue,omitempty" validate:"omitempty,min=1,max=127"`
	NextMaintenanceDate *string `json:"nextMaintenanceDate,omitempty" validate:"required_with=FrequencyType"`
}

// UpdateMaintenanceRequest is the payload for PUT /maintenance/{id}.
type UpdateMaintenanceRequest struct {
	MaintenanceTypeID   string  `json:"maintenanceTypeId" validate:"required,uuid4"`
	ResponsibleID       string  `json:"responsibleId" validate:"required,uuid4"`
	Priority            string  `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description         *string `json:"description,omitempty"`
	FrequencyType       *string `json:"frequencyType,omitempty" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	FrequencyValue      *int    `json:"frequencyValue,omitempty" validate:"omitempty,min=1,max=127"`
	NextMaintenanceDate *string `json:"nextMaintenanceDate,omitempty" validate:"required_with=FrequencyType"`
}

// SubmitForReviewRequest is the payload for POST /maintenance/submit-for-review.
type SubmitForReviewRequest struct {
	MaintenanceID string `json:"maintenanceId" validate:"required,uuid4"`
}

// RejectMaintenanceRequest carries the mandatory free-text reason for
// POST /maintenance/rejected/{id}.
type RejectMaintenanceRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

// UpdateScheduledMaintenanceRequest is the payload for
// PUT /scheduled-maintenance/{id}.
type UpdateScheduledMaintenanceRequest struct {
	FrequencyType       string `json:"frequencyType" validate:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	FrequencyValue      int    `json:"frequencyValue" validate:"required,min=1,max=127"`
	NextMaintenanceDate string `json:"nextMaintenanceDate" validate:"required"`
}
