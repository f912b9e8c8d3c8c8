package models

import "time"

// MaintenancePriority orders pending work.
type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "LOW"
	PriorityMedium   MaintenancePriority = "MEDIUM"
	PriorityHigh     MaintenancePriority = "HIGH"
	PriorityCritical MaintenancePriority = "CRITICAL"
)

// MaintenanceStatus captures the review lifecycle of a service. The
// gateway never computes a new status locally; it always trusts the
// upstream mutation response or a fresh fetch.
type MaintenanceStatus string

const (
	StatusInProgress MaintenanceStatus = "IN_PROGRESS"
	StatusPending    MaintenanceStatus = "PENDING"
	StatusApproved   MaintenanceStatus = "APPROVED"
	StatusRejected   MaintenanceStatus = "REJECTED"
)

// FrequencyType is the recurrence unit of a scheduled maintenance.
type FrequencyType string

const (
	FrequencyDaily   FrequencyType = "DAILY"
	FrequencyWeekly  FrequencyType = "WEEKLY"
	FrequencyMonthly FrequencyType = "MONTHLY"
	FrequencyYearly  FrequencyType = "YEARLY"
)

// MaintenanceRecord is the reviewable service entity. FrequencyValue and
// NextMaintenanceDate are set only for scheduled services; FrequencyValue
// fits a positive signed byte (1..127) and NextMaintenanceDate must fall
// strictly after today and on or before 2038-01-18.
type MaintenanceRecord struct {
	ID                  string              `json:"id"`
	Code                string              `json:"code"`
	EquipmentID         string              `json:"equipmentId"`
	MaintenanceTypeID   string              `json:"maintenanceTypeId"`
	ResponsibleID       string              `json:"responsibleId"`
	Priority            MaintenancePriority `json:"priority"`
	Description         string              `json:"description,omitempty"`
	Status              MaintenanceStatus   `json:"status"`
	RejectionReason     string              `json:"rejectionReason,omitempty"`
	FrequencyType       FrequencyType       `json:"frequencyType,omitempty"`
	FrequencyValue      int                 `json:"frequencyValue,omitempty"`
	NextMaintenanceDate *time.Time          `json:"nextMaintenanceDate,omitempty"`
	CreatedAt           time.Time           `json:"createdAt,omitempty"`
}

// Scheduled reports whether the record carries a recurrence.
func (m *MaintenanceRecord) Scheduled() bool {
	return m.FrequencyType != ""
}
