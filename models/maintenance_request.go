package models

import "time"

// MaintenancePriority represents how urgent a maintenance request is
type MaintenancePriority string

const (
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityLow    MaintenancePriority = "low"
)

// MaintenanceStatus represents the progress of a maintenance request
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

// MaintenanceRequest represents a repair request reported against a unit
type MaintenanceRequest struct {
	BaseModel
	Title        string              `gorm:"type:varchar(200);not null" json:"title"`
	Description  string              `gorm:"type:text;not null" json:"description"`
	Priority     MaintenancePriority `gorm:"type:varchar(20);not null" json:"priority"`           // high, medium, low
	Status       MaintenanceStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`    // pending, in_progress, completed
	DateReported time.Time           `json:"date_reported"`
	UnitID       uint                `gorm:"index;not null" json:"unit_id"`
	// TenantID is nullable: landlord-reported requests have no tenant, and
	// requests survive tenant removal with the reference detached.
	TenantID *uint `gorm:"index" json:"tenant_id"`

	// Relations
	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
