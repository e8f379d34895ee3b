package models

import "time"

// TenantStatus represents the lease status of a tenant
type TenantStatus string

const (
	TenantStatusActive TenantStatus = "active"
	TenantStatusLate   TenantStatus = "late"
	TenantStatusEnding TenantStatus = "ending"
)

// Tenant represents a person renting a unit under a lease
type Tenant struct {
	BaseModel
	Name       string       `gorm:"type:varchar(100);not null" json:"name"`
	Email      string       `gorm:"type:varchar(100);not null" json:"email"`
	Phone      string       `gorm:"type:varchar(20);not null" json:"phone"`
	MoveInDate time.Time    `json:"move_in_date"`
	LeaseEnd   time.Time    `json:"lease_end"`
	Status     TenantStatus `gorm:"type:varchar(20);default:'active'" json:"status"` // active, late, ending
	// UnitID is nullable so a removed tenant can keep its history without a
	// unit; the unique index guarantees at most one tenant per unit.
	UnitID *uint `gorm:"uniqueIndex" json:"unit_id"`
	UserID uint  `gorm:"index;not null" json:"user_id"`

	// Relations
	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
