package models

import "time"

// PaymentStatus represents the state of a monthly rent payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
)

// Payment represents a monthly rent record for a (tenant, unit) pair.
// The composite unique index is the idempotency key: at most one payment
// may exist per tenant, unit, month and year.
type Payment struct {
	BaseModel
	TenantID  uint          `gorm:"uniqueIndex:idx_payment_period;not null" json:"tenant_id"`
	UnitID    uint          `gorm:"uniqueIndex:idx_payment_period;not null" json:"unit_id"`
	Month     int           `gorm:"uniqueIndex:idx_payment_period;not null" json:"month"` // 1-12
	Year      int           `gorm:"uniqueIndex:idx_payment_period;not null" json:"year"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Status    PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending, completed, overdue
	DueDate   time.Time     `json:"due_date"`
	Date      *time.Time    `json:"date"` // completion timestamp, nil while pending
	Method    string        `gorm:"type:varchar(50)" json:"method,omitempty"`
	Reference string        `gorm:"type:varchar(50)" json:"reference,omitempty"`

	// Relations
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Unit   *Unit   `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
