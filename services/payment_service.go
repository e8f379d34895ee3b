package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/utils"
)

// Rent falls due on the 5th of the month.
const rentDueDay = 5

// InterfacePaymentService defines the payment ledger interface
type InterfacePaymentService interface {
	GetAllPayments(page int, pageSize int) ([]models.Payment, int64, error)
	GetTenantPayments(tenantID uint) ([]models.Payment, error)
	RecordOrCompletePayment(tenantID uint, month, year int, method string) (*models.Payment, error)
	UpdatePayment(id uint, input *UpdatePaymentInput) (*models.Payment, error)
}

// UpdatePaymentInput carries optional administrative payment overrides
type UpdatePaymentInput struct {
	Status    models.PaymentStatus
	Method    string
	Reference string
	Date      *time.Time
}

// PaymentService provides the monthly rent ledger
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllPayments returns all payments with their tenant and unit
func (s *PaymentService) GetAllPayments(page int, pageSize int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64
	if err := s.DB.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	err := s.DB.
		Preload("Tenant").Preload("Unit").
		Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&payments).Error
	if err != nil {
		return nil, 0, persistenceError(err)
	}
	return payments, total, nil
}

// 2 GetTenantPayments returns the ledger rows for one tenant
func (s *PaymentService) GetTenantPayments(tenantID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.
		Preload("Unit").
		Where("tenant_id = ?", tenantID).
		Order("year DESC, month DESC").
		Find(&payments).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	return payments, nil
}

// 3 RecordOrCompletePayment records rent for one (tenant, unit, month, year).
// An existing row is completed in place; a missing row is created already
// completed with the unit's rent as the amount. The composite unique index
// on the payment period makes repeated and concurrent calls converge on a
// single completed row.
func (s *PaymentService) RecordOrCompletePayment(tenantID uint, month, year int, method string) (*models.Payment, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, ErrInvalidPeriod
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return persistenceError(err)
		}
		if tenant.UnitID == nil {
			return ErrTenantHasNoUnit
		}

		var unit models.Unit
		if err := tx.First(&unit, *tenant.UnitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantHasNoUnit
			}
			return persistenceError(err)
		}

		now := time.Now()
		err := tx.Where("tenant_id = ? AND unit_id = ? AND month = ? AND year = ?",
			tenant.ID, unit.ID, month, year).First(&payment).Error
		if err == nil {
			return s.completePayment(tx, &payment, method, now)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return persistenceError(err)
		}

		payment = models.Payment{
			TenantID:  tenant.ID,
			UnitID:    unit.ID,
			Month:     month,
			Year:      year,
			Amount:    unit.Rent,
			Status:    models.PaymentStatusCompleted,
			DueDate:   time.Date(year, time.Month(month), rentDueDay, 0, 0, 0, 0, time.Local),
			Date:      &now,
			Method:    method,
			Reference: utils.GeneratePaymentReference(),
		}
		if createErr := tx.Create(&payment).Error; createErr != nil {
			// A concurrent call may have inserted the row first; the unique
			// index rejects ours, so fall back to completing theirs.
			var existing models.Payment
			if lookupErr := tx.Where("tenant_id = ? AND unit_id = ? AND month = ? AND year = ?",
				tenant.ID, unit.ID, month, year).First(&existing).Error; lookupErr != nil {
				return persistenceError(createErr)
			}
			payment = existing
			return s.completePayment(tx, &payment, method, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// completePayment marks an existing ledger row as paid
func (s *PaymentService) completePayment(tx *gorm.DB, payment *models.Payment, method string, now time.Time) error {
	updates := map[string]interface{}{
		"status":    models.PaymentStatusCompleted,
		"reference": utils.GeneratePaymentReference(),
		"date":      now,
	}
	if method != "" {
		updates["method"] = method
	}
	if err := tx.Model(payment).Updates(updates).Error; err != nil {
		return persistenceError(err)
	}
	return tx.First(payment, payment.ID).Error
}

// 4 UpdatePayment applies administrative overrides to a ledger row
func (s *PaymentService) UpdatePayment(id uint, input *UpdatePaymentInput) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, persistenceError(err)
	}

	updates := map[string]interface{}{}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if input.Method != "" {
		updates["method"] = input.Method
	}
	if input.Reference != "" {
		updates["reference"] = input.Reference
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&payment).Updates(updates).Error; err != nil {
			return nil, persistenceError(err)
		}
	}

	err := s.DB.Preload("Tenant").Preload("Unit").First(&payment, payment.ID).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	return &payment, nil
}
