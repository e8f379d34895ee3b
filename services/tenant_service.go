package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/utils"
)

// InterfaceTenantService defines the tenant service interface
type InterfaceTenantService interface {
	GetAllTenants(page int, pageSize int) ([]models.Tenant, int64, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantByUserID(userID uint) (*models.Tenant, error)
	CreateTenant(input *CreateTenantInput) (*models.Tenant, *TenantCredentials, error)
	UpdateTenant(id uint, input *UpdateTenantInput) (*models.Tenant, error)
	DeleteTenant(id uint) error
}

// CreateTenantInput carries the fields required to move a tenant in
type CreateTenantInput struct {
	Name       string
	Email      string
	Phone      string
	MoveInDate time.Time
	LeaseEnd   time.Time
	UnitID     uint
	Password   string // optional, generated when empty
}

// UpdateTenantInput carries optional tenant updates; a UnitID pointing at a
// different unit triggers the reassignment path.
type UpdateTenantInput struct {
	Name       string
	Email      string
	Phone      string
	MoveInDate *time.Time
	LeaseEnd   *time.Time
	Status     models.TenantStatus
	UnitID     *uint
}

// TenantCredentials is the one-time disclosure of a new tenant's login
type TenantCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TenantService provides tenant lifecycle services
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService creates a new tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllTenants returns all tenants with their unit, floor and property
func (s *TenantService) GetAllTenants(page int, pageSize int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64
	if err := s.DB.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, persistenceError(err)
	}
	return tenants, total, nil
}

// 2 GetTenantByID returns a tenant by ID
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		First(&tenant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, persistenceError(err)
	}
	return &tenant, nil
}

// 3 GetTenantByUserID returns the tenant profile linked to a login account
func (s *TenantService) GetTenantByUserID(userID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		Preload("User").
		Where("user_id = ?", userID).
		First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, persistenceError(err)
	}
	return &tenant, nil
}

// 4 CreateTenant moves a tenant into a vacant unit. It creates the login
// account, the tenant record and the unit status change as one transaction,
// and returns the plaintext password exactly once.
func (s *TenantService) CreateTenant(input *CreateTenantInput) (*models.Tenant, *TenantCredentials, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.MoveInDate.IsZero() || input.LeaseEnd.IsZero() || input.UnitID == 0 {
		return nil, nil, ErrMissingFields
	}

	plainPassword := input.Password
	if plainPassword == "" {
		plainPassword = utils.GenerateTenantPassword()
	}

	var tenant models.Tenant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.First(&unit, input.UnitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnitNotFound
			}
			return persistenceError(err)
		}

		// Conditional claim: only a vacant unit can be taken. The loser of
		// a concurrent create sees zero affected rows and the whole
		// transaction rolls back.
		res := tx.Model(&models.Unit{}).
			Where("id = ? AND status = ?", input.UnitID, models.UnitStatusVacant).
			Update("status", models.UnitStatusOccupied)
		if res.Error != nil {
			return persistenceError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUnitNotVacant
		}

		var emailCount int64
		if err := tx.Model(&models.User{}).Where("email = ?", input.Email).Count(&emailCount).Error; err != nil {
			return persistenceError(err)
		}
		if emailCount > 0 {
			return ErrEmailTaken
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: plainPassword,
			Role:     models.RoleTenant,
		}
		if err := tx.Create(&user).Error; err != nil {
			return persistenceError(err)
		}

		unitID := input.UnitID
		tenant = models.Tenant{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			MoveInDate: input.MoveInDate,
			LeaseEnd:   input.LeaseEnd,
			Status:     models.TenantStatusActive,
			UnitID:     &unitID,
			UserID:     user.ID,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return persistenceError(err)
		}

		return tx.
			Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
			Preload("User").
			First(&tenant, tenant.ID).Error
	})
	if err != nil {
		return nil, nil, err
	}

	credentials := &TenantCredentials{Email: input.Email, Password: plainPassword}
	return &tenant, credentials, nil
}

// 5 UpdateTenant updates tenant fields. When the input carries a unit
// different from the current one, the prior unit is vacated and the target
// unit claimed in the same transaction.
func (s *TenantService) UpdateTenant(id uint, input *UpdateTenantInput) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tenant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return persistenceError(err)
		}

		updates := map[string]interface{}{}
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if input.Email != "" {
			updates["email"] = input.Email
		}
		if input.Phone != "" {
			updates["phone"] = input.Phone
		}
		if input.MoveInDate != nil {
			updates["move_in_date"] = *input.MoveInDate
		}
		if input.LeaseEnd != nil {
			updates["lease_end"] = *input.LeaseEnd
		}
		if input.Status != "" {
			updates["status"] = input.Status
		}

		// Reassignment path. Pointing at the current unit is a no-op.
		if input.UnitID != nil && (tenant.UnitID == nil || *tenant.UnitID != *input.UnitID) {
			var target models.Unit
			if err := tx.First(&target, *input.UnitID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnitNotFound
				}
				return persistenceError(err)
			}

			res := tx.Model(&models.Unit{}).
				Where("id = ? AND status = ?", *input.UnitID, models.UnitStatusVacant).
				Update("status", models.UnitStatusOccupied)
			if res.Error != nil {
				return persistenceError(res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrUnitNotVacant
			}

			if tenant.UnitID != nil {
				if err := tx.Model(&models.Unit{}).
					Where("id = ?", *tenant.UnitID).
					Update("status", models.UnitStatusVacant).Error; err != nil {
					return persistenceError(err)
				}
			}
			updates["unit_id"] = *input.UnitID
		}

		if len(updates) > 0 {
			if err := tx.Model(&tenant).Updates(updates).Error; err != nil {
				return persistenceError(err)
			}
		}

		return tx.
			Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
			First(&tenant, tenant.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// 6 DeleteTenant removes a tenant: payments are deleted, maintenance
// requests detached, the unit vacated and the login account dropped, all
// within one transaction.
func (s *TenantService) DeleteTenant(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return persistenceError(err)
		}

		if err := tx.Where("tenant_id = ?", tenant.ID).Delete(&models.Payment{}).Error; err != nil {
			return persistenceError(err)
		}

		if err := tx.Model(&models.MaintenanceRequest{}).
			Where("tenant_id = ?", tenant.ID).
			Update("tenant_id", nil).Error; err != nil {
			return persistenceError(err)
		}

		if tenant.UnitID != nil {
			if err := tx.Model(&models.Unit{}).
				Where("id = ?", *tenant.UnitID).
				Update("status", models.UnitStatusVacant).Error; err != nil {
				return persistenceError(err)
			}
		}

		if err := tx.Delete(&tenant).Error; err != nil {
			return persistenceError(err)
		}

		if err := tx.Where("id = ?", tenant.UserID).Delete(&models.User{}).Error; err != nil {
			return persistenceError(err)
		}

		return nil
	})
}
