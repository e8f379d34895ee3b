package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
)

// InterfaceMaintenanceService defines the maintenance request service interface
type InterfaceMaintenanceService interface {
	GetAllRequests(page int, pageSize int) ([]models.MaintenanceRequest, int64, error)
	GetTenantRequests(tenantID uint) ([]models.MaintenanceRequest, error)
	CreateRequest(input *CreateMaintenanceInput) (*models.MaintenanceRequest, error)
	UpdateRequestAsTenant(id uint, tenantID uint, description string) (*models.MaintenanceRequest, error)
	UpdateRequest(id uint, status models.MaintenanceStatus, priority models.MaintenancePriority) (*models.MaintenanceRequest, error)
	DeleteRequest(id uint) error
}

// CreateMaintenanceInput carries a new maintenance request. TenantID is set
// when a tenant reports the issue; landlord-reported requests carry only a
// unit.
type CreateMaintenanceInput struct {
	Title       string
	Description string
	Priority    models.MaintenancePriority
	UnitID      uint
	TenantID    *uint
}

// MaintenanceService provides maintenance request services
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllRequests returns all maintenance requests
func (s *MaintenanceService) GetAllRequests(page int, pageSize int) ([]models.MaintenanceRequest, int64, error) {
	var requests []models.MaintenanceRequest
	var total int64
	if err := s.DB.Model(&models.MaintenanceRequest{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		Preload("Tenant").
		Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&requests).Error
	if err != nil {
		return nil, 0, persistenceError(err)
	}
	return requests, total, nil
}

// 2 GetTenantRequests returns one tenant's maintenance requests
func (s *MaintenanceService) GetTenantRequests(tenantID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		Where("tenant_id = ?", tenantID).
		Order("id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	return requests, nil
}

// 3 CreateRequest files a new maintenance request against a unit
func (s *MaintenanceService) CreateRequest(input *CreateMaintenanceInput) (*models.MaintenanceRequest, error) {
	if input.Title == "" || input.Description == "" || input.Priority == "" {
		return nil, ErrMissingFields
	}

	var unit models.Unit
	if err := s.DB.First(&unit, input.UnitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, persistenceError(err)
	}

	request := models.MaintenanceRequest{
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       models.MaintenanceStatusPending,
		DateReported: time.Now(),
		UnitID:       unit.ID,
		TenantID:     input.TenantID,
	}
	if err := s.DB.Create(&request).Error; err != nil {
		return nil, persistenceError(err)
	}

	err := s.DB.
		Preload("Unit").Preload("Unit.Floor").Preload("Unit.Floor.Property").
		Preload("Tenant").
		First(&request, request.ID).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	return &request, nil
}

// 4 UpdateRequestAsTenant lets a tenant edit the description of their own
// still-pending request
func (s *MaintenanceService) UpdateRequestAsTenant(id uint, tenantID uint, description string) (*models.MaintenanceRequest, error) {
	if description == "" {
		return nil, ErrMissingFields
	}

	var request models.MaintenanceRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, persistenceError(err)
	}
	if request.TenantID == nil || *request.TenantID != tenantID {
		return nil, ErrRequestNotFound
	}
	if request.Status != models.MaintenanceStatusPending {
		return nil, ErrRequestNotPending
	}

	if err := s.DB.Model(&request).Update("description", description).Error; err != nil {
		return nil, persistenceError(err)
	}
	return &request, nil
}

// 5 UpdateRequest lets a landlord or admin manage status and priority
func (s *MaintenanceService) UpdateRequest(id uint, status models.MaintenanceStatus, priority models.MaintenancePriority) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, persistenceError(err)
	}

	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
	}
	if priority != "" {
		updates["priority"] = priority
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&request).Updates(updates).Error; err != nil {
			return nil, persistenceError(err)
		}
	}
	return &request, nil
}

// 6 DeleteRequest removes a maintenance request
func (s *MaintenanceService) DeleteRequest(id uint) error {
	var request models.MaintenanceRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return persistenceError(err)
	}
	if err := s.DB.Delete(&request).Error; err != nil {
		return persistenceError(err)
	}
	return nil
}
