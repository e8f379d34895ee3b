package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
)

// InterfacePropertyService defines the property service interface
type InterfacePropertyService interface {
	GetAllProperties(page int, pageSize int) ([]models.Property, int64, error)
	GetPropertyByID(id uint) (*models.Property, error)
	CreateProperty(input *CreatePropertyInput) (*models.Property, error)
	UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error)
	DeleteProperty(id uint) error
	ListVacantUnits() ([]models.Unit, error)
	UpdateUnit(id uint, input *UpdateUnitInput) (*models.Unit, error)
}

// CreatePropertyInput carries a property with its nested floors and units
type CreatePropertyInput struct {
	Name     string
	Location string
	Type     string
	Image    string
	Floors   []CreateFloorInput
}

type CreateFloorInput struct {
	Name  string
	Units []CreateUnitInput
}

type CreateUnitInput struct {
	Number string
	Type   string
	Status models.UnitStatus // defaults to vacant
	Rent   float64
}

// UpdateUnitInput carries optional unit updates. Status may only toggle
// between vacant and maintenance here; occupied is owned by the tenant
// lifecycle.
type UpdateUnitInput struct {
	Number string
	Type   string
	Rent   *float64
	Status models.UnitStatus
}

// PropertyService provides property, floor and unit registry services
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService creates a new property service
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllProperties returns all properties with floors and units
func (s *PropertyService) GetAllProperties(page int, pageSize int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64
	if err := s.DB.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	err := s.DB.
		Preload("Floors").Preload("Floors.Units").Preload("Floors.Units.Tenant").
		Order("id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&properties).Error
	if err != nil {
		return nil, 0, persistenceError(err)
	}
	return properties, total, nil
}

// 2 GetPropertyByID returns a property by ID
func (s *PropertyService) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	err := s.DB.
		Preload("Floors").Preload("Floors.Units").
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, persistenceError(err)
	}
	return &property, nil
}

// 3 CreateProperty creates a property with its floors and units in one
// transaction; units start vacant unless told otherwise.
func (s *PropertyService) CreateProperty(input *CreatePropertyInput) (*models.Property, error) {
	if input.Name == "" || input.Location == "" || input.Type == "" || len(input.Floors) == 0 {
		return nil, ErrMissingFields
	}

	property := models.Property{
		Name:     input.Name,
		Location: input.Location,
		Type:     input.Type,
		Image:    input.Image,
	}
	for _, f := range input.Floors {
		floor := models.Floor{Name: f.Name}
		for _, u := range f.Units {
			status := u.Status
			if status == "" {
				status = models.UnitStatusVacant
			}
			floor.Units = append(floor.Units, models.Unit{
				Number: u.Number,
				Type:   u.Type,
				Status: status,
				Rent:   u.Rent,
			})
		}
		property.Floors = append(property.Floors, floor)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return persistenceError(err)
		}
		return tx.
			Preload("Floors").Preload("Floors.Units").
			First(&property, property.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// 4 UpdateProperty updates property fields
func (s *PropertyService) UpdateProperty(id uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(property).Updates(updates).Error; err != nil {
		return nil, persistenceError(err)
	}

	return s.GetPropertyByID(id)
}

// 5 DeleteProperty removes a property with its floors and units. Blocked
// while any unit is occupied.
func (s *PropertyService) DeleteProperty(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Preload("Floors").First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return persistenceError(err)
		}

		var occupied int64
		err := tx.Model(&models.Unit{}).
			Joins("JOIN floors ON floors.id = units.floor_id").
			Where("floors.property_id = ? AND units.status = ?", id, models.UnitStatusOccupied).
			Count(&occupied).Error
		if err != nil {
			return persistenceError(err)
		}
		if occupied > 0 {
			return ErrUnitOccupied
		}

		for _, floor := range property.Floors {
			if err := tx.Where("floor_id = ?", floor.ID).Delete(&models.Unit{}).Error; err != nil {
				return persistenceError(err)
			}
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Floor{}).Error; err != nil {
			return persistenceError(err)
		}
		if err := tx.Delete(&property).Error; err != nil {
			return persistenceError(err)
		}
		return nil
	})
}

// 6 ListVacantUnits returns all vacant units with floor and property
func (s *PropertyService) ListVacantUnits() ([]models.Unit, error) {
	var units []models.Unit
	err := s.DB.
		Preload("Floor").Preload("Floor.Property").
		Where("status = ?", models.UnitStatusVacant).
		Order("id ASC").
		Find(&units).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	return units, nil
}

// 7 UpdateUnit updates a unit's details. Manual status edits may only
// toggle vacant and maintenance; an occupied unit is left to the tenant
// lifecycle.
func (s *PropertyService) UpdateUnit(id uint, input *UpdateUnitInput) (*models.Unit, error) {
	var unit models.Unit
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&unit, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnitNotFound
			}
			return persistenceError(err)
		}

		updates := map[string]interface{}{}
		if input.Number != "" {
			updates["number"] = input.Number
		}
		if input.Type != "" {
			updates["type"] = input.Type
		}
		if input.Rent != nil {
			updates["rent"] = *input.Rent
		}
		if input.Status != "" && input.Status != unit.Status {
			if input.Status == models.UnitStatusOccupied || unit.Status == models.UnitStatusOccupied {
				return ErrUnitOccupied
			}
			updates["status"] = input.Status
		}

		if len(updates) > 0 {
			if err := tx.Model(&unit).Updates(updates).Error; err != nil {
				return persistenceError(err)
			}
		}
		return tx.Preload("Floor").Preload("Floor.Property").First(&unit, unit.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}
