package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sostinewaliaula/rental-management-system/models"
)

func TestCreatePropertyWithNestedFloorsAndUnits(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropertyService(db, testConfig())

	property, err := service.CreateProperty(&CreatePropertyInput{
		Name:     "Sunrise Apartments",
		Location: "Nairobi West",
		Type:     "apartment",
		Floors: []CreateFloorInput{
			{
				Name: "Ground Floor",
				Units: []CreateUnitInput{
					{Number: "G1", Type: "one-bedroom", Rent: 45000},
					{Number: "G2", Type: "bedsitter", Status: models.UnitStatusMaintenance, Rent: 30000},
				},
			},
			{Name: "First Floor"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, property.Floors, 2)
	assert.Len(t, property.Floors[0].Units, 2)

	// units default to vacant unless told otherwise
	assert.Equal(t, models.UnitStatusVacant, property.Floors[0].Units[0].Status)
	assert.Equal(t, models.UnitStatusMaintenance, property.Floors[0].Units[1].Status)
}

func TestCreatePropertyMissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewPropertyService(db, testConfig())

	_, err := service.CreateProperty(&CreatePropertyInput{Name: "No Floors"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	service := NewPropertyService(db, testConfig())

	updated, err := service.UpdateProperty(property.ID, map[string]interface{}{
		"name":     "Sunset Apartments",
		"location": "Kilimani",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Sunset Apartments", updated.Name)
	assert.Equal(t, "Kilimani", updated.Location)
}

func TestDeletePropertyBlockedWhileOccupied(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	seedTenant(t, db, property.Floors[0].Units[0].ID, "tina@example.com")

	service := NewPropertyService(db, testConfig())
	err := service.DeleteProperty(property.ID)
	assert.ErrorIs(t, err, ErrUnitOccupied)
	assert.ErrorIs(t, err, ErrConflict)

	// nothing was deleted
	var count int64
	db.Model(&models.Unit{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestDeletePropertyRemovesFloorsAndUnits(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)

	service := NewPropertyService(db, testConfig())
	assert.NoError(t, service.DeleteProperty(property.ID))

	var propertyCount, floorCount, unitCount int64
	db.Model(&models.Property{}).Count(&propertyCount)
	db.Model(&models.Floor{}).Count(&floorCount)
	db.Model(&models.Unit{}).Count(&unitCount)
	assert.Equal(t, int64(0), propertyCount)
	assert.Equal(t, int64(0), floorCount)
	assert.Equal(t, int64(0), unitCount)
}

func TestListVacantUnits(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	seedTenant(t, db, property.Floors[0].Units[0].ID, "tina@example.com")

	service := NewPropertyService(db, testConfig())
	units, err := service.ListVacantUnits()
	assert.NoError(t, err)
	assert.Len(t, units, 1)
	assert.Equal(t, "G2", units[0].Number)
	assert.NotNil(t, units[0].Floor)
}

func TestUpdateUnitTogglesMaintenance(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	service := NewPropertyService(db, testConfig())
	updated, err := service.UpdateUnit(unit.ID, &UpdateUnitInput{Status: models.UnitStatusMaintenance})
	assert.NoError(t, err)
	assert.Equal(t, models.UnitStatusMaintenance, updated.Status)

	updated, err = service.UpdateUnit(unit.ID, &UpdateUnitInput{Status: models.UnitStatusVacant})
	assert.NoError(t, err)
	assert.Equal(t, models.UnitStatusVacant, updated.Status)
}

func TestUpdateUnitCannotTouchOccupancy(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	occupied := property.Floors[0].Units[0]
	vacant := property.Floors[0].Units[1]
	seedTenant(t, db, occupied.ID, "tina@example.com")

	service := NewPropertyService(db, testConfig())

	// an occupied unit cannot be edited out of occupancy
	_, err := service.UpdateUnit(occupied.ID, &UpdateUnitInput{Status: models.UnitStatusVacant})
	assert.ErrorIs(t, err, ErrUnitOccupied)

	// and no unit can be edited into occupancy
	_, err = service.UpdateUnit(vacant.ID, &UpdateUnitInput{Status: models.UnitStatusOccupied})
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestUpdateUnitRent(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	rent := 50000.0
	service := NewPropertyService(db, testConfig())
	updated, err := service.UpdateUnit(unit.ID, &UpdateUnitInput{Rent: &rent})
	assert.NoError(t, err)
	assert.Equal(t, 50000.0, updated.Rent)
}
