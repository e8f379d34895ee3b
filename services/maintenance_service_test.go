package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sostinewaliaula/rental-management-system/models"
)

func TestCreateMaintenanceRequestDefaults(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	tenant := seedTenant(t, db, unit.ID, "tina@example.com")

	service := NewMaintenanceService(db, testConfig())
	request, err := service.CreateRequest(&CreateMaintenanceInput{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips constantly",
		Priority:    models.MaintenancePriorityMedium,
		UnitID:      unit.ID,
		TenantID:    &tenant.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusPending, request.Status)
	assert.False(t, request.DateReported.IsZero())
	assert.Equal(t, unit.ID, request.UnitID)
	assert.Equal(t, tenant.ID, *request.TenantID)
}

func TestCreateMaintenanceRequestUnknownUnit(t *testing.T) {
	db := setupTestDB(t)
	service := NewMaintenanceService(db, testConfig())

	_, err := service.CreateRequest(&CreateMaintenanceInput{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips constantly",
		Priority:    models.MaintenancePriorityLow,
		UnitID:      999,
	})
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestTenantCanOnlyEditOwnPendingRequest(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	tenant := seedTenant(t, db, unit.ID, "tina@example.com")

	service := NewMaintenanceService(db, testConfig())
	request, err := service.CreateRequest(&CreateMaintenanceInput{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips constantly",
		Priority:    models.MaintenancePriorityMedium,
		UnitID:      unit.ID,
		TenantID:    &tenant.ID,
	})
	assert.NoError(t, err)

	// own pending request: edit allowed
	updated, err := service.UpdateRequestAsTenant(request.ID, tenant.ID, "Tap now leaking badly")
	assert.NoError(t, err)
	assert.Equal(t, "Tap now leaking badly", updated.Description)

	// someone else's request looks like it does not exist
	_, err = service.UpdateRequestAsTenant(request.ID, tenant.ID+1, "not mine")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	// once triaged the tenant can no longer edit
	_, err = service.UpdateRequest(request.ID, models.MaintenanceStatusInProgress, "")
	assert.NoError(t, err)
	_, err = service.UpdateRequestAsTenant(request.ID, tenant.ID, "too late")
	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestUpdateRequestTriage(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	service := NewMaintenanceService(db, testConfig())
	request, err := service.CreateRequest(&CreateMaintenanceInput{
		Title:       "Broken gate",
		Description: "Main gate hinge snapped",
		Priority:    models.MaintenancePriorityLow,
		UnitID:      unit.ID,
	})
	assert.NoError(t, err)

	updated, err := service.UpdateRequest(request.ID, models.MaintenanceStatusCompleted, models.MaintenancePriorityHigh)
	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusCompleted, updated.Status)
	assert.Equal(t, models.MaintenancePriorityHigh, updated.Priority)
}

func TestDeleteRequest(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	service := NewMaintenanceService(db, testConfig())
	request, err := service.CreateRequest(&CreateMaintenanceInput{
		Title:       "Broken gate",
		Description: "Main gate hinge snapped",
		Priority:    models.MaintenancePriorityLow,
		UnitID:      unit.ID,
	})
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteRequest(request.ID))
	assert.ErrorIs(t, service.DeleteRequest(request.ID), ErrRequestNotFound)
}
