package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/utils"
)

func TestCreateTenantClaimsUnit(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	service := NewTenantService(db, testConfig())

	tenant, credentials, err := service.CreateTenant(&CreateTenantInput{
		Name:       "Tina Tenant",
		Email:      "tina@example.com",
		Phone:      "+254700000000",
		MoveInDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     unit.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TenantStatusActive, tenant.Status)
	assert.Equal(t, unit.ID, *tenant.UnitID)

	// the unit is now occupied
	var claimed models.Unit
	assert.NoError(t, db.First(&claimed, unit.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, claimed.Status)

	// generated credentials follow the Tenant@NNNNNN shape and match the
	// stored hash
	assert.Equal(t, "tina@example.com", credentials.Email)
	assert.True(t, strings.HasPrefix(credentials.Password, "Tenant@"))
	assert.Len(t, credentials.Password, len("Tenant@")+6)

	var user models.User
	assert.NoError(t, db.First(&user, tenant.UserID).Error)
	assert.Equal(t, models.RoleTenant, user.Role)
	assert.True(t, utils.CheckPasswordHash(credentials.Password, user.Password))
}

func TestCreateTenantUnitNotVacant(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	seedTenant(t, db, unit.ID, "first@example.com")

	service := NewTenantService(db, testConfig())
	_, _, err := service.CreateTenant(&CreateTenantInput{
		Name:       "Second Tenant",
		Email:      "second@example.com",
		Phone:      "+254711111111",
		MoveInDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     unit.ID,
	})
	assert.ErrorIs(t, err, ErrUnitNotVacant)
	assert.ErrorIs(t, err, ErrConflict)

	// the losing attempt leaves no partial rows behind
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", "second@example.com").Count(&userCount)
	assert.Equal(t, int64(0), userCount)

	var tenantCount int64
	db.Model(&models.Tenant{}).Count(&tenantCount)
	assert.Equal(t, int64(1), tenantCount)
}

func TestCreateTenantLosesClaimToCompetingMoveIn(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	// A competitor occupies the unit between our lookup and our claim.
	// Forced from an update callback so the interleaving is deterministic:
	// the conditional claim matches zero rows and the whole move-in rolls
	// back.
	raced := false
	err := db.Callback().Update().Before("gorm:update").Register("competing_claim", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "units" {
			return
		}
		raced = true
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"UPDATE units SET status = ? WHERE id = ?", string(models.UnitStatusOccupied), unit.ID)
	})
	assert.NoError(t, err)
	defer db.Callback().Update().Remove("competing_claim")

	service := NewTenantService(db, testConfig())
	_, _, err = service.CreateTenant(&CreateTenantInput{
		Name:       "Second Tenant",
		Email:      "second@example.com",
		Phone:      "+254711111111",
		MoveInDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     unit.ID,
	})
	assert.ErrorIs(t, err, ErrUnitNotVacant)
	assert.True(t, raced)

	// the losing move-in leaves no partial rows behind
	var tenantCount, userCount int64
	db.Model(&models.Tenant{}).Count(&tenantCount)
	db.Model(&models.User{}).Where("email = ?", "second@example.com").Count(&userCount)
	assert.Equal(t, int64(0), tenantCount)
	assert.Equal(t, int64(0), userCount)
}

func TestCreateTenantEmailTakenRollsBackClaim(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]

	assert.NoError(t, db.Create(&models.User{
		Name:     "Existing",
		Email:    "taken@example.com",
		Password: "Secret@123",
		Role:     models.RoleLandlord,
	}).Error)

	service := NewTenantService(db, testConfig())
	_, _, err := service.CreateTenant(&CreateTenantInput{
		Name:       "Tina Tenant",
		Email:      "taken@example.com",
		Phone:      "+254700000000",
		MoveInDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     unit.ID,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// the unit claim was rolled back with the transaction
	var reloaded models.Unit
	assert.NoError(t, db.First(&reloaded, unit.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, reloaded.Status)
}

func TestCreateTenantMissingFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())

	_, _, err := service.CreateTenant(&CreateTenantInput{Name: "No Unit"})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTenantUnitNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())

	_, _, err := service.CreateTenant(&CreateTenantInput{
		Name:       "Tina Tenant",
		Email:      "tina@example.com",
		Phone:      "+254700000000",
		MoveInDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     999,
	})
	assert.ErrorIs(t, err, ErrUnitNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTenantReassignsUnit(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	first := property.Floors[0].Units[0]
	second := property.Floors[0].Units[1]
	tenant := seedTenant(t, db, first.ID, "tina@example.com")

	service := NewTenantService(db, testConfig())
	updated, err := service.UpdateTenant(tenant.ID, &UpdateTenantInput{UnitID: &second.ID})
	assert.NoError(t, err)
	assert.Equal(t, second.ID, *updated.UnitID)

	var prior, target models.Unit
	assert.NoError(t, db.First(&prior, first.ID).Error)
	assert.NoError(t, db.First(&target, second.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, prior.Status)
	assert.Equal(t, models.UnitStatusOccupied, target.Status)
}

func TestUpdateTenantSameUnitIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	tenant := seedTenant(t, db, unit.ID, "tina@example.com")

	service := NewTenantService(db, testConfig())
	updated, err := service.UpdateTenant(tenant.ID, &UpdateTenantInput{UnitID: &unit.ID})
	assert.NoError(t, err)
	assert.Equal(t, unit.ID, *updated.UnitID)

	var reloaded models.Unit
	assert.NoError(t, db.First(&reloaded, unit.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, reloaded.Status)
}

func TestUpdateTenantReassignToOccupiedUnit(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	first := property.Floors[0].Units[0]
	second := property.Floors[0].Units[1]
	tenant := seedTenant(t, db, first.ID, "tina@example.com")
	seedTenant(t, db, second.ID, "other@example.com")

	service := NewTenantService(db, testConfig())
	_, err := service.UpdateTenant(tenant.ID, &UpdateTenantInput{UnitID: &second.ID})
	assert.ErrorIs(t, err, ErrUnitNotVacant)

	// the tenant keeps their original unit and it stays occupied
	var reloaded models.Tenant
	assert.NoError(t, db.First(&reloaded, tenant.ID).Error)
	assert.Equal(t, first.ID, *reloaded.UnitID)

	var prior models.Unit
	assert.NoError(t, db.First(&prior, first.ID).Error)
	assert.Equal(t, models.UnitStatusOccupied, prior.Status)
}

func TestUpdateTenantStatus(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	tenant := seedTenant(t, db, property.Floors[0].Units[0].ID, "tina@example.com")

	service := NewTenantService(db, testConfig())
	updated, err := service.UpdateTenant(tenant.ID, &UpdateTenantInput{Status: models.TenantStatusLate})
	assert.NoError(t, err)
	assert.Equal(t, models.TenantStatusLate, updated.Status)
}

func TestDeleteTenantVacatesAndCleansUp(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	tenant := seedTenant(t, db, unit.ID, "tina@example.com")

	paymentService := NewPaymentService(db, testConfig())
	_, err := paymentService.RecordOrCompletePayment(tenant.ID, 3, 2024, "mpesa")
	assert.NoError(t, err)

	maintenanceService := NewMaintenanceService(db, testConfig())
	request, err := maintenanceService.CreateRequest(&CreateMaintenanceInput{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips constantly",
		Priority:    models.MaintenancePriorityMedium,
		UnitID:      unit.ID,
		TenantID:    &tenant.ID,
	})
	assert.NoError(t, err)

	service := NewTenantService(db, testConfig())
	assert.NoError(t, service.DeleteTenant(tenant.ID))

	// the unit is vacant again
	var reloaded models.Unit
	assert.NoError(t, db.First(&reloaded, unit.ID).Error)
	assert.Equal(t, models.UnitStatusVacant, reloaded.Status)

	// payments are gone, the login account is gone
	var paymentCount, userCount int64
	db.Model(&models.Payment{}).Where("tenant_id = ?", tenant.ID).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)
	db.Model(&models.User{}).Where("id = ?", tenant.UserID).Count(&userCount)
	assert.Equal(t, int64(0), userCount)

	// the maintenance request survives, detached from the tenant
	var detached models.MaintenanceRequest
	assert.NoError(t, db.First(&detached, request.ID).Error)
	assert.Nil(t, detached.TenantID)

	_, err = service.GetTenantByID(tenant.ID)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestDeleteTenantNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewTenantService(db, testConfig())
	assert.ErrorIs(t, service.DeleteTenant(42), ErrTenantNotFound)
}

func TestGetTenantByUserID(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	tenant := seedTenant(t, db, property.Floors[0].Units[0].ID, "tina@example.com")

	service := NewTenantService(db, testConfig())
	found, err := service.GetTenantByUserID(tenant.UserID)
	assert.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)
	assert.NotNil(t, found.Unit)
	assert.Equal(t, "G1", found.Unit.Number)
}
