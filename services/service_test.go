package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Floor{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
	)
	assert.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	return &config.Config{JWTSecretKey: "test_secret"}
}

// seedProperty creates a property with one floor and two vacant units:
// G1 at 45000 and G2 at 30000.
func seedProperty(t *testing.T, db *gorm.DB) *models.Property {
	property := models.Property{
		Name:     "Sunrise Apartments",
		Location: "Nairobi West",
		Type:     "apartment",
		Floors: []models.Floor{
			{
				Name: "Ground Floor",
				Units: []models.Unit{
					{Number: "G1", Type: "one-bedroom", Status: models.UnitStatusVacant, Rent: 45000},
					{Number: "G2", Type: "bedsitter", Status: models.UnitStatusVacant, Rent: 30000},
				},
			},
		},
	}
	err := db.Create(&property).Error
	assert.NoError(t, err)
	return &property
}

// seedTenant moves a tenant into the given unit through the service so the
// full lifecycle (user account, unit claim) runs.
func seedTenant(t *testing.T, db *gorm.DB, unitID uint, email string) *models.Tenant {
	service := NewTenantService(db, testConfig())
	tenant, _, err := service.CreateTenant(&CreateTenantInput{
		Name:       "Tina Tenant",
		Email:      email,
		Phone:      "+254700000000",
		MoveInDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		UnitID:     unitID,
	})
	assert.NoError(t, err)
	return tenant
}
