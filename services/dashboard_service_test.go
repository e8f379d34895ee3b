package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sostinewaliaula/rental-management-system/models"
)

func TestDashboardStatsWithoutCache(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db)
	unit := property.Floors[0].Units[0]
	tenant := seedTenant(t, db, unit.ID, "tina@example.com")

	// completed payment in the current month counts toward revenue
	now := time.Now()
	paymentService := NewPaymentService(db, testConfig())
	_, err := paymentService.RecordOrCompletePayment(tenant.ID, int(now.Month()), now.Year(), "mpesa")
	assert.NoError(t, err)

	maintenanceService := NewMaintenanceService(db, testConfig())
	_, err = maintenanceService.CreateRequest(&CreateMaintenanceInput{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips constantly",
		Priority:    models.MaintenancePriorityMedium,
		UnitID:      unit.ID,
		TenantID:    &tenant.ID,
	})
	assert.NoError(t, err)

	service := NewDashboardService(db, testConfig(), nil)
	stats, err := service.GetStats()
	assert.NoError(t, err)

	assert.Equal(t, int64(1), stats.Properties)
	assert.Equal(t, int64(2), stats.Units)
	assert.Equal(t, int64(1), stats.UnitsByStatus[string(models.UnitStatusOccupied)])
	assert.Equal(t, int64(1), stats.UnitsByStatus[string(models.UnitStatusVacant)])
	assert.Equal(t, int64(1), stats.Tenants)
	assert.Equal(t, 45000.0, stats.MonthlyRevenue)
	assert.Equal(t, int64(1), stats.PendingMaintenance)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestDashboardStatsEmptyDatastore(t *testing.T) {
	db := setupTestDB(t)

	service := NewDashboardService(db, testConfig(), nil)
	stats, err := service.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Properties)
	assert.Equal(t, 0.0, stats.MonthlyRevenue)
}
