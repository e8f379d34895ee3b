package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 60 * time.Second
)

// InterfaceDashboardService defines the dashboard statistics interface
type InterfaceDashboardService interface {
	GetStats() (*DashboardStats, error)
}

// DashboardStats is the landlord overview: counts, occupancy and revenue
type DashboardStats struct {
	Properties         int64              `json:"properties"`
	Units              int64              `json:"units"`
	UnitsByStatus      map[string]int64   `json:"units_by_status"`
	Tenants            int64              `json:"tenants"`
	MonthlyRevenue     float64            `json:"monthly_revenue"`
	PendingMaintenance int64              `json:"pending_maintenance"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

// DashboardService aggregates stats over the datastore, cached in Redis
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService // may be nil, stats are then computed per call
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetStats returns the dashboard statistics, serving a cached copy when one
// is fresh and falling back to the datastore when the cache is unavailable
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	if s.Cache != nil {
		var cached DashboardStats
		if err := s.Cache.Get(dashboardStatsKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.computeStats()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		// Cache failures only cost the next caller a recompute
		_ = s.Cache.Set(dashboardStatsKey, stats, dashboardStatsTTL)
	}
	return stats, nil
}

// computeStats aggregates counts and the current month's completed revenue
func (s *DashboardService) computeStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		UnitsByStatus: map[string]int64{},
		GeneratedAt:   time.Now(),
	}

	if err := s.DB.Model(&models.Property{}).Count(&stats.Properties).Error; err != nil {
		return nil, persistenceError(err)
	}
	if err := s.DB.Model(&models.Unit{}).Count(&stats.Units).Error; err != nil {
		return nil, persistenceError(err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := s.DB.Model(&models.Unit{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	for _, c := range counts {
		stats.UnitsByStatus[c.Status] = c.Count
	}

	if err := s.DB.Model(&models.Tenant{}).Count(&stats.Tenants).Error; err != nil {
		return nil, persistenceError(err)
	}

	now := time.Now()
	var revenue *float64
	err = s.DB.Model(&models.Payment{}).
		Select("SUM(amount)").
		Where("month = ? AND year = ? AND status = ?", int(now.Month()), now.Year(), models.PaymentStatusCompleted).
		Scan(&revenue).Error
	if err != nil {
		return nil, persistenceError(err)
	}
	if revenue != nil {
		stats.MonthlyRevenue = *revenue
	}

	err = s.DB.Model(&models.MaintenanceRequest{}).
		Where("status = ?", models.MaintenanceStatusPending).
		Count(&stats.PendingMaintenance).Error
	if err != nil {
		return nil, persistenceError(err)
	}

	return stats, nil
}
