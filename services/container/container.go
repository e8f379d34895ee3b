package container

import (
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/services"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Business services
	userService        services.InterfaceUserService
	propertyService    services.InterfacePropertyService
	tenantService      services.InterfaceTenantService
	paymentService     services.InterfacePaymentService
	maintenanceService services.InterfaceMaintenanceService
	dashboardService   services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices wires up all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// A dead Redis only disables stat caching
	if err := c.redisService.Ping(); err != nil {
		log.Printf("Redis connection test failed: %v, dashboard caching disabled", err)
		c.redisService = nil
	}

	// Business services
	c.userService = services.NewUserService(c.db, c.config)
	c.propertyService = services.NewPropertyService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.maintenanceService = services.NewMaintenanceService(c.db, c.config)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "property":
		return c.propertyService
	case "tenant":
		return c.tenantService
	case "payment":
		return c.paymentService
	case "maintenance":
		return c.maintenanceService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
