package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/controllers"
	"github.com/sostinewaliaula/rental-management-system/middleware"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	r.Use(middleware.RequestID())

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg)
	// Initialize middleware
	middleware.InitAuthMiddleware(cfg)
	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// liveness
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	// login is rate limited per client IP
	api.POST("/auth/login", middleware.RateLimiter(), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the JWT middleware,
// tiered by role: any authenticated user, landlord and admin, admin only
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Any authenticated role: own profile and tenant self-service
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	auth.Group("/auth").GET("/me", controllers.HandleJWTFunc(container, "me"))

	auth.Group("/tenants").GET("/me", controllers.HandleTenantFunc(container, "getMe"))
	auth.Group("/payments").GET("/me", controllers.HandlePaymentFunc(container, "getMyPayments"))
	auth.Group("/payments").POST("", controllers.HandlePaymentFunc(container, "payRent"))
	auth.Group("/maintenance").GET("/me", controllers.HandleMaintenanceFunc(container, "getMyRequests"))
	auth.Group("/maintenance").POST("", controllers.HandleMaintenanceFunc(container, "createRequest"))
	auth.Group("/maintenance").PATCH("/me/:id", controllers.HandleMaintenanceFunc(container, "updateMyRequest"))

	// Landlord and admin: property, tenant, payment and maintenance management
	landlord := api.Group("/")
	landlord.Use(middleware.AuthenticateLandlord())

	landlord.Group("/properties").GET("", controllers.HandlePropertyFunc(container, "getProperties"))
	landlord.Group("/properties").GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	landlord.Group("/properties").POST("", controllers.HandlePropertyFunc(container, "createProperty"))
	landlord.Group("/properties").PATCH("/:id", controllers.HandlePropertyFunc(container, "updateProperty"))
	landlord.Group("/properties").DELETE("/:id", controllers.HandlePropertyFunc(container, "deleteProperty"))
	landlord.Group("/units").PATCH("/:id", controllers.HandlePropertyFunc(container, "updateUnit"))

	landlord.Group("/tenants").GET("", controllers.HandleTenantFunc(container, "getTenants"))
	landlord.Group("/tenants").GET("/vacant-units", controllers.HandleTenantFunc(container, "getVacantUnits"))
	landlord.Group("/tenants").GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
	landlord.Group("/tenants").POST("", controllers.HandleTenantFunc(container, "createTenant"))
	landlord.Group("/tenants").PATCH("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
	landlord.Group("/tenants").DELETE("/:id", controllers.HandleTenantFunc(container, "deleteTenant"))

	landlord.Group("/payments").GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	landlord.Group("/payments").PATCH("/:id", controllers.HandlePaymentFunc(container, "updatePayment"))

	landlord.Group("/maintenance").GET("", controllers.HandleMaintenanceFunc(container, "getRequests"))
	landlord.Group("/maintenance").PATCH("/:id", controllers.HandleMaintenanceFunc(container, "updateRequest"))
	landlord.Group("/maintenance").DELETE("/:id", controllers.HandleMaintenanceFunc(container, "deleteRequest"))

	landlord.Group("/dashboard").GET("/stats", controllers.HandleDashboardFunc(container, "getStats"))

	// Admin only: account management
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	admin.Group("/users").GET("", controllers.HandleUserFunc(container, "getUsers"))
	admin.Group("/users").GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	admin.Group("/users").POST("", controllers.HandleUserFunc(container, "createUser"))
	admin.Group("/users").PATCH("/:id", controllers.HandleUserFunc(container, "updateUser"))
	admin.Group("/users").DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
}
