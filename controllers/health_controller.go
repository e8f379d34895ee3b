package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/internal/error/code"
	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// HealthController reports process and database liveness
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		default:
			controller.Ping()
		}
	}
}

// Ping answers without touching any dependency
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Health checks the database connection
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /health [get]
func (c *HealthController) Health() {
	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, gin.H{
			"status": "degraded",
			"time":   time.Now().UTC(),
		})
		return
	}

	response.Success(c.Ctx, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}
