package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/services"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	GetStats()
}

// DashboardController handles the landlord overview endpoint
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler for dashboard requests
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetStats returns occupancy, revenue and maintenance counters
// @Summary      Dashboard statistics
// @Description  Aggregate counts of properties, units by status, tenants, current-month revenue and pending maintenance
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /dashboard/stats [get]
func (c *DashboardController) GetStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetStats()
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"stats": stats})
}
