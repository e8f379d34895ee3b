package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/internal/error/code"
	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/services"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// InterfaceMaintenanceController defines the maintenance controller interface
type InterfaceMaintenanceController interface {
	GetRequests()
	GetMyRequests()
	CreateRequest()
	UpdateMyRequest()
	UpdateRequest()
	DeleteRequest()
}

// MaintenanceController handles maintenance request endpoints
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMaintenanceController creates a new maintenance controller
func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// MaintenanceRequestBody represents a create maintenance request
type MaintenanceRequestBody struct {
	Title       string `json:"title" binding:"required" example:"Leaking tap"`
	Description string `json:"description" binding:"required" example:"Kitchen tap drips constantly"`
	Priority    string `json:"priority" binding:"omitempty,oneof=high medium low" example:"medium"`
	UnitID      uint   `json:"unitId" example:"2"`
}

// UpdateMyMaintenanceRequest is the tenant-side edit of a pending request
type UpdateMyMaintenanceRequest struct {
	Description string `json:"description" binding:"required" example:"Tap now leaking badly"`
}

// UpdateMaintenanceRequestBody is the landlord-side triage update
type UpdateMaintenanceRequestBody struct {
	Status   string `json:"status" binding:"omitempty,oneof=pending in_progress completed" example:"in_progress"`
	Priority string `json:"priority" binding:"omitempty,oneof=high medium low" example:"high"`
}

// HandleMaintenanceFunc returns a gin handler for maintenance requests
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "getRequests":
			controller.GetRequests()
		case "getMyRequests":
			controller.GetMyRequests()
		case "createRequest":
			controller.CreateRequest()
		case "updateMyRequest":
			controller.UpdateMyRequest()
		case "updateRequest":
			controller.UpdateRequest()
		case "deleteRequest":
			controller.DeleteRequest()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// currentTenant resolves the logged-in user's tenant record
func (c *MaintenanceController) currentTenant() (*models.Tenant, bool) {
	userID, exists := c.Ctx.Get("userID")
	if !exists {
		response.Unauthorized(c.Ctx)
		return nil, false
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByUserID(userID.(uint))
	if err != nil {
		failFromService(c.Ctx, err)
		return nil, false
	}
	return tenant, true
}

// GetRequests lists all maintenance requests
// @Summary      List maintenance requests
// @Tags         Maintenance
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /maintenance [get]
func (c *MaintenanceController) GetRequests() {
	page, pageSize := parsePagination(c.Ctx)

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	requests, total, err := maintenanceService.GetAllRequests(page, pageSize)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"requests":  requests,
	})
}

// GetMyRequests lists the logged-in tenant's maintenance requests
// @Summary      Current tenant maintenance requests
// @Tags         Maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance/me [get]
func (c *MaintenanceController) GetMyRequests() {
	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	requests, err := maintenanceService.GetTenantRequests(tenant.ID)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"requests": requests})
}

// CreateRequest files a maintenance request. Tenants report against their
// own unit; landlords and admins name any unit.
// @Summary      Create maintenance request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        request body MaintenanceRequestBody true "Request parameters"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance [post]
func (c *MaintenanceController) CreateRequest() {
	var req MaintenanceRequestBody
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	if req.Priority == "" {
		req.Priority = string(models.MaintenancePriorityMedium)
	}

	input := services.CreateMaintenanceInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.MaintenancePriority(req.Priority),
		UnitID:      req.UnitID,
	}

	role, _ := c.Ctx.Get("role")
	if role == string(models.RoleTenant) {
		tenant, ok := c.currentTenant()
		if !ok {
			return
		}
		if tenant.UnitID == nil {
			failFromService(c.Ctx, services.ErrTenantHasNoUnit)
			return
		}
		input.UnitID = *tenant.UnitID
		input.TenantID = &tenant.ID
	} else if input.UnitID == 0 {
		response.ParamError(c.Ctx, "unitId is required")
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	request, err := maintenanceService.CreateRequest(&input)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{"request": request})
}

// UpdateMyRequest lets a tenant amend their own pending request
// @Summary      Update own maintenance request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Param        request body UpdateMyMaintenanceRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /maintenance/me/{id} [patch]
func (c *MaintenanceController) UpdateMyRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateMyMaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	tenant, ok := c.currentTenant()
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	request, err := maintenanceService.UpdateRequestAsTenant(id, tenant.ID, req.Description)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"request": request})
}

// UpdateRequest triages a request
// @Summary      Update maintenance request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Param        request body UpdateMaintenanceRequestBody true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance/{id} [patch]
func (c *MaintenanceController) UpdateRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateMaintenanceRequestBody
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	request, err := maintenanceService.UpdateRequest(id, models.MaintenanceStatus(req.Status), models.MaintenancePriority(req.Priority))
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"request": request})
}

// DeleteRequest removes a maintenance request
// @Summary      Delete maintenance request
// @Tags         Maintenance
// @Produce      json
// @Param        id path int true "Request ID"
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance/{id} [delete]
func (c *MaintenanceController) DeleteRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.DeleteRequest(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.NoContent(c.Ctx)
}
