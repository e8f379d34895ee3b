package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/internal/error/code"
	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/services"
	"github.com/sostinewaliaula/rental-management-system/services/container"
)

// Lease dates arrive as date-only strings
const dateLayout = "2006-01-02"

// InterfaceTenantController defines the tenant controller interface
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	GetMe()
	GetVacantUnits()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
}

// TenantController handles tenant lifecycle requests
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController creates a new tenant controller
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest represents a create tenant request
type TenantRequest struct {
	Name       string `json:"name" binding:"required" example:"Tina Tenant"`
	Email      string `json:"email" binding:"required,email" example:"tenant@example.com"`
	Phone      string `json:"phone" binding:"required" example:"+254700000000"`
	MoveInDate string `json:"moveInDate" binding:"required" example:"2024-01-01"`
	LeaseEnd   string `json:"leaseEnd" binding:"required" example:"2024-12-31"`
	UnitID     uint   `json:"unitId" binding:"required" example:"2"`
	Password   string `json:"password" example:"Tenant@123"` // optional, generated when omitted
}

// UpdateTenantRequest represents an update tenant request; a unitId
// different from the tenant's current unit triggers a reassignment
type UpdateTenantRequest struct {
	Name       string `json:"name" example:"Tina T."`
	Email      string `json:"email" binding:"omitempty,email" example:"tina@example.com"`
	Phone      string `json:"phone" example:"+254711111111"`
	MoveInDate string `json:"moveInDate" example:"2024-02-01"`
	LeaseEnd   string `json:"leaseEnd" example:"2025-01-31"`
	Status     string `json:"status" binding:"omitempty,oneof=active late ending" example:"active"`
	UnitID     *uint  `json:"unitId" example:"3"`
}

// HandleTenantFunc returns a gin handler for tenant requests
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "getMe":
			controller.GetMe()
		case "getVacantUnits":
			controller.GetVacantUnits()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetTenants lists all tenants
// @Summary      List tenants
// @Description  List all tenants with their unit, floor and property
// @Tags         Tenant
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	page, pageSize := parsePagination(c.Ctx)

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, total, err := tenantService.GetAllTenants(page, pageSize)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"tenants":   tenants,
	})
}

// GetTenant returns one tenant
// @Summary      Get tenant
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(id)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"tenant": tenant})
}

// GetMe returns the tenant profile of the logged-in user
// @Summary      Current tenant profile
// @Tags         Tenant
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/me [get]
func (c *TenantController) GetMe() {
	userID, exists := c.Ctx.Get("userID")
	if !exists {
		response.Unauthorized(c.Ctx)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByUserID(userID.(uint))
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"tenant": tenant})
}

// GetVacantUnits lists units available for assignment
// @Summary      List vacant units
// @Tags         Tenant
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /tenants/vacant-units [get]
func (c *TenantController) GetVacantUnits() {
	propertyService := c.Container.GetService("property").(services.InterfacePropertyService)
	units, err := propertyService.ListVacantUnits()
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"units": units})
}

// CreateTenant moves a tenant into a vacant unit
// @Summary      Create tenant
// @Description  Create the tenant, their login account and claim the unit in one transaction. The plaintext password is returned once.
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "Tenant parameters"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	moveInDate, err := time.Parse(dateLayout, req.MoveInDate)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid moveInDate")
		return
	}
	leaseEnd, err := time.Parse(dateLayout, req.LeaseEnd)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid leaseEnd")
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, credentials, err := tenantService.CreateTenant(&services.CreateTenantInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		MoveInDate: moveInDate,
		LeaseEnd:   leaseEnd,
		UnitID:     req.UnitID,
		Password:   req.Password,
	})
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{
		"tenant":      tenant,
		"credentials": credentials,
	})
}

// UpdateTenant updates tenant details, reassigning the unit when asked
// @Summary      Update tenant
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Param        request body UpdateTenantRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tenants/{id} [patch]
func (c *TenantController) UpdateTenant() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateTenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	input := services.UpdateTenantInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: models.TenantStatus(req.Status),
		UnitID: req.UnitID,
	}
	if req.MoveInDate != "" {
		moveInDate, err := time.Parse(dateLayout, req.MoveInDate)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid moveInDate")
			return
		}
		input.MoveInDate = &moveInDate
	}
	if req.LeaseEnd != "" {
		leaseEnd, err := time.Parse(dateLayout, req.LeaseEnd)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid leaseEnd")
			return
		}
		input.LeaseEnd = &leaseEnd
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.UpdateTenant(id, &input)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"tenant": tenant})
}

// DeleteTenant removes a tenant and vacates their unit
// @Summary      Delete tenant
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.DeleteTenant(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.NoContent(c.Ctx)
}
