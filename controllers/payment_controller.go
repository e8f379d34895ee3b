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

// InterfacePaymentController defines the payment controller interface
type InterfacePaymentController interface {
	GetPayments()
	GetMyPayments()
	PayRent()
	UpdatePayment()
}

// PaymentController handles rent ledger requests
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController creates a new payment controller
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PayRentRequest represents a rent payment request. Tenants pay for
// themselves; landlords and admins must name the tenant.
type PayRentRequest struct {
	TenantID uint   `json:"tenantId" example:"1"`
	Month    int    `json:"month" binding:"required,min=1,max=12" example:"3"`
	Year     int    `json:"year" binding:"required,gt=0" example:"2024"`
	Method   string `json:"method" example:"mpesa"`
}

// UpdatePaymentRequest represents an administrative payment override
type UpdatePaymentRequest struct {
	Status    string `json:"status" binding:"omitempty,oneof=pending completed overdue" example:"completed"`
	Method    string `json:"method" example:"bank"`
	Reference string `json:"reference" example:"MPE123456789"`
	Date      string `json:"date" example:"2024-03-04"`
}

// HandlePaymentFunc returns a gin handler for payment requests
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getMyPayments":
			controller.GetMyPayments()
		case "payRent":
			controller.PayRent()
		case "updatePayment":
			controller.UpdatePayment()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// GetPayments lists all payments
// @Summary      List payments
// @Tags         Payment
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	page, pageSize := parsePagination(c.Ctx)

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetAllPayments(page, pageSize)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"payments":  payments,
	})
}

// GetMyPayments lists the logged-in tenant's payments
// @Summary      Current tenant payments
// @Tags         Payment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /payments/me [get]
func (c *PaymentController) GetMyPayments() {
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

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetTenantPayments(tenant.ID)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"payments": payments})
}

// PayRent records a rent payment for a month
// @Summary      Pay rent
// @Description  Record a completed rent payment for a period. Paying an already settled period returns the existing payment instead of creating a second one.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body PayRentRequest true "Payment parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) PayRent() {
	var req PayRentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, nil)
		return
	}

	tenantID := req.TenantID
	role, _ := c.Ctx.Get("role")
	if role == string(models.RoleTenant) {
		// tenants may only pay for themselves
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
		tenantID = tenant.ID
	} else if tenantID == 0 {
		response.ParamError(c.Ctx, "tenantId is required")
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.RecordOrCompletePayment(tenantID, req.Month, req.Year, req.Method)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"payment": payment})
}

// UpdatePayment applies administrative overrides to a payment
// @Summary      Update payment
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "Payment ID"
// @Param        request body UpdatePaymentRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /payments/{id} [patch]
func (c *PaymentController) UpdatePayment() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	input := services.UpdatePaymentInput{
		Status:    models.PaymentStatus(req.Status),
		Method:    req.Method,
		Reference: req.Reference,
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid date")
			return
		}
		input.Date = &date
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.UpdatePayment(id, &input)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"payment": payment})
}
