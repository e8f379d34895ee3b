package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/internal/error/code"
	"github.com/sostinewaliaula/rental-management-system/internal/error/response"
	"github.com/sostinewaliaula/rental-management-system/services"
)

// serviceErrorCode maps a service error onto an API error code
func serviceErrorCode(err error) int {
	switch {
	case errors.Is(err, services.ErrUnitNotFound):
		return code.ErrUnitNotFound
	case errors.Is(err, services.ErrUnitNotVacant):
		return code.ErrUnitNotVacant
	case errors.Is(err, services.ErrUnitOccupied):
		return code.ErrUnitOccupied
	case errors.Is(err, services.ErrTenantHasNoUnit):
		return code.ErrTenantHasNoUnit
	case errors.Is(err, services.ErrTenantNotFound):
		return code.ErrTenantNotFound
	case errors.Is(err, services.ErrPropertyNotFound):
		return code.ErrPropertyNotFound
	case errors.Is(err, services.ErrPaymentNotFound):
		return code.ErrPaymentNotFound
	case errors.Is(err, services.ErrRequestNotFound):
		return code.ErrMaintenanceNotFound
	case errors.Is(err, services.ErrRequestNotPending):
		return code.ErrMaintenanceNotEditable
	case errors.Is(err, services.ErrUserNotFound):
		return code.ErrUserNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return code.ErrUserAlreadyExist
	case errors.Is(err, services.ErrInvalidLogin):
		return code.ErrUserPasswordIncorrect
	case errors.Is(err, services.ErrValidation):
		return code.ErrValidation
	case errors.Is(err, services.ErrNotFound):
		return code.ErrRecordNotFound
	case errors.Is(err, services.ErrConflict):
		return code.ErrConflict
	case errors.Is(err, services.ErrPersistence):
		return code.ErrDatabase
	default:
		return code.ErrUnknown
	}
}

// failFromService renders a service error through the unified envelope
func failFromService(ctx *gin.Context, err error) {
	errorCode := serviceErrorCode(err)
	if errorCode == code.ErrDatabase || errorCode == code.ErrUnknown {
		config.Error("service error: %v", err)
	}
	response.Fail(ctx, errorCode, nil)
}
