package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Unknown error",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Missing required fields",
	ErrTokenInvalid:    "Invalid authentication token",
	ErrForbidden:       "Insufficient permissions",
	ErrTooManyRequests: "Too many requests",
	ErrConflict:        "Conflict with the current state",

	// User related error codes
	ErrUserNotFound:          "User not found",
	ErrUserAlreadyExist:      "User already exists",
	ErrUserPasswordIncorrect: "Invalid credentials",

	// Property and unit related error codes
	ErrPropertyNotFound: "Property not found",
	ErrUnitNotFound:     "Unit not found",
	ErrUnitNotVacant:    "Unit is not vacant",
	ErrUnitOccupied:     "Unit is occupied",

	// Tenant related error codes
	ErrTenantNotFound:  "Tenant not found",
	ErrTenantHasNoUnit: "Tenant unit not found",

	// Payment related error codes
	ErrPaymentNotFound: "Payment not found",

	// Maintenance related error codes
	ErrMaintenanceNotFound:    "Request not found",
	ErrMaintenanceNotEditable: "Only pending requests can be edited",

	// Database related error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrConflict:        StatusConflict,

	// User related error codes
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Property and unit related error codes
	ErrPropertyNotFound: StatusNotFound,
	ErrUnitNotFound:     StatusNotFound,
	ErrUnitNotVacant:    StatusConflict,
	ErrUnitOccupied:     StatusConflict,

	// Tenant related error codes
	ErrTenantNotFound:  StatusNotFound,
	ErrTenantHasNoUnit: StatusNotFound,

	// Payment related error codes
	ErrPaymentNotFound: StatusNotFound,

	// Maintenance related error codes
	ErrMaintenanceNotFound:    StatusNotFound,
	ErrMaintenanceNotEditable: StatusConflict,

	// Database related error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
