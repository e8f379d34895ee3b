package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: business rule conflict.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request parameter binding error.
	ErrBind
	// ErrValidation - 400: request parameter validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrForbidden - 403: insufficient permissions.
	ErrForbidden
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
	// ErrConflict - 409: business rule conflict.
	ErrConflict
)

// User related error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: user already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect credentials.
	ErrUserPasswordIncorrect
)

// Property and unit related error codes (102xxx).
const (
	// ErrPropertyNotFound - 404: property not found.
	ErrPropertyNotFound int = iota + 102000
	// ErrUnitNotFound - 404: unit not found.
	ErrUnitNotFound
	// ErrUnitNotVacant - 409: unit is not vacant.
	ErrUnitNotVacant
	// ErrUnitOccupied - 409: unit is occupied.
	ErrUnitOccupied
)

// Tenant related error codes (103xxx).
const (
	// ErrTenantNotFound - 404: tenant not found.
	ErrTenantNotFound int = iota + 103000
	// ErrTenantHasNoUnit - 404: tenant has no unit.
	ErrTenantHasNoUnit
)

// Payment related error codes (104xxx).
const (
	// ErrPaymentNotFound - 404: payment not found.
	ErrPaymentNotFound int = iota + 104000
)

// Maintenance related error codes (105xxx).
const (
	// ErrMaintenanceNotFound - 404: maintenance request not found.
	ErrMaintenanceNotFound int = iota + 105000
	// ErrMaintenanceNotEditable - 409: only pending requests can be edited.
	ErrMaintenanceNotEditable
)

// Database related error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
