package services

import (
	"errors"
	"fmt"
)

// Error categories. Every service error wraps exactly one of these so
// controllers can map failures onto HTTP responses with errors.Is.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a business-rule violation.
	ErrConflict = errors.New("conflict")
	// ErrPersistence marks a datastore failure. It is not retried here;
	// callers decide.
	ErrPersistence = errors.New("persistence error")
)

// Specific service errors.
var (
	ErrMissingFields     = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidPeriod     = fmt.Errorf("%w: month and year are required", ErrValidation)
	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrEmailTaken        = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrInvalidLogin      = fmt.Errorf("%w: invalid credentials", ErrValidation)
	ErrPropertyNotFound  = fmt.Errorf("%w: property", ErrNotFound)
	ErrUnitNotFound      = fmt.Errorf("%w: unit", ErrNotFound)
	ErrUnitNotVacant     = fmt.Errorf("%w: unit is not vacant", ErrConflict)
	ErrUnitOccupied      = fmt.Errorf("%w: unit is occupied", ErrConflict)
	ErrTenantNotFound    = fmt.Errorf("%w: tenant", ErrNotFound)
	ErrTenantHasNoUnit   = fmt.Errorf("%w: tenant unit", ErrNotFound)
	ErrPaymentNotFound   = fmt.Errorf("%w: payment", ErrNotFound)
	ErrRequestNotFound   = fmt.Errorf("%w: maintenance request", ErrNotFound)
	ErrRequestNotPending = fmt.Errorf("%w: only pending requests can be edited", ErrConflict)
)

// persistenceError wraps a raw datastore error into the persistence category
func persistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
