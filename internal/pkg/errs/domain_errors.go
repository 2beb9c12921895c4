package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrIllegalTransition = errors.New("illegal status transition")

	// Extension errors
	ErrExtensionNotFound  = errors.New("extension not found")
	ErrExtensionConflict  = errors.New("extension conflict")
	ErrExtensionCancelled = errors.New("extension is already cancelled")

	// Driver errors
	ErrDriverNotFound = errors.New("driver not found")

	// Validation errors
	ErrValidation             = errors.New("validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
