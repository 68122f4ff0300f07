package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. Each kind
// maps to a distinct caller-facing signal; no two business errors collapse
// into a generic message.
var (
	// Existence checks
	ErrCarNotFound    = errors.New("car not found")
	ErrClientNotFound = errors.New("client not found")
	ErrIssuerNotFound = errors.New("issuer not found")
	ErrRentalNotFound = errors.New("rental not found")

	// Booking errors
	ErrInvalidPeriod  = errors.New("invalid rental period")
	ErrCarUnavailable = errors.New("car is unavailable for the requested period")

	// Settlement errors
	ErrInvalidReturnDate = errors.New("invalid actual return date")
	ErrRentalFinished    = errors.New("rental is already completed or cancelled")
	ErrRentalNotActive   = errors.New("rental is not active")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrConstraintViolation     = errors.New("storage constraint violation")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
