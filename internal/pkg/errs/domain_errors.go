package errs

import "errors"

// Sentinel errors shared between the usecase layers and the HTTP boundary
var (
	// Inventory errors
	ErrUnitNotFound     = errors.New("unit not found")
	ErrLocationNotFound = errors.New("location not found")

	// Signup errors
	ErrEmailNotAllowed = errors.New("email domain not allowed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
