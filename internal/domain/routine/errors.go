package routine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers both a missing record and an ownership
	// mismatch, so callers cannot probe for other users' routines.
	ErrUnauthorized = errors.New("routine not found or not owned by caller")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product has no price in the catalog")
	ErrInvalidFrequency   = errors.New("invalid delivery frequency")
	ErrCapacityExceeded   = errors.New("max orders reached for this routine")
)

// ValidationError reports a malformed input field by name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
