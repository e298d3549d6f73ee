package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when an item ID does not resolve.
	ErrItemNotFound = errors.New("item not found")

	// ErrWeekNotFound is returned when a demand edit targets a week that
	// was never recorded (or has already been evicted).
	ErrWeekNotFound = errors.New("demand week not found")
)

// ValidationError reports which input field failed validation. Handlers map
// it to a 400 with the field name so callers are never silently defaulted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
