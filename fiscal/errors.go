/*
errors.go - Centralized error types for the fiscal engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Calculator packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Validation errors - caller-correctable bad input (bad date range,
     out-of-range business-day count, unknown enum key). Surfaced directly
     with a field and message so the UI can render field-level errors.
  2. Configuration errors - a rate-table lookup miss that should be
     impossible given validated inputs. A data-table defect, never the
     caller's fault, and never silently mapped to a zero rate.

  Malformed numeric strings are NOT errors: the normalizer substitutes a
  documented fallback instead (see normalize.go).

USAGE:
  if fiscal.IsValidation(err) {
      // 400 to the client with err's field/message
  }

SEE ALSO:
  - rates.go: Returns ConfigurationError on lookup misses
  - calendar.go: Returns ValidationError on bad ranges/counts
*/
package fiscal

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the root of every caller-correctable input error.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration is the root of every rate-table/data defect.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidDateRange is returned when a range has start after end.
	ErrInvalidDateRange = errors.New("invalid date range: start after end")

	// ErrBusinessDaysOutOfRange is returned when a due-date request asks
	// for a business-day count outside [1, 365].
	ErrBusinessDaysOutOfRange = errors.New("business days count out of range [1, 365]")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports bad caller input tied to a specific field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigurationError reports a rate-table lookup miss. A silent zero here
// would mask a data defect in production, so lookups fail loudly instead.
type ConfigurationError struct {
	Table string
	Key   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rate table %q has no entry for key %q", e.Table, e.Key)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error is due to invalid caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrBusinessDaysOutOfRange)
}

// IsConfiguration returns true if the error indicates a rate-table defect.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
