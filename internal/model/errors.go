package model

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable classification of a validation failure.
type ErrorCode string

const (
	// ErrCodeMissingData means a required category object is absent.
	ErrCodeMissingData ErrorCode = "MISSING_DATA"
	// ErrCodeInvalidInput means a numeric field is out of range, NaN, or infinite.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeTypeError means a field carried a value of the wrong type.
	ErrCodeTypeError ErrorCode = "TYPE_ERROR"
)

// ValidationError reports why customer metrics were rejected. It carries
// the failing category so callers can highlight the offending section.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Factor  Factor    `json:"factor,omitempty"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Factor != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Factor, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a ValidationError for the given category.
func NewValidationError(code ErrorCode, factor Factor, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Factor:  factor,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsValidationError unwraps a ValidationError from err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
