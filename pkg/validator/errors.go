package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownField is returned when no validator is registered under the requested field name.
	ErrUnknownField = errors.New("unknown field")
)
