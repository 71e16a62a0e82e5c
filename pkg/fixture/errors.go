package fixture

import "errors"

var (
	// ErrInvalidSuite is returned when a suite document is malformed.
	ErrInvalidSuite = errors.New("invalid fixture suite")

	// ErrSuiteNotFound is returned when no loaded suite has the requested name.
	ErrSuiteNotFound = errors.New("fixture suite not found")

	// ErrUnknownTransform is returned for a transform suite naming an unknown sanitizer.
	ErrUnknownTransform = errors.New("unknown transform")
)
