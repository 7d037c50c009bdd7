package testplan

import "errors"

var (
	// ErrNoDimensions is returned when a plan declares no dimensions.
	ErrNoDimensions = errors.New("testplan: must declare at least one dimension")
	// ErrInvalidStrength is returned when a plan's strength is below 1.
	ErrInvalidStrength = errors.New("testplan: strength must be at least 1")
	// ErrDimensionNoValues is returned when a declared dimension has no values.
	ErrDimensionNoValues = errors.New("testplan: dimension must declare at least one value")
	// ErrDimensionNoName is returned when a declared dimension has an empty name.
	ErrDimensionNoName = errors.New("testplan: dimension must have a name")
	// ErrUnknownConstraintKind is returned when a constraint's kind isn't recognized.
	ErrUnknownConstraintKind = errors.New("testplan: unknown constraint kind")
)
