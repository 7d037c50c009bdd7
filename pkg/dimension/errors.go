package dimension

import "errors"

var (
	// ErrEmptyName is returned when a dimension is constructed with an empty name.
	ErrEmptyName = errors.New("dimension: name must not be empty")
	// ErrNoValues is returned when a dimension is constructed with no values.
	ErrNoValues = errors.New("dimension: must have at least one value")
	// ErrDuplicateValue is returned when a dimension's value list contains a duplicate.
	ErrDuplicateValue = errors.New("dimension: duplicate value")
	// ErrDefaultNotInValues is returned when an explicit default is not one of the
	// dimension's declared values.
	ErrDefaultNotInValues = errors.New("dimension: default value not in value list")
	// ErrDuplicateDimension is returned when two dimensions in a space share a name.
	ErrDuplicateDimension = errors.New("dimension: duplicate dimension name in space")
	// ErrUnknownDimension is returned when a dimension name is not present in a space.
	ErrUnknownDimension = errors.New("dimension: unknown dimension name")
	// ErrValueNotInDimension is returned when a value is not among a dimension's
	// declared values.
	ErrValueNotInDimension = errors.New("dimension: value not in dimension")
	// ErrMissingDimension is returned when a combination is built without a value
	// for every dimension in its space.
	ErrMissingDimension = errors.New("dimension: combination missing a dimension value")
)
