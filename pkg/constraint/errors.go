package constraint

import "errors"

var (
	// ErrEmptyName is returned when a constraint is constructed with an empty name.
	ErrEmptyName = errors.New("constraint: name must not be empty")
	// ErrNilPredicate is returned when a constraint is constructed with a nil predicate.
	ErrNilPredicate = errors.New("constraint: predicate must not be nil")
	// ErrNoConditions is returned when at_most_one is constructed with no conditions.
	ErrNoConditions = errors.New("constraint: at_most_one requires at least one condition")
)
