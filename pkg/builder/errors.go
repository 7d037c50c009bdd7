package builder

import "errors"

var (
	// ErrNilAction is returned when a transition or setup is registered
	// with a nil action.
	ErrNilAction = errors.New("builder: action must not be nil")
	// ErrNilChecker is returned when a checker is registered as nil.
	ErrNilChecker = errors.New("builder: checker must not be nil")
	// ErrUnknownDimension is returned when a transition, setup, or checker
	// names a dimension not present in the builder's space.
	ErrUnknownDimension = errors.New("builder: unknown dimension")
	// ErrNoCombinations is returned by Build when generation or the
	// explicit combination list produces no combinations to build a graph
	// from.
	ErrNoCombinations = errors.New("builder: no combinations to build from")
	// ErrInitialNotGenerated is returned when an explicitly set initial
	// combination's id does not match any generated node.
	ErrInitialNotGenerated = errors.New("builder: initial combination not present among generated combinations")
)
