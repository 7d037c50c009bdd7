package covering

import "errors"

var (
	// ErrInvalidStrength is returned when Generate is called with a
	// strength below 1 or greater than the number of dimensions in the space.
	ErrInvalidStrength = errors.New("covering: strength must be between 1 and the dimension count")
	// ErrEmptySpace is returned when a generator is built over a space with
	// no dimensions.
	ErrEmptySpace = errors.New("covering: dimension space has no dimensions")
	// ErrNoFeasibleCombination names the case where the greedy search
	// exhausts its candidate budget without finding any combination that
	// satisfies the constraint set. A heavily over-constrained space is the
	// usual cause. Generate does not return it: it reports that case as a
	// warning and returns the combinations found so far.
	ErrNoFeasibleCombination = errors.New("covering: no feasible combination found for remaining tuples")
)
