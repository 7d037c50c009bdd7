package builder

import (
	"fmt"

	"github.com/corehatch/statecover/pkg/constraint"
	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/graph"
)

type setupKey struct {
	dimension string
	value     dimension.Value
}

// Builder accumulates transitions, setups, checkers, and invariants over a
// dimension space, then lifts a generated or explicit set of combinations
// into a graph.StateGraph.
type Builder struct {
	space       *dimension.Space
	constraints *constraint.Set
	masterSeed  uint64

	transitions map[TransitionKey]*TransitionAction
	setups      map[setupKey]*StateSetup
	checkers    map[string]Checker
	invariants  []*graph.Invariant

	initial *dimension.Combination
}

// New constructs a Builder over a dimension space, optionally constrained
// (constraints may be nil), seeded with masterSeed for any covering-array
// generation Build performs.
func New(space *dimension.Space, constraints *constraint.Set, masterSeed uint64) *Builder {
	return &Builder{
		space:       space,
		constraints: constraints,
		masterSeed:  masterSeed,
		transitions: make(map[TransitionKey]*TransitionAction),
		setups:      make(map[setupKey]*StateSetup),
		checkers:    make(map[string]Checker),
	}
}

// RegisterTransition registers the action that moves dimension from one
// value to another against the live system.
func (b *Builder) RegisterTransition(dim string, from, to dimension.Value, action graph.ActionFunc) error {
	if _, err := b.space.Dimension(dim); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}
	if action == nil {
		return ErrNilAction
	}
	key := TransitionKey{Dimension: dim, From: from, To: to}
	b.transitions[key] = newTransitionAction(key, action)
	return nil
}

// RegisterSetup registers the action that puts the live system directly
// into dimension=value, used to reach the initial combination's values.
func (b *Builder) RegisterSetup(dim string, value dimension.Value, action graph.ActionFunc) error {
	if _, err := b.space.Dimension(dim); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}
	if action == nil {
		return ErrNilAction
	}
	b.setups[setupKey{dimension: dim, value: value}] = &StateSetup{Dimension: dim, Value: value, Action: action}
	return nil
}

// RegisterChecker registers the function used to verify the live system
// currently holds a given value for dimension.
func (b *Builder) RegisterChecker(dim string, checker Checker) error {
	if _, err := b.space.Dimension(dim); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}
	if checker == nil {
		return ErrNilChecker
	}
	b.checkers[dim] = checker
	return nil
}

// AddInvariant registers an invariant every generated node's graph carries.
func (b *Builder) AddInvariant(inv *graph.Invariant) error {
	if inv == nil {
		return graph.ErrNilCheck
	}
	b.invariants = append(b.invariants, inv)
	return nil
}

// SetInitial fixes the combination exploration starts from. If never
// called, Build uses the space's default combination when it is among the
// generated set, otherwise the lexicographically first generated node.
func (b *Builder) SetInitial(combo *dimension.Combination) {
	b.initial = combo
}

// TransitionCount returns the number of registered transitions.
func (b *Builder) TransitionCount() int { return len(b.transitions) }

// SetupCount returns the number of registered setups.
func (b *Builder) SetupCount() int { return len(b.setups) }
