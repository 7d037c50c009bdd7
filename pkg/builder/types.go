package builder

import (
	"fmt"

	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/graph"
)

// TransitionKey identifies a single-dimension state change: dimension went
// from one value to another. It is comparable and safe to use as a map
// key as long as the dimension's values are themselves comparable.
type TransitionKey struct {
	Dimension string
	From      dimension.Value
	To        dimension.Value
}

func (k TransitionKey) String() string {
	return fmt.Sprintf("%s: %v -> %v", k.Dimension, k.From, k.To)
}

// TransitionAction is a registered transition: the action that performs a
// single-dimension state change against a live system. Name is derived
// from the key so generated edges get a stable, descriptive label without
// the caller having to invent one.
type TransitionAction struct {
	Key    TransitionKey
	Action graph.ActionFunc
	Name   string
}

func newTransitionAction(key TransitionKey, action graph.ActionFunc) *TransitionAction {
	return &TransitionAction{
		Key:    key,
		Action: action,
		Name:   fmt.Sprintf("%s_%v_to_%v", key.Dimension, key.From, key.To),
	}
}

// StateSetup is a registered way to put the live system directly into one
// dimension's value, used to reach the initial combination's values
// without going through a transition.
type StateSetup struct {
	Dimension string
	Value     dimension.Value
	Action    graph.ActionFunc
}

// Checker inspects a live context and reports whether the system
// currently holds the given value for the dimension it is registered
// against.
type Checker func(value dimension.Value, ctx graph.Context) bool
