package builder

import (
	"fmt"
	"sort"

	"github.com/corehatch/statecover/pkg/covering"
	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/graph"
)

// Build generates a covering array of the given strength over the
// builder's space and constraints, then lifts it into a StateGraph.
func (b *Builder) Build(strength int) (*graph.StateGraph, []string, error) {
	gen, err := covering.NewGenerator(b.space, b.constraints, b.masterSeed)
	if err != nil {
		return nil, nil, err
	}
	combos, warnings, err := gen.Generate(strength)
	if err != nil {
		return nil, nil, err
	}

	g, buildWarnings, err := b.BuildFromCombinations(combos)
	return g, append(warnings, buildWarnings...), err
}

// BuildFromCombinations lifts an explicit set of combinations into a
// StateGraph, skipping covering-array generation entirely. This is the
// entry point for hand-picked journeys: a curated list of combinations a
// test author wants exercised, rather than an algorithmically generated
// covering set.
func (b *Builder) BuildFromCombinations(combos []*dimension.Combination) (*graph.StateGraph, []string, error) {
	if len(combos) == 0 {
		return nil, nil, ErrNoCombinations
	}

	g := graph.NewStateGraph()
	byID := make(map[string]*dimension.Combination, len(combos))

	for _, combo := range combos {
		byID[combo.NodeID()] = combo
		node, err := graph.NewStateNode(combo.NodeID(), b.buildChecker(combo), combo.Description())
		if err != nil {
			return nil, nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, nil, err
		}
	}

	var warnings []string
	var missing []TransitionKey

	for i, a := range combos {
		for j, c := range combos {
			if i == j {
				continue
			}
			dim, ok := a.DiffersByOne(c)
			if !ok {
				continue
			}
			fromVal := a.Get(dim)
			toVal := c.Get(dim)
			key := TransitionKey{Dimension: dim, From: fromVal, To: toVal}

			transition, registered := b.transitions[key]
			if !registered {
				missing = append(missing, key)
				continue
			}

			edge, err := graph.NewEdge(transition.Name, a.NodeID(), c.NodeID(), b.wrapAction(transition, a, c))
			if err != nil {
				return nil, nil, err
			}
			if err := g.AddEdge(edge); err != nil {
				// Two distinct dimension pairs can legitimately produce the
				// same (name, from, to) triple only if registered twice;
				// treat as a duplicate edge warning rather than fatal.
				warnings = append(warnings, fmt.Sprintf("builder: %v", err))
			}
		}
	}

	for _, inv := range b.invariants {
		if err := g.AddInvariant(inv); err != nil {
			return nil, nil, err
		}
	}

	initialID, err := b.resolveInitial(combos)
	if err != nil {
		return nil, nil, err
	}
	if err := g.SetInitial(initialID); err != nil {
		return nil, nil, err
	}

	if len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("builder: %d adjacent combination pair(s) have no registered transition", len(missing)))
	}

	return g, warnings, nil
}

// resolveInitial picks the node id exploration starts from: the explicit
// SetInitial combination if one was set and is present among combos,
// otherwise the space's default combination if present, otherwise the
// lexicographically first generated node id.
func (b *Builder) resolveInitial(combos []*dimension.Combination) (string, error) {
	if b.initial != nil {
		for _, c := range combos {
			if c.NodeID() == b.initial.NodeID() {
				return c.NodeID(), nil
			}
		}
		return "", ErrInitialNotGenerated
	}

	def := b.space.DefaultCombination()
	for _, c := range combos {
		if c.NodeID() == def.NodeID() {
			return c.NodeID(), nil
		}
	}

	ids := make([]string, len(combos))
	for i, c := range combos {
		ids[i] = c.NodeID()
	}
	sort.Strings(ids)
	return ids[0], nil
}

// buildChecker composites the per-dimension checkers registered for every
// dimension of combo into a single StateChecker, ANDed together. A live
// context is considered to be in this node if every registered checker
// agrees, and if present, if the context's own bookkeeping agrees too.
func (b *Builder) buildChecker(combo *dimension.Combination) graph.StateChecker {
	return func(ctx graph.Context) bool {
		if cur, ok := ctx["_current_combination"].(string); ok && cur != combo.NodeID() {
			return false
		}
		for _, dim := range b.space.Dimensions() {
			checker, ok := b.checkers[dim.Name()]
			if !ok {
				continue
			}
			if !checker(combo.Get(dim.Name()), ctx) {
				return false
			}
		}
		return true
	}
}

// wrapAction adapts a registered transition into a graph.ActionFunc,
// injecting the reserved context keys downstream invariants and checkers
// rely on to know what just changed.
func (b *Builder) wrapAction(t *TransitionAction, from, to *dimension.Combination) graph.ActionFunc {
	return func(ctx graph.Context) (any, error) {
		ctx["_from_combination"] = from.NodeID()
		ctx["_to_combination"] = to.NodeID()
		ctx["_changed_dimension"] = t.Key.Dimension
		ctx["_from_value"] = t.Key.From
		ctx["_to_value"] = t.Key.To

		resp, err := t.Action(ctx)
		if err != nil {
			return resp, err
		}
		ctx["_current_combination"] = to.NodeID()
		return resp, nil
	}
}

// EntryActions returns the setups registered for combo's dimension values,
// in sorted dimension-name order, skipping any dimension with no
// registered setup. Replaying these in order against a fresh system puts
// it into combo's state without traversing any transition.
func (b *Builder) EntryActions(combo *dimension.Combination) []*StateSetup {
	dims := b.space.Dimensions()
	names := make([]string, 0, len(dims))
	for _, dim := range dims {
		names = append(names, dim.Name())
	}
	sort.Strings(names)
	var actions []*StateSetup
	for _, name := range names {
		setup, ok := b.setups[setupKey{dimension: name, value: combo.Get(name)}]
		if ok {
			actions = append(actions, setup)
		}
	}
	return actions
}

// MissingTransitions returns every TransitionKey that would connect two
// combinations differing by exactly one dimension but has no registered
// transition, across the given combination set. It is the same
// computation Build uses to decide which adjacent pairs to skip, exposed
// so callers can audit coverage gaps before running anything.
func (b *Builder) MissingTransitions(combos []*dimension.Combination) []TransitionKey {
	seen := make(map[TransitionKey]bool)
	var missing []TransitionKey
	for _, a := range combos {
		for _, c := range combos {
			dim, ok := a.DiffersByOne(c)
			if !ok {
				continue
			}
			key := TransitionKey{Dimension: dim, From: a.Get(dim), To: c.Get(dim)}
			if _, registered := b.transitions[key]; registered {
				continue
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			missing = append(missing, key)
		}
	}
	return missing
}
