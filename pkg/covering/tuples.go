package covering

import (
	"fmt"
	"strings"

	"github.com/corehatch/statecover/pkg/constraint"
	"github.com/corehatch/statecover/pkg/dimension"
)

// target is one specific t-way interaction to cover: a fixed assignment of
// values to exactly t dimensions.
type target struct {
	dims       []string // in dimension-declaration order
	assignment constraint.Assignment
}

func (tg target) key() string {
	parts := make([]string, len(tg.dims))
	for i, d := range tg.dims {
		parts[i] = d + "=" + sanitizeKey(tg.assignment[d])
	}
	return strings.Join(parts, "|")
}

func sanitizeKey(v dimension.Value) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprint(v), "|", "/"), "=", ":")
}

// allTTuples enumerates every t-way interaction in the space: one target
// per (choice of t dimensions) x (assignment of one value to each chosen
// dimension).
func allTTuples(space *dimension.Space, t int) []target {
	dims := space.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name()
	}

	var out []target
	for _, combo := range chooseIndices(len(names), t) {
		chosenNames := make([]string, t)
		chosenDims := make([]*dimension.Dimension, t)
		for i, idx := range combo {
			chosenNames[i] = names[idx]
			chosenDims[i] = dims[idx]
		}
		out = append(out, cartesianTargets(chosenNames, chosenDims)...)
	}
	return out
}

// chooseIndices returns every t-element, strictly increasing subset of
// {0, ..., n-1}.
func chooseIndices(n, t int) [][]int {
	if t <= 0 || t > n {
		return nil
	}
	var results [][]int
	combo := make([]int, t)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == t {
			results = append(results, append([]int(nil), combo...))
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return results
}

// cartesianTargets enumerates every assignment of one value to each named
// dimension, in declared value order.
func cartesianTargets(names []string, dims []*dimension.Dimension) []target {
	if len(dims) == 0 {
		return nil
	}
	indices := make([]int, len(dims))
	var out []target
	for {
		assignment := make(constraint.Assignment, len(dims))
		for i, d := range dims {
			assignment[names[i]] = d.Values()[indices[i]]
		}
		out = append(out, target{dims: append([]string(nil), names...), assignment: assignment})

		pos := len(dims) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(dims[pos].Values()) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return out
}

// filterFeasible drops any target that violates the constraint set, since
// a tuple no combination can legally satisfy should never count toward
// coverage.
func filterFeasible(targets []target, constraints *constraint.Set) []target {
	if constraints == nil {
		return targets
	}
	var feasible []target
	for _, tg := range targets {
		if ok, _ := constraints.IsValid(tg.assignment); ok {
			feasible = append(feasible, tg)
		}
	}
	return feasible
}

// combinationCoversTuple reports whether combo assigns every dimension in
// tg's target the exact value tg requires.
func combinationCoversTuple(combo *dimension.Combination, tg target) bool {
	for _, d := range tg.dims {
		v, ok := combo.Value(d)
		if !ok || v != tg.assignment[d] {
			return false
		}
	}
	return true
}

