package covering

import (
	"crypto/sha256"
	"fmt"
	"io"
	"sort"

	"github.com/corehatch/statecover/pkg/constraint"
	"github.com/corehatch/statecover/pkg/dimension"
	"github.com/corehatch/statecover/pkg/rng"
)

const (
	minCandidatePoolSize   = 50
	candidatesPerDimension = 10
	systematicTupleSample  = 20
	systematicCompletions  = 50
	maxCandidateRetries    = 20
)

// Generator produces covering arrays: small sets of combinations from a
// dimension space that together exercise every feasible t-way interaction.
type Generator struct {
	space       *dimension.Space
	constraints *constraint.Set
	masterSeed  uint64
}

// NewGenerator builds a Generator over a dimension space, optionally
// restricted by a constraint set (nil means unconstrained). masterSeed
// seeds every randomized search the generator performs; the same seed,
// space, constraint set, and strength always produce the same output.
func NewGenerator(space *dimension.Space, constraints *constraint.Set, masterSeed uint64) (*Generator, error) {
	if space.Len() == 0 {
		return nil, ErrEmptySpace
	}
	return &Generator{space: space, constraints: constraints, masterSeed: masterSeed}, nil
}

// Pairwise generates a 2-way (pairwise) covering array.
func (g *Generator) Pairwise() ([]*dimension.Combination, []string, error) {
	return g.Generate(2)
}

// ThreeWise generates a 3-way covering array.
func (g *Generator) ThreeWise() ([]*dimension.Combination, []string, error) {
	return g.Generate(3)
}

// Exhaustive returns every feasible combination in the space: strength
// equal to the full dimension count.
func (g *Generator) Exhaustive() ([]*dimension.Combination, []string, error) {
	all := g.space.AllCombinations()
	var warnings []string
	out := make([]*dimension.Combination, 0, len(all))
	for _, c := range all {
		if g.constraints == nil {
			out = append(out, c)
			continue
		}
		ok, w := g.constraints.IsValid(c.Values())
		warnings = append(warnings, w...)
		if ok {
			out = append(out, c)
		}
	}
	return out, warnings, nil
}

// Generate produces a covering array of the given strength: a small,
// greedily chosen (not guaranteed minimal) set of combinations such that every feasible assignment of values to any
// `strength` dimensions is covered by at least one combination.
func (g *Generator) Generate(strength int) ([]*dimension.Combination, []string, error) {
	if strength < 1 || strength > g.space.Len() {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidStrength, strength)
	}

	if strength == g.space.Len() {
		return g.Exhaustive()
	}

	r := rng.NewRNG(g.masterSeed, "covering-array", g.configHash(strength))

	targets := filterFeasible(allTTuples(g.space, strength), g.constraints)
	uncovered := make(map[string]target, len(targets))
	for _, tg := range targets {
		uncovered[tg.key()] = tg
	}

	poolSize := minCandidatePoolSize
	if n := candidatesPerDimension * g.space.Len(); n > poolSize {
		poolSize = n
	}

	var combos []*dimension.Combination
	var warnings []string

	for len(uncovered) > 0 {
		best, coveredKeys := g.findBestCombination(r, uncovered, poolSize)
		if best == nil {
			best, coveredKeys = g.systematicSearch(r, uncovered)
		}
		if best == nil {
			warnings = append(warnings, fmt.Sprintf(
				"covering: unable to cover %d remaining tuple(s) at strength %d; stopping early", len(uncovered), strength))
			break
		}

		combos = append(combos, best)
		for _, k := range coveredKeys {
			delete(uncovered, k)
		}
	}

	return combos, warnings, nil
}

// CoverageStats computes how completely combos cover the feasible
// strength-way interactions of the generator's space.
func (g *Generator) CoverageStats(combos []*dimension.Combination, strength int) CoverageStats {
	targets := filterFeasible(allTTuples(g.space, strength), g.constraints)
	covered := 0
	for _, tg := range targets {
		for _, c := range combos {
			if combinationCoversTuple(c, tg) {
				covered++
				break
			}
		}
	}
	return CoverageStats{
		Strength:      strength,
		TotalTuples:   len(targets),
		CoveredTuples: covered,
		Combinations:  len(combos),
	}
}

// Sample deterministically selects n combinations from a strength-way
// covering array, seeded the same way Generate is. It is useful for
// shrinking a full covering array down to a fixed-size smoke suite while
// staying reproducible under the same master seed.
func (g *Generator) Sample(n, strength int) ([]*dimension.Combination, []string, error) {
	combos, warnings, err := g.Generate(strength)
	if err != nil {
		return nil, nil, err
	}
	if n >= len(combos) {
		return combos, warnings, nil
	}

	r := rng.NewRNG(g.masterSeed, "covering-array-sample", g.configHash(strength))
	shuffled := append([]*dimension.Combination(nil), combos...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n], warnings, nil
}

func (g *Generator) constraintNames() []string {
	if g.constraints == nil {
		return nil
	}
	names := make([]string, 0, g.constraints.Len())
	for _, c := range g.constraints.Constraints() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}

func (g *Generator) configHash(strength int) []byte {
	h := sha256.New()
	for _, d := range g.space.Dimensions() {
		io.WriteString(h, d.Name())
		for _, v := range d.Values() {
			fmt.Fprintf(h, "=%v;", v)
		}
	}
	for _, name := range g.constraintNames() {
		io.WriteString(h, name)
	}
	fmt.Fprintf(h, "strength=%d", strength)
	return h.Sum(nil)
}

// findBestCombination draws a pool of random, constraint-feasible full
// combinations and returns whichever covers the most still-uncovered
// tuples. It returns nil if no candidate in the pool covers anything new.
func (g *Generator) findBestCombination(r *rng.RNG, uncovered map[string]target, poolSize int) (*dimension.Combination, []string) {
	var best *dimension.Combination
	var bestKeys []string

	for i := 0; i < poolSize; i++ {
		candidate := g.buildCandidate(r, uncovered)
		if candidate == nil {
			continue
		}
		keys := coveredKeys(candidate, uncovered)
		if len(keys) > len(bestKeys) {
			best = candidate
			bestKeys = keys
		}
	}

	if best == nil || len(bestKeys) == 0 {
		return nil, nil
	}
	return best, bestKeys
}

// buildCandidate seeds a candidate from a randomly chosen still-uncovered
// tuple and fills the remaining dimensions randomly, retrying against the
// constraint set a bounded number of times. Anchoring every draw to an
// uncovered tuple (rather than assigning every dimension uniformly at
// random) keeps the random pool biased toward closing real coverage gaps,
// the same way it leaves the systematic fallback to handle only the tuples
// this biased search still misses.
func (g *Generator) buildCandidate(r *rng.RNG, uncovered map[string]target) *dimension.Combination {
	if len(uncovered) == 0 {
		return nil
	}
	keys := make([]string, 0, len(uncovered))
	for k := range uncovered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for attempt := 0; attempt < maxCandidateRetries; attempt++ {
		tg := uncovered[keys[r.Intn(len(keys))]]
		if candidate := g.extendTuple(r, tg); candidate != nil {
			return candidate
		}
	}
	return nil
}

// systematicSearch is the fallback when random full candidates stop
// finding new coverage: it targets a handful of specific uncovered tuples
// directly, trying several random completions of the remaining dimensions
// for each.
func (g *Generator) systematicSearch(r *rng.RNG, uncovered map[string]target) (*dimension.Combination, []string) {
	keys := make([]string, 0, len(uncovered))
	for k := range uncovered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sampleSize := systematicTupleSample
	if sampleSize > len(keys) {
		sampleSize = len(keys)
	}
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	sampledKeys := keys[:sampleSize]

	var best *dimension.Combination
	var bestKeys []string

	for _, key := range sampledKeys {
		tg := uncovered[key]
		for attempt := 0; attempt < systematicCompletions; attempt++ {
			candidate := g.extendTuple(r, tg)
			if candidate == nil {
				continue
			}
			covered := coveredKeys(candidate, uncovered)
			if len(covered) > len(bestKeys) {
				best = candidate
				bestKeys = covered
			}
		}
	}

	return best, bestKeys
}

// extendTuple fixes tg's dimensions to tg's required values and fills
// every remaining dimension with a random legal value, subject to the
// constraint set.
func (g *Generator) extendTuple(r *rng.RNG, tg target) *dimension.Combination {
	values := make(map[string]dimension.Value, g.space.Len())
	for k, v := range tg.assignment {
		values[k] = v
	}

	for _, d := range g.space.Dimensions() {
		if _, fixed := values[d.Name()]; fixed {
			continue
		}
		vals := d.Values()
		values[d.Name()] = vals[r.Intn(len(vals))]
	}

	if g.constraints != nil {
		if ok, _ := g.constraints.IsValid(constraint.Assignment(values)); !ok {
			return nil
		}
	}

	combo, err := dimension.NewCombination(g.space, values)
	if err != nil {
		return nil
	}
	return combo
}

func coveredKeys(combo *dimension.Combination, uncovered map[string]target) []string {
	var keys []string
	for key, tg := range uncovered {
		if combinationCoversTuple(combo, tg) {
			keys = append(keys, key)
		}
	}
	return keys
}
