// Package covering generates combinatorial test suites: small sets of
// dimension.Combination values that together cover every legal t-way
// interaction between dimension values (pairwise, three-wise, or any other
// strength), instead of the full exhaustive Cartesian product.
//
// Generator implements a greedy, IPOG-flavored construction: it enumerates
// every feasible t-tuple of dimension values once, then repeatedly picks
// the combination that covers the most still-uncovered tuples until none
// remain. Randomness is supplied by a caller-seeded pkg/rng.RNG so two runs
// with the same master seed, dimension space, constraint set, and strength
// produce byte-identical output.
package covering
