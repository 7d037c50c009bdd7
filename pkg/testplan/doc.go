// Package testplan loads a YAML test plan describing a dimension space,
// its constraints, and the covering strength to generate, and turns it
// into the pkg/dimension and pkg/constraint values a builder.Builder
// needs.
//
// A test plan only declares data — dimension names, values, defaults, and
// exclude-style constraints. Transitions, setups, and checkers still need
// real Go closures against a live system, so loading a plan gets a caller
// most of the way to a builder.Builder, not all the way to a graph.
package testplan
