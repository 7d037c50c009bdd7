// Package constraint models feasibility rules over partial dimension
// assignments.
//
// A Constraint pairs a name and a predicate over a map of dimension name to
// value. When the constraint is scoped to specific dimensions, it is
// vacuously valid against any assignment that doesn't mention all of them —
// this lets the covering-array generator check partial, in-progress
// combinations without every constraint needing to special-case missing
// keys. A predicate that panics is treated as a failed, invalid constraint;
// the panic is recovered and surfaced as a warning rather than crashing the
// generator.
//
// A ConstraintSet is an ordered collection of constraints checked together.
// exclude, require, and at_most_one are constructor helpers for the three
// constraint shapes that came up often enough in practice to deserve names.
package constraint
