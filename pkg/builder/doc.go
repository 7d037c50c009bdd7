// Package builder turns a dimension.Space, a constraint.Set, and a
// registry of per-dimension transitions and setups into a graph.StateGraph:
// one node per covering combination, with an edge wherever two combinations
// differ in exactly one dimension and a transition has been registered for
// that dimension's change.
//
// Callers register three things before calling Build:
//
//   - a transition per (dimension, from value, to value) triple that can
//     actually occur in the live system — RegisterTransition
//   - a setup per (dimension, value) pair used to put the system directly
//     into that value without a transition, for reaching the initial
//     combination's values from scratch — RegisterSetup
//   - a checker per dimension that inspects a live context and reports
//     whether the system currently holds that dimension's value —
//     RegisterChecker
//
// Build composites these into a StateGraph ready for package explore or
// package executor to drive.
package builder
