// Package graph models an application as a graph of states and the actions
// that transition between them.
//
// A StateGraph has three ingredients:
//
//   - Nodes: application states, e.g. "empty", "has_todos", "all_completed".
//   - Edges: named actions that move the app from one state to another.
//   - Invariants: rules checked after every transition, regardless of which
//     state the app is currently in.
//
// This package defines the graph representation, node/edge/invariant types,
// and structural graph operations (reachability, connectivity, cycle
// detection, shortest path). Traversal and invariant evaluation against a
// live system live in package explore.
package graph
