package graph

import "errors"

var (
	// ErrDuplicateNode is returned by AddNode when a node ID is already present.
	ErrDuplicateNode = errors.New("graph: node already exists")
	// ErrUnknownNode is returned when an edge or lookup references a node ID
	// that has not been added to the graph.
	ErrUnknownNode = errors.New("graph: node does not exist")
	// ErrNoInitialNode is returned by operations that require an initial node
	// before it has been set.
	ErrNoInitialNode = errors.New("graph: no initial node set")
	// ErrNilAction is returned by AddEdge when the action is nil.
	ErrNilAction = errors.New("graph: edge action must not be nil")
	// ErrNilCheck is returned by AddInvariant when the check function is nil.
	ErrNilCheck = errors.New("graph: invariant check must not be nil")
	// ErrNoPath is returned by GetPath when no path connects the two nodes.
	ErrNoPath = errors.New("graph: no path exists between nodes")
	// ErrEmptyID is returned when a node, edge, or invariant is constructed
	// with an empty identifying name.
	ErrEmptyID = errors.New("graph: id must not be empty")
	// ErrDuplicateEdge is returned by AddEdge when an edge with the same name
	// already exists between the same pair of nodes.
	ErrDuplicateEdge = errors.New("graph: edge already exists")
)
