package graph

import "fmt"

// Edge is a named, directed transition between two nodes, backed by an
// action that performs the transition against a live system.
type Edge struct {
	name   string
	from   string
	to     string
	action ActionFunc
}

// NewEdge constructs an Edge. name, from, and to must be non-empty and
// action must be non-nil; the graph validates from/to against its node set
// when the edge is added.
func NewEdge(name, from, to string, action ActionFunc) (*Edge, error) {
	if name == "" || from == "" || to == "" {
		return nil, ErrEmptyID
	}
	if action == nil {
		return nil, ErrNilAction
	}
	return &Edge{name: name, from: from, to: to, action: action}, nil
}

// MustNewEdge is like NewEdge but panics on error.
func MustNewEdge(name, from, to string, action ActionFunc) *Edge {
	e, err := NewEdge(name, from, to, action)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Edge) Name() string { return e.name }
func (e *Edge) From() string { return e.from }
func (e *Edge) To() string   { return e.to }

// Execute runs the edge's action against ctx.
func (e *Edge) Execute(ctx Context) (any, error) { return e.action(ctx) }

func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%s: %s -> %s)", e.name, e.from, e.to)
}
