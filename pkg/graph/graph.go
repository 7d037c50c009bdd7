package graph

import (
	"fmt"
	"sort"
)

// StateGraph is a directed graph of application states (StateNode), named
// transitions between them (Edge), and rules that must hold after every
// transition (Invariant).
//
// Traversing a StateGraph against a live system, and evaluating its
// invariants while doing so, is the job of package explore; StateGraph
// itself only holds structure.
type StateGraph struct {
	nodes      map[string]*StateNode
	edgesFrom  map[string][]*Edge
	invariants []*Invariant
	initial    string
}

// NewStateGraph constructs an empty graph.
func NewStateGraph() *StateGraph {
	return &StateGraph{
		nodes:     make(map[string]*StateNode),
		edgesFrom: make(map[string][]*Edge),
	}
}

// AddNode adds a node to the graph. It fails if a node with the same id is
// already present.
func (g *StateGraph) AddNode(n *StateNode) error {
	if _, exists := g.nodes[n.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID())
	}
	g.nodes[n.ID()] = n
	return nil
}

// AddEdge adds a transition between two already-added nodes. It fails if
// either endpoint is unknown, or if an edge with the same name already
// connects the same pair of nodes.
func (g *StateGraph) AddEdge(e *Edge) error {
	if _, ok := g.nodes[e.From()]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, e.From())
	}
	if _, ok := g.nodes[e.To()]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, e.To())
	}
	for _, existing := range g.edgesFrom[e.From()] {
		if existing.Name() == e.Name() && existing.To() == e.To() {
			return fmt.Errorf("%w: %q from %q to %q", ErrDuplicateEdge, e.Name(), e.From(), e.To())
		}
	}
	g.edgesFrom[e.From()] = append(g.edgesFrom[e.From()], e)
	return nil
}

// AddInvariant registers an invariant checked after every transition.
func (g *StateGraph) AddInvariant(inv *Invariant) error {
	if inv == nil {
		return ErrNilCheck
	}
	g.invariants = append(g.invariants, inv)
	return nil
}

// SetInitial designates the node exploration starts from. The node must
// already be present.
func (g *StateGraph) SetInitial(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	g.initial = id
	return nil
}

// Initial returns the graph's initial node id.
func (g *StateGraph) Initial() (string, error) {
	if g.initial == "" {
		return "", ErrNoInitialNode
	}
	return g.initial, nil
}

// Node looks up a node by id.
func (g *StateGraph) Node(id string) (*StateNode, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return n, nil
}

// Nodes returns every node in the graph, sorted by id for determinism.
func (g *StateGraph) Nodes() []*StateNode {
	ids := g.sortedNodeIDs()
	out := make([]*StateNode, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id])
	}
	return out
}

// GetEdgesFrom returns the edges leaving node id, in the order they were
// added.
func (g *StateGraph) GetEdgesFrom(id string) []*Edge {
	return append([]*Edge(nil), g.edgesFrom[id]...)
}

// Edges returns every edge in the graph, grouped by source node in sorted
// node-id order and otherwise in the order each was added.
func (g *StateGraph) Edges() []*Edge {
	var out []*Edge
	for _, id := range g.sortedNodeIDs() {
		out = append(out, g.edgesFrom[id]...)
	}
	return out
}

// Invariants returns every registered invariant, in registration order.
func (g *StateGraph) Invariants() []*Invariant {
	return append([]*Invariant(nil), g.invariants...)
}

// CheckInvariants evaluates every registered invariant against ctx. Unlike
// a short-circuiting validator, it always runs every invariant so a caller
// sees the full set of problems from one transition, not just the first.
func (g *StateGraph) CheckInvariants(ctx Context) []InvariantViolation {
	var violations []InvariantViolation
	for _, inv := range g.invariants {
		ok, msg := inv.Check(ctx)
		if !ok {
			violations = append(violations, InvariantViolation{
				Name:     inv.Name(),
				Severity: inv.Severity(),
				Message:  msg,
			})
		}
	}
	return violations
}

func (g *StateGraph) sortedNodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
