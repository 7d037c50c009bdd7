package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the graph as a Mermaid stateDiagram-v2 block: one line per
// node carrying a description, a pseudo-edge from the synthetic "[*]" start
// marker into the initial node if one is set, and every edge as
// "source --> target : name".
func (g *StateGraph) Mermaid() string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")

	for _, id := range g.sortedNodeIDs() {
		if desc := g.nodes[id].Description(); desc != "" {
			fmt.Fprintf(&b, "    %s: %s\n", id, desc)
		}
	}

	if g.initial != "" {
		fmt.Fprintf(&b, "    [*] --> %s\n", g.initial)
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "    %s --> %s : %s\n", e.From(), e.To(), e.Name())
	}
	return b.String()
}

// ASCII renders the graph as one "source --> target : name" line per edge,
// in sorted source-node order.
func (g *StateGraph) ASCII() string {
	var b strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "%s --> %s : %s\n", e.From(), e.To(), e.Name())
	}
	return b.String()
}

// Summary returns a short human-readable description of the graph's size
// and shape.
func (g *StateGraph) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StateGraph: %d nodes, %d edges, %d invariants\n", len(g.nodes), len(g.Edges()), len(g.invariants))
	if g.initial != "" {
		fmt.Fprintf(&b, "  initial: %s\n", g.initial)
	}
	fmt.Fprintf(&b, "  connected: %v\n", g.IsConnected())
	if cycles := g.GetCycles(); len(cycles) > 0 {
		fmt.Fprintf(&b, "  cycles: %d\n", len(cycles))
	}
	return b.String()
}
