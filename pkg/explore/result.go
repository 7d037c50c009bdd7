package explore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corehatch/statecover/pkg/graph"
)

// EdgeResult records one transition taken during a walk.
type EdgeResult struct {
	EdgeName   string
	From       string
	To         string
	Success    bool
	Err        error
	Violations []graph.InvariantViolation
}

// PathResult is one completed walk: the sequence of nodes visited, the
// transitions taken between them, and the context at the point the walk
// ended.
type PathResult struct {
	Nodes   []string
	Edges   []EdgeResult
	Context graph.Context
	Success bool
}

// FinalNode returns the id of the node the path ended on.
func (p *PathResult) FinalNode() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[len(p.Nodes)-1]
}

func (p *PathResult) String() string {
	return fmt.Sprintf("PathResult(%s, success=%v, %d edges)", strings.Join(p.Nodes, " -> "), p.Success, len(p.Edges))
}

// ExplorationResult aggregates every path discovered during one walk of a
// graph, along with any warnings raised along the way (for example, a
// reset_state failure between root-level branches).
type ExplorationResult struct {
	RunID    string
	Paths    []*PathResult
	Warnings []string
}

// TotalPaths returns the number of paths explored.
func (r *ExplorationResult) TotalPaths() int { return len(r.Paths) }

// SuccessfulPaths returns the number of paths that completed with no
// failed transitions or invariant violations.
func (r *ExplorationResult) SuccessfulPaths() int {
	n := 0
	for _, p := range r.Paths {
		if p.Success {
			n++
		}
	}
	return n
}

// FailedPaths returns the number of paths that hit a failed transition or
// an invariant violation.
func (r *ExplorationResult) FailedPaths() int {
	return r.TotalPaths() - r.SuccessfulPaths()
}

// Success reports whether every explored path completed cleanly.
func (r *ExplorationResult) Success() bool {
	return r.TotalPaths() > 0 && r.FailedPaths() == 0
}

// BrokenNodes returns the set of node ids that appear as the terminus of
// at least one failed path, sorted.
func (r *ExplorationResult) BrokenNodes() []string {
	set := make(map[string]bool)
	for _, p := range r.Paths {
		if !p.Success {
			set[p.FinalNode()] = true
		}
	}
	return sortedKeys(set)
}

// BrokenEdges returns the set of edge names that failed or produced an
// invariant violation in at least one path, sorted.
func (r *ExplorationResult) BrokenEdges() []string {
	set := make(map[string]bool)
	for _, p := range r.Paths {
		for _, e := range p.Edges {
			if !e.Success {
				set[e.EdgeName] = true
			}
		}
	}
	return sortedKeys(set)
}

// Summary returns a short human-readable report of the exploration run.
func (r *ExplorationResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Exploration Summary ===\n")
	fmt.Fprintf(&b, "run: %s\n", r.RunID)
	fmt.Fprintf(&b, "paths: %d (%d successful, %d failed)\n", r.TotalPaths(), r.SuccessfulPaths(), r.FailedPaths())
	if nodes := r.BrokenNodes(); len(nodes) > 0 {
		fmt.Fprintf(&b, "broken nodes: %s\n", strings.Join(nodes, ", "))
	}
	if edges := r.BrokenEdges(); len(edges) > 0 {
		fmt.Fprintf(&b, "broken edges: %s\n", strings.Join(edges, ", "))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
