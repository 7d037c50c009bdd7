package explore

import "github.com/corehatch/statecover/pkg/graph"

// ExplorationNode is one node visited during a walk, linked to its parent
// rather than to its children. A full root-to-node path, context, or edge
// history is reconstructed by walking Parent pointers, which costs
// O(depth) rather than requiring the whole exploration tree to be kept in
// memory at once.
type ExplorationNode struct {
	NodeID         string
	Parent         *ExplorationNode
	EdgeFromParent *EdgeResult
	Context        graph.Context
	Depth          int
	Violations     []graph.InvariantViolation
}

// Path returns the sequence of node ids from the root to this node,
// inclusive.
func (n *ExplorationNode) Path() []string {
	var path []string
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.NodeID)
	}
	reverse(path)
	return path
}

// Edges returns the sequence of edge results from the root to this node,
// in traversal order. The root itself has no incoming edge, so the result
// has one fewer element than Path.
func (n *ExplorationNode) Edges() []EdgeResult {
	var edges []EdgeResult
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.EdgeFromParent != nil {
			edges = append(edges, *cur.EdgeFromParent)
		}
	}
	reverseEdges(edges)
	return edges
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []EdgeResult) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// toPathResult captures this node as the terminus of a completed walk.
func (n *ExplorationNode) toPathResult() *PathResult {
	edges := n.Edges()
	success := true
	for cur := n; cur != nil; cur = cur.Parent {
		if len(cur.Violations) > 0 {
			success = false
			break
		}
	}
	for _, e := range edges {
		if !e.Success {
			success = false
			break
		}
	}
	return &PathResult{
		Nodes:   n.Path(),
		Edges:   edges,
		Context: n.Context,
		Success: success,
	}
}

func copyContext(ctx graph.Context) graph.Context {
	cp := make(graph.Context, len(ctx))
	for k, v := range ctx {
		cp[k] = v
	}
	return cp
}
