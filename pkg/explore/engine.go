package explore

import (
	"fmt"
	"iter"

	"github.com/corehatch/statecover/pkg/graph"
	"github.com/google/uuid"
)

// Options configures a single exploration walk.
type Options struct {
	// MaxDepth bounds how many transitions a single path may take before
	// it is yielded as complete. Zero means unbounded.
	MaxDepth int

	// StopOnViolation, when true, treats an invariant violation the same
	// as a failed transition: the path terminates at that edge rather than
	// continuing past it.
	StopOnViolation bool

	// ResetState, if non-nil, is invoked once before each edge leaving the
	// graph's initial node, giving the live system a chance to return to
	// its starting state before a fresh branch is explored. It is never
	// called at any other depth. A failure is recorded as a warning and
	// does not prevent the edge from being executed.
	ResetState func() error

	// OnWarning, if non-nil, receives non-fatal diagnostics raised during
	// the walk (currently: ResetState failures). Explore wires this up
	// itself to populate ExplorationResult.Warnings; callers driving
	// ExploreSeq directly may set it to observe the same events.
	OnWarning func(string)
}

func (o Options) warn(msg string) {
	if o.OnWarning != nil {
		o.OnWarning(msg)
	}
}

// ExploreSeq walks g depth-first from its initial node, yielding one
// PathResult each time a walk terminates: at a node with no outgoing
// edges, at the configured depth limit, or at a failed transition or
// (when StopOnViolation is set) an invariant violation.
//
// The walk is iterative, not recursive: an explicit stack of
// ExplorationNode holds the frontier, so traversal depth is bounded only
// by available memory, not the Go call stack.
func ExploreSeq(g *graph.StateGraph, opts Options) iter.Seq[*PathResult] {
	return func(yield func(*PathResult) bool) {
		initial, err := g.Initial()
		if err != nil {
			return
		}

		root := &ExplorationNode{NodeID: initial, Context: graph.Context{}, Depth: 0}
		stack := []*ExplorationNode{root}

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n.Violations = g.CheckInvariants(n.Context)
			if n.EdgeFromParent != nil && len(n.Violations) > 0 {
				n.EdgeFromParent.Violations = n.Violations
				n.EdgeFromParent.Success = false
			}

			edges := g.GetEdgesFrom(n.NodeID)
			atDepthLimit := opts.MaxDepth > 0 && n.Depth >= opts.MaxDepth
			rootViolation := opts.StopOnViolation && len(n.Violations) > 0

			if len(edges) == 0 || atDepthLimit || rootViolation {
				if !yield(n.toPathResult()) {
					return
				}
				continue
			}

			for _, e := range edges {
				if n.Depth == 0 && opts.ResetState != nil {
					if resetErr := opts.ResetState(); resetErr != nil {
						opts.warn(fmt.Sprintf("reset_state before %s: %v", e.Name(), resetErr))
					}
				}

				ctx := copyContext(n.Context)
				resp, execErr := e.Execute(ctx)
				if execErr == nil {
					ctx["_response_"+e.Name()] = resp
					attachJSON(ctx, e.Name(), resp)
				}

				edgeResult := &EdgeResult{
					EdgeName: e.Name(),
					From:     e.From(),
					To:       e.To(),
					Success:  execErr == nil,
					Err:      execErr,
				}

				child := &ExplorationNode{
					NodeID:         e.To(),
					Parent:         n,
					EdgeFromParent: edgeResult,
					Context:        ctx,
					Depth:          n.Depth + 1,
				}

				if execErr != nil {
					if !yield(child.toPathResult()) {
						return
					}
					continue
				}

				stack = append(stack, child)
			}
		}
	}
}

// Explore drains ExploreSeq into an accumulated ExplorationResult, stamped
// with a fresh run id.
func Explore(g *graph.StateGraph, opts Options) (*ExplorationResult, error) {
	if _, err := g.Initial(); err != nil {
		return nil, ErrNoInitialNode
	}

	result := &ExplorationResult{RunID: uuid.NewString()}
	userWarn := opts.OnWarning
	opts.OnWarning = func(msg string) {
		result.Warnings = append(result.Warnings, msg)
		if userWarn != nil {
			userWarn(msg)
		}
	}
	for path := range ExploreSeq(g, opts) {
		result.Paths = append(result.Paths, path)
	}
	return result, nil
}
