// Package explore drives a graph.StateGraph against a live system (or a
// simulation of one), recording the paths taken and the invariant
// violations observed along the way.
//
// Exploration is depth-first and iterative (an explicit stack, not
// recursion) so deep graphs don't exhaust the Go call stack. Each node
// visited during a walk is recorded as an ExplorationNode, a parent-pointer
// tree node: reconstructing the path, context, or edge history to any node
// costs O(depth), not O(size of the whole tree), since nodes only ever
// point at their parent.
//
// ExploreSeq is the primitive: an iter.Seq[*PathResult] that yields one
// PathResult every time a walk terminates, either because it reached a
// node with no outgoing edges, hit the configured depth limit, or hit a
// failed transition, or an invariant violation when StopOnViolation is
// set. Explore drains ExploreSeq into
// an accumulated ExplorationResult for callers that don't need to stream.
package explore
