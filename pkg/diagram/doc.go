// Package diagram renders a graph.StateGraph visually: a deterministic
// force-directed layout that places every node, and an SVG export built on
// top of it that colors nodes by whether they were broken in the most
// recent exploration run.
//
// Unlike a floor-plan layout, state-graph nodes carry no footprint, size,
// or corridor routing — they are abstract points. The physics here is
// reduced to exactly that: spring attraction along edges, inverse-square
// repulsion between every pair of nodes, and velocity damping, iterated
// until the layout stabilizes or a maximum iteration count is hit.
package diagram
