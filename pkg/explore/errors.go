package explore

import "errors"

// ErrNoInitialNode is returned when exploring a graph that has no initial
// node set.
var ErrNoInitialNode = errors.New("explore: graph has no initial node")
