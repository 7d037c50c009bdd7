package diagram

import "errors"

// ErrEmptyGraph is returned by ComputeLayout and RenderSVG when there are
// no nodes to place or draw.
var ErrEmptyGraph = errors.New("diagram: graph has no nodes")
