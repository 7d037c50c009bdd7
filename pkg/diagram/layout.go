package diagram

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/corehatch/statecover/pkg/graph"
	"github.com/corehatch/statecover/pkg/rng"
)

// Config tunes the force-directed layout simulation.
type Config struct {
	MaxIterations      int
	SpringConstant     float64
	RepulsionConstant  float64
	DampingFactor      float64
	StabilityThreshold float64
	InitialSpread      float64
}

// DefaultConfig returns reasonable defaults for small-to-medium graphs.
func DefaultConfig() Config {
	return Config{
		MaxIterations:      500,
		SpringConstant:     0.08,
		RepulsionConstant:  800,
		DampingFactor:      0.85,
		StabilityThreshold: 0.05,
		InitialSpread:      200,
	}
}

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Layout is a deterministic placement of every node in a graph, along with
// its bounding box.
type Layout struct {
	Positions map[string]Point
	MinX, MinY, MaxX, MaxY float64
}

type particle struct {
	id     string
	x, y   float64
	vx, vy float64
}

// ComputeLayout places every node of g in 2D space via a force-directed
// simulation: spring attraction along edges, inverse-square repulsion
// between every pair, velocity damping, stopping early once the largest
// single-step movement drops below cfg.StabilityThreshold. masterSeed
// makes initial placement (and therefore the whole simulation)
// deterministic across runs.
func ComputeLayout(g *graph.StateGraph, masterSeed uint64, cfg Config) (*Layout, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	r := rng.NewRNG(masterSeed, "diagram-layout", configHash(g))

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Strings(ids)

	particles := initializePositions(ids, r, cfg.InitialSpread)
	index := make(map[string]int, len(particles))
	for i, p := range particles {
		index[p.id] = i
	}

	neighbors := undirectedNeighbors(g, ids)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		maxMovement := simulateStep(particles, index, neighbors, cfg)
		if maxMovement < cfg.StabilityThreshold {
			break
		}
	}

	return buildLayout(particles), nil
}

func initializePositions(ids []string, r *rng.RNG, spread float64) []*particle {
	particles := make([]*particle, len(ids))
	for i, id := range ids {
		angle := 2 * math.Pi * float64(i) / float64(len(ids))
		jitter := r.Float64Range(-0.1, 0.1)
		particles[i] = &particle{
			id: id,
			x:  spread * math.Cos(angle+jitter),
			y:  spread * math.Sin(angle+jitter),
		}
	}
	return particles
}

// undirectedNeighbors builds a symmetric adjacency list since attraction
// is mutual regardless of which direction an edge was declared.
func undirectedNeighbors(g *graph.StateGraph, ids []string) map[string][]string {
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		for _, e := range g.GetEdgesFrom(id) {
			adj[e.From()] = append(adj[e.From()], e.To())
			adj[e.To()] = append(adj[e.To()], e.From())
		}
	}
	return adj
}

// simulateStep advances the simulation by one tick, iterating particles in
// sorted-id order so results are identical across runs regardless of map
// iteration order elsewhere. It returns the largest movement any particle
// made this step.
func simulateStep(particles []*particle, index map[string]int, neighbors map[string][]string, cfg Config) float64 {
	forces := make([]Point, len(particles))

	for i, p := range particles {
		var fx, fy float64

		for _, neighborID := range neighbors[p.id] {
			n := particles[index[neighborID]]
			dx, dy := n.x-p.x, n.y-p.y
			dist := math.Hypot(dx, dy)
			if dist < 1e-6 {
				continue
			}
			fx += cfg.SpringConstant * dx
			fy += cfg.SpringConstant * dy
		}

		for j, other := range particles {
			if i == j {
				continue
			}
			dx, dy := p.x-other.x, p.y-other.y
			dist := math.Hypot(dx, dy)
			if dist < 1e-3 {
				dist = 1e-3
			}
			repulsion := cfg.RepulsionConstant / (dist * dist)
			fx += repulsion * dx / dist
			fy += repulsion * dy / dist
		}

		forces[i] = Point{X: fx, Y: fy}
	}

	maxMovement := 0.0
	for i, p := range particles {
		p.vx = p.vx*cfg.DampingFactor + forces[i].X
		p.vy = p.vy*cfg.DampingFactor + forces[i].Y
		p.x += p.vx
		p.y += p.vy

		movement := math.Hypot(p.vx, p.vy)
		if movement > maxMovement {
			maxMovement = movement
		}
	}
	return maxMovement
}

func buildLayout(particles []*particle) *Layout {
	positions := make(map[string]Point, len(particles))
	layout := &Layout{Positions: positions}

	for i, p := range particles {
		positions[p.id] = Point{X: p.x, Y: p.y}
		if i == 0 {
			layout.MinX, layout.MaxX = p.x, p.x
			layout.MinY, layout.MaxY = p.y, p.y
			continue
		}
		layout.MinX = math.Min(layout.MinX, p.x)
		layout.MaxX = math.Max(layout.MaxX, p.x)
		layout.MinY = math.Min(layout.MinY, p.y)
		layout.MaxY = math.Max(layout.MaxY, p.y)
	}
	return layout
}

// configHash folds the graph's node and edge shape into the layout's seed
// derivation so a structurally different graph never silently reuses a
// stale layout seed.
func configHash(g *graph.StateGraph) []byte {
	h := sha256.New()
	for _, n := range g.Nodes() {
		io.WriteString(h, n.ID())
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(h, "%s:%s->%s;", e.Name(), e.From(), e.To())
	}
	return h.Sum(nil)
}
