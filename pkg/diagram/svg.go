package diagram

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/corehatch/statecover/pkg/explore"
	"github.com/corehatch/statecover/pkg/graph"
)

// SVGOptions controls how RenderSVG draws a graph.
type SVGOptions struct {
	Title       string
	Padding     int
	NodeRadius  int
	Scale       float64
	ShowLegend  bool
}

// DefaultSVGOptions returns sensible defaults for a small-to-medium graph.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Title:      "State Graph",
		Padding:    60,
		NodeRadius: 24,
		Scale:      1.0,
		ShowLegend: true,
	}
}

const (
	colorOK      = "fill:#6fcf97;stroke:#219653;stroke-width:2"
	colorBroken  = "fill:#eb5757;stroke:#9b2c2c;stroke-width:2"
	colorInitial = "stroke-dasharray:4,2"
	edgeStyle    = "stroke:#828282;stroke-width:1.5;fill:none"
	labelStyle   = "font-family:sans-serif;font-size:12px;fill:#1c1c1c;text-anchor:middle"
	headerStyle  = "font-family:sans-serif;font-size:18px;font-weight:bold;fill:#1c1c1c"
)

// RenderSVG draws g using layout's node positions, coloring each node by
// whether it appeared as a broken node in lastResult (nil means no
// exploration has run yet, so every node is drawn in the OK color).
func RenderSVG(g *graph.StateGraph, layout *Layout, lastResult *explore.ExplorationResult, opts SVGOptions) ([]byte, error) {
	if len(layout.Positions) == 0 {
		return nil, ErrEmptyGraph
	}

	width := int((layout.MaxX-layout.MinX)*opts.Scale) + 2*opts.Padding + 200
	height := int((layout.MaxY-layout.MinY)*opts.Scale) + 2*opts.Padding + 120

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	defer canvas.End()

	drawHeader(canvas, opts.Title, g, lastResult)

	broken := map[string]bool{}
	if lastResult != nil {
		for _, id := range lastResult.BrokenNodes() {
			broken[id] = true
		}
	}

	originX := opts.Padding + 100 - int(layout.MinX*opts.Scale)
	originY := opts.Padding + 60 - int(layout.MinY*opts.Scale)

	project := func(p Point) (int, int) {
		return originX + int(p.X*opts.Scale), originY + int(p.Y*opts.Scale)
	}

	initial, _ := g.Initial()

	for _, e := range g.Edges() {
		from, fromOK := layout.Positions[e.From()]
		to, toOK := layout.Positions[e.To()]
		if !fromOK || !toOK {
			continue
		}
		x1, y1 := project(from)
		x2, y2 := project(to)
		drawEdge(canvas, x1, y1, x2, y2, e.Name())
	}

	for _, n := range g.Nodes() {
		pos, ok := layout.Positions[n.ID()]
		if !ok {
			continue
		}
		x, y := project(pos)
		style := colorOK
		if broken[n.ID()] {
			style = colorBroken
		}
		if n.ID() == initial {
			style += ";" + colorInitial
		}
		canvas.Circle(x, y, opts.NodeRadius, style)
		canvas.Text(x, y+opts.NodeRadius+14, n.ID(), labelStyle)
	}

	if opts.ShowLegend {
		drawLegend(canvas, opts.Padding, height-40)
	}

	return buf.Bytes(), nil
}

func drawHeader(canvas *svg.SVG, title string, g *graph.StateGraph, lastResult *explore.ExplorationResult) {
	canvas.Text(20, 30, title, headerStyle)
	stats := fmt.Sprintf("%d nodes, %d edges", len(g.Nodes()), len(g.Edges()))
	if lastResult != nil {
		stats += fmt.Sprintf(", %d/%d paths clean", lastResult.SuccessfulPaths(), lastResult.TotalPaths())
	}
	canvas.Text(20, 50, stats, "font-family:sans-serif;font-size:12px;fill:#4f4f4f")
}

func drawEdge(canvas *svg.SVG, x1, y1, x2, y2 int, label string) {
	canvas.Line(x1, y1, x2, y2, edgeStyle)
	drawArrowhead(canvas, x1, y1, x2, y2)
	midX, midY := (x1+x2)/2, (y1+y2)/2
	canvas.Text(midX, midY-4, label, "font-family:sans-serif;font-size:10px;fill:#4f4f4f;text-anchor:middle")
}

func drawArrowhead(canvas *svg.SVG, x1, y1, x2, y2 int) {
	dx, dy := float64(x2-x1), float64(y2-y1)
	length := dx*dx + dy*dy
	if length == 0 {
		return
	}
	norm := 1.0
	if length > 0 {
		norm = 10.0 / math.Sqrt(length)
	}
	ux, uy := dx*norm, dy*norm
	tipX, tipY := x2, y2
	leftX, leftY := float64(tipX)-ux-uy*0.5, float64(tipY)-uy+ux*0.5
	rightX, rightY := float64(tipX)-ux+uy*0.5, float64(tipY)-uy-ux*0.5

	canvas.Polygon(
		[]int{tipX, int(leftX), int(rightX)},
		[]int{tipY, int(leftY), int(rightY)},
		"fill:#828282",
	)
}

func drawLegend(canvas *svg.SVG, x, y int) {
	canvas.Circle(x+10, y, 8, colorOK)
	canvas.Text(x+25, y+4, "reachable, no violations", labelStyle+";text-anchor:start")
	canvas.Circle(x+10, y+20, 8, colorBroken)
	canvas.Text(x+25, y+24, "broken in last exploration", labelStyle+";text-anchor:start")
}

