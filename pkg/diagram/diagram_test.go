package diagram_test

import (
	"testing"

	"github.com/corehatch/statecover/pkg/diagram"
	"github.com/corehatch/statecover/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysTrue(graph.Context) bool { return true }
func noopAction(graph.Context) (any, error) { return nil, nil }

func buildTriangle(t *testing.T) *graph.StateGraph {
	t.Helper()
	g := graph.NewStateGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(graph.MustNewStateNode(id, alwaysTrue, "")))
	}
	require.NoError(t, g.AddEdge(graph.MustNewEdge("a_to_b", "a", "b", noopAction)))
	require.NoError(t, g.AddEdge(graph.MustNewEdge("b_to_c", "b", "c", noopAction)))
	require.NoError(t, g.AddEdge(graph.MustNewEdge("c_to_a", "c", "a", noopAction)))
	require.NoError(t, g.SetInitial("a"))
	return g
}

func TestComputeLayoutPlacesEveryNode(t *testing.T) {
	g := buildTriangle(t)
	layout, err := diagram.ComputeLayout(g, 42, diagram.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, layout.Positions, 3)
	for _, id := range []string{"a", "b", "c"} {
		_, ok := layout.Positions[id]
		assert.True(t, ok, "missing position for %s", id)
	}
}

func TestComputeLayoutIsDeterministic(t *testing.T) {
	g := buildTriangle(t)
	layoutA, err := diagram.ComputeLayout(g, 7, diagram.DefaultConfig())
	require.NoError(t, err)
	layoutB, err := diagram.ComputeLayout(g, 7, diagram.DefaultConfig())
	require.NoError(t, err)

	for id, pos := range layoutA.Positions {
		other := layoutB.Positions[id]
		assert.InDelta(t, pos.X, other.X, 1e-9)
		assert.InDelta(t, pos.Y, other.Y, 1e-9)
	}
}

func TestComputeLayoutEmptyGraph(t *testing.T) {
	g := graph.NewStateGraph()
	_, err := diagram.ComputeLayout(g, 1, diagram.DefaultConfig())
	require.ErrorIs(t, err, diagram.ErrEmptyGraph)
}

func TestRenderSVGProducesValidHeader(t *testing.T) {
	g := buildTriangle(t)
	layout, err := diagram.ComputeLayout(g, 1, diagram.DefaultConfig())
	require.NoError(t, err)

	data, err := diagram.RenderSVG(g, layout, nil, diagram.DefaultSVGOptions())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "a_to_b")
}
