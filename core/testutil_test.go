package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/core"
)

// arc is one want: the owner of From would accept To at Cost.
type arc struct {
	From, To string
	Cost     int64
}

// newTradeGraph adds every item with a no-trade edge of cost selfCost, then
// the arcs, and freezes the graph.
func newTradeGraph(t *testing.T, items []string, selfCost int64, arcs ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range items {
		r, err := g.AddVertex(name, "", false)
		require.NoError(t, err)
		_, err = g.AddEdge(r, g.Vertex(r).Twin, selfCost)
		require.NoError(t, err)
	}
	for _, a := range arcs {
		r, ok := g.VertexByName(a.From)
		require.True(t, ok, a.From)
		o, ok := g.VertexByName(a.To)
		require.True(t, ok, a.To)
		_, err := g.AddEdge(r, g.Vertex(o).Twin, a.Cost)
		require.NoError(t, err)
	}
	require.NoError(t, g.Freeze())
	return g
}

func sender(t *testing.T, g *core.Graph, name string) core.VertexID {
	t.Helper()
	r, ok := g.VertexByName(name)
	require.True(t, ok, name)
	return g.Vertex(r).Twin
}

func receiver(t *testing.T, g *core.Graph, name string) core.VertexID {
	t.Helper()
	r, ok := g.VertexByName(name)
	require.True(t, ok, name)
	return r
}
