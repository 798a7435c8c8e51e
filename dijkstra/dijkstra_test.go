package dijkstra_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/dijkstra"
)

// swapGraph is A and B wanting each other at cost 1, no-trade at 10.
func swapGraph(t *testing.T) (g *core.Graph, a, b core.VertexID) {
	t.Helper()
	g = core.NewGraph()
	var err error
	a, err = g.AddVertex("A", "", false)
	require.NoError(t, err)
	b, err = g.AddVertex("B", "", false)
	require.NoError(t, err)
	for _, e := range []struct {
		r, s core.VertexID
		c    int64
	}{
		{a, g.Vertex(a).Twin, 10},
		{b, g.Vertex(b).Twin, 10},
		{a, g.Vertex(b).Twin, 1},
		{b, g.Vertex(a).Twin, 1},
	} {
		_, err = g.AddEdge(e.r, e.s, e.c)
		require.NoError(t, err)
	}
	require.NoError(t, g.Freeze())
	return g, a, b
}

func TestRunFindsCheapestFreeSender(t *testing.T) {
	g, a, b := swapGraph(t)

	res, err := dijkstra.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.SinkDist)
	assert.Contains(t, []core.VertexID{g.Vertex(a).Twin, g.Vertex(b).Twin}, res.Sink)

	path := res.Path()
	require.Len(t, path, 2)
	assert.Equal(t, core.Receiver, g.Vertex(path[0]).Role)
	assert.Equal(t, res.Sink, path[1])
	eid := res.FromEdge[res.Sink]
	assert.Equal(t, path[0], g.Edge(eid).Receiver)
	assert.Equal(t, int64(0), res.Dist[a])
	assert.Equal(t, int64(0), res.Dist[b])
}

func TestRunCrossesMatchedPairs(t *testing.T) {
	g, a, b := swapGraph(t)
	sa, sb := g.Vertex(a).Twin, g.Vertex(b).Twin
	g.Link(a, sb, 1)
	g.Vertex(sb).Price = 1 // keeps A→B tight

	res := dijkstra.NewResult(g.NumVertices())
	require.NoError(t, dijkstra.RunInto(g, res))

	assert.Equal(t, sa, res.Sink)
	assert.Equal(t, int64(1), res.SinkDist)
	assert.Equal(t, []core.VertexID{b, sa}, res.Path())
	// B→sB costs 10-1, then the backward arc to A is free
	assert.Equal(t, int64(9), res.Dist[sb])
	assert.Equal(t, int64(9), res.Dist[a])
	assert.Equal(t, sb, res.From[a])
}

func TestRunRejectsInconsistentPrices(t *testing.T) {
	g, a, b := swapGraph(t)
	g.Link(a, g.Vertex(b).Twin, 1)

	_, err := dijkstra.Run(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeReducedCost)
	assert.True(t, errors.HasAssertionFailure(err))
}

func TestRunErrors(t *testing.T) {
	_, err := dijkstra.Run(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	err = dijkstra.RunInto(core.NewGraph(), dijkstra.NewResult(0))
	assert.ErrorIs(t, err, core.ErrNotFrozen)
}

func TestPathWithoutSink(t *testing.T) {
	res := dijkstra.NewResult(4)
	assert.Nil(t, res.Path())
	assert.Equal(t, core.Infinity, res.SinkDist)
}
