package shrink_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/shrink"
)

const selfCost = 100

type arc struct {
	From, To string
	Cost     int64
}

// tradeGraph adds every item with a no-trade edge, then the arcs.
func tradeGraph(t *testing.T, items []string, arcs ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range items {
		r, err := g.AddVertex(name, "", false)
		require.NoError(t, err)
		_, err = g.AddEdge(r, g.Vertex(r).Twin, selfCost)
		require.NoError(t, err)
	}
	for _, a := range arcs {
		r, _ := g.VertexByName(a.From)
		o, _ := g.VertexByName(a.To)
		_, err := g.AddEdge(r, g.Vertex(o).Twin, a.Cost)
		require.NoError(t, err)
	}
	require.NoError(t, g.Freeze())
	return g
}

// triangle has one optimal trade A→B→C→A of cost 3 and a costlier detour.
func triangle(t *testing.T, extra ...arc) *core.Graph {
	arcs := append([]arc{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1}, {"A", "C", 5},
	}, extra...)
	items := []string{"A", "B", "C"}
	for _, a := range extra {
		items = appendMissing(items, a.From, a.To)
	}
	return tradeGraph(t, items, arcs...)
}

func appendMissing(items []string, names ...string) []string {
	for _, n := range names {
		found := false
		for _, it := range items {
			found = found || it == n
		}
		if !found {
			items = append(items, n)
		}
	}
	return items
}

func stageNames(stages []shrink.Stage) []string {
	out := make([]string, len(stages))
	for i, st := range stages {
		out[i] = st.Name
	}
	return out
}
