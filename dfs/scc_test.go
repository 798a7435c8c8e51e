package dfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/dfs"
)

// randomTradeGraph gives every item a self edge and up to k random wants.
func randomTradeGraph(t testing.TB, n, k int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	ids := make([]core.VertexID, n)
	for i := range ids {
		r, err := g.AddVertex(fmt.Sprintf("I%02d", i), "", false)
		require.NoError(t, err)
		_, err = g.AddEdge(r, g.Vertex(r).Twin, 1000)
		require.NoError(t, err)
		ids[i] = r
	}
	for i, r := range ids {
		for j := 0; j < k; j++ {
			o := rng.Intn(n)
			if o == i {
				continue
			}
			s := g.Vertex(ids[o]).Twin
			if _, ok := g.GetEdge(r, s); ok {
				continue
			}
			_, err := g.AddEdge(r, s, int64(j+1))
			require.NoError(t, err)
		}
	}
	require.NoError(t, g.Freeze())
	return g
}

func TestComponentsAgreeWithTarjan(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomTradeGraph(t, 40, 2, seed)
		n, err := dfs.Components(g)
		require.NoError(t, err)

		dg := simple.NewDirectedGraph()
		for _, r := range g.Receivers() {
			dg.AddNode(simple.Node(r))
		}
		for _, r := range g.Receivers() {
			for _, eid := range g.Adjacent(r) {
				w := g.Vertex(g.Edge(eid).Sender).Twin
				if w != r {
					dg.SetEdge(dg.NewEdge(simple.Node(r), simple.Node(w)))
				}
			}
		}
		sccs := topo.TarjanSCC(dg)
		require.Len(t, sccs, n, "seed %d", seed)

		for _, scc := range sccs {
			label := g.Vertex(core.VertexID(scc[0].ID())).Component
			for _, node := range scc {
				v := g.Vertex(core.VertexID(node.ID()))
				assert.Equal(t, label, v.Component)
				assert.Equal(t, label, g.Vertex(v.Twin).Component)
			}
		}
	}
}

func TestPruneComponents(t *testing.T) {
	g := core.NewGraph()
	add := func(name string) core.VertexID {
		r, err := g.AddVertex(name, "", false)
		require.NoError(t, err)
		_, err = g.AddEdge(r, g.Vertex(r).Twin, 50)
		require.NoError(t, err)
		return r
	}
	want := func(r, o core.VertexID) {
		_, err := g.AddEdge(r, g.Vertex(o).Twin, 1)
		require.NoError(t, err)
	}
	a, b, c := add("A"), add("B"), add("C")
	want(a, b)
	want(b, a)
	want(c, a)
	require.NoError(t, g.Freeze())

	st, err := dfs.PruneComponents(g)
	require.NoError(t, err)
	assert.Equal(t, dfs.Stats{Components: 2, RemovedEdges: 1, Orphans: 1}, st)
	assert.Equal(t, []core.VertexID{c}, g.Orphans())

	// a second pass finds nothing left to prune
	st, err = dfs.PruneComponents(g)
	require.NoError(t, err)
	assert.Equal(t, dfs.Stats{Components: 1}, st)
}

func TestComponentsErrors(t *testing.T) {
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = dfs.PruneComponents(g)
	assert.ErrorIs(t, err, core.ErrNotFrozen)
}

func BenchmarkComponents(b *testing.B) {
	g := randomTradeGraph(b, 2000, 5, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
