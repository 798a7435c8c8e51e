package shrink_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/matching"
	"github.com/katalvlaran/tradecycle/shrink"
)

// tiedGraph builds n items whose wants cost 1..maxCost, so most graphs
// have many optimal matchings.
func tiedGraph(t *testing.T, n int, maxCost int64, density float64, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("I%02d", i)
	}
	var arcs []arc
	for _, from := range items {
		for _, to := range items {
			if from != to && rng.Float64() < density {
				arcs = append(arcs, arc{from, to, 1 + rng.Int63n(maxCost)})
			}
		}
	}
	return tradeGraph(t, items, arcs...)
}

// shrunkCost solves the shrunk graph and adds the self-matched orphans.
func shrunkCost(t *testing.T, g *core.Graph) int64 {
	t.Helper()
	total, err := matching.FindBestMatches(g)
	require.NoError(t, err)
	return total + orphanCost(g)
}

func TestShrinkPreservesOptimum(t *testing.T) {
	t.Parallel()

	for _, level := range []int{1, 2} {
		for seed := int64(1); seed <= 100; seed++ {
			name := fmt.Sprintf("level%d/seed%d", level, seed)
			n := 3 + int(seed%25)

			want, err := matching.MinCost(tiedGraph(t, n, 4, 0.3, seed))
			require.NoError(t, err, name)

			g := tiedGraph(t, n, 4, 0.3, seed)
			rep, err := shrink.Shrink(g, level)
			require.NoError(t, err, name)
			assert.Equal(t, level == 2, rep.FullyShrunk, name)
			assert.Equal(t, level == 2, g.FullyShrunk(), name)

			got := shrunkCost(t, g)
			require.NoError(t, g.CheckMatching(), name)
			assert.Equal(t, want, got, name)
			if level < 2 {
				continue
			}

			// the unweighted matcher is as cheap as the weighted one
			weighted, err := matching.MinCost(g)
			require.NoError(t, err, name)
			assert.Equal(t, got, weighted+orphanCost(g), name)

			again, err := shrink.Shrink(g, 2)
			require.NoError(t, err, name)
			assert.Zero(t, again.RemovedEdges, name)
			assert.Zero(t, again.Orphans, name)
			assert.Equal(t, want, shrunkCost(t, g), name)
		}
	}
}

func orphanCost(g *core.Graph) int64 {
	var total int64
	for _, o := range g.Orphans() {
		total += g.Vertex(o).MatchCost
	}
	return total
}
