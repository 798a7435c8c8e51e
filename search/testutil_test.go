package search_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/search"
	"github.com/katalvlaran/tradecycle/wantlist"
)

// graphFrom parses want lists and builds their frozen graph.
func graphFrom(t testing.TB, text string, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	doc, err := wantlist.Parse(strings.NewReader(text), wantlist.Options{})
	require.NoError(t, err)
	res, err := builder.Build(doc.Lists, opts...)
	require.NoError(t, err)
	require.Empty(t, res.Problems)
	return res.Graph
}

// randomWants writes n want lists with up to k wants each.
func randomWants(n, k int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "(u%d) I%d :", i, i)
		for _, j := range rng.Perm(n)[:k] {
			if j != i {
				fmt.Fprintf(&sb, " I%d", j)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// names returns the item names of a cycle.
func names(g *core.Graph, c search.Cycle) []string {
	out := make([]string, len(c))
	for i, r := range c {
		out[i] = g.Vertex(r).Name
	}
	return out
}
