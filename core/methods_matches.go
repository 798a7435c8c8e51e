// File: methods_matches.go
// Role: Per-solve vertex state: marks, visiting order, matches and the
//       saved-matching snapshot.

package core

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// NextMark advances and returns the traversal timestamp. A vertex counts as
// visited in the current traversal when its Mark equals the returned value,
// so marks never need to be cleared between traversals.
func (g *Graph) NextMark() int {
	g.timestamp++
	return g.timestamp
}

// Shuffle permutes the active receivers and each receiver's edge list with a
// Fisher–Yates shuffle driven by rng. Solvers visit vertices and edges in
// these orders, so shuffling perturbs their tie-breaking.
func (g *Graph) Shuffle(rng *rand.Rand) {
	shuffle(g.receivers, rng)
	for _, r := range g.receivers {
		shuffle(g.vertices[r].edges, rng)
	}
}

func shuffle[T any](a []T, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// ClearMatches unmatches every active vertex.
func (g *Graph) ClearMatches() {
	for _, r := range g.receivers {
		g.vertices[r].Match = NoVertex
		g.vertices[r].MatchCost = 0
	}
	for _, s := range g.senders {
		g.vertices[s].Match = NoVertex
		g.vertices[s].MatchCost = 0
	}
}

// SaveMatches snapshots the current matching of the active vertices.
func (g *Graph) SaveMatches() {
	for _, r := range g.receivers {
		v := &g.vertices[r]
		v.SavedMatch, v.SavedMatchCost = v.Match, v.MatchCost
	}
	for _, s := range g.senders {
		v := &g.vertices[s]
		v.SavedMatch, v.SavedMatchCost = v.Match, v.MatchCost
	}
}

// RestoreMatches reinstates the matching stored by SaveMatches.
func (g *Graph) RestoreMatches() {
	for _, r := range g.receivers {
		v := &g.vertices[r]
		v.Match, v.MatchCost = v.SavedMatch, v.SavedMatchCost
	}
	for _, s := range g.senders {
		v := &g.vertices[s]
		v.Match, v.MatchCost = v.SavedMatch, v.SavedMatchCost
	}
}

// Link pairs receiver r with sender s at the given cost, unlinking whatever
// either of them was matched with before.
func (g *Graph) Link(r, s VertexID, cost int64) {
	rv, sv := &g.vertices[r], &g.vertices[s]
	if sv.Match != NoVertex {
		g.vertices[sv.Match].Match = NoVertex
	}
	if rv.Match != NoVertex {
		g.vertices[rv.Match].Match = NoVertex
	}
	rv.Match, sv.Match = s, r
	rv.MatchCost, sv.MatchCost = cost, cost
}

// CheckMatching verifies that every active vertex is matched and that
// matches are mutual, cross-role and realized by a live edge.
func (g *Graph) CheckMatching() error {
	for _, r := range g.receivers {
		v := &g.vertices[r]
		if v.Match == NoVertex {
			return errors.Wrapf(ErrInvalidMatching, "receiver %q is unmatched", v.Name)
		}
		m := &g.vertices[v.Match]
		if m.Role != Sender || m.Match != r {
			return errors.Wrapf(ErrInvalidMatching, "%q and %q are not mutually matched", v.Name, m.Name)
		}
		if _, ok := g.GetEdge(r, v.Match); !ok {
			return errors.Wrapf(ErrInvalidMatching, "no edge realizes %q→%q", v.Name, m.Name)
		}
	}
	for _, s := range g.senders {
		if g.vertices[s].Match == NoVertex {
			return errors.Wrapf(ErrInvalidMatching, "sender %q is unmatched", g.vertices[s].Name)
		}
	}
	return nil
}
