package matching

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/dijkstra"
	"github.com/katalvlaran/tradecycle/flow"
)

// FindBestMatches computes an optimal perfect matching of g and returns its
// cost. A fully shrunk graph is matched by flow.PerfectMatching, any other
// graph by MinCost.
func FindBestMatches(g *core.Graph, opts ...Option) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if g.FullyShrunk() {
		return flow.PerfectMatching(g)
	}

	return MinCost(g, opts...)
}

// MinCost replaces the matching of g by a minimum-cost perfect matching and
// returns its total cost.
//
// Steps:
//  1. Clear matches; price receivers at 0 and senders at their minimum
//     incoming cost.
//  2. Repeat V times: Dijkstra from the free receivers, augment along the
//     path to the sink, raise prices by min(dist, sinkDist).
//  3. Return the sum of match costs.
func MinCost(g *core.Graph, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.Frozen() {
		return 0, core.ErrNotFrozen
	}

	// 1) Initial matching and prices
	g.ClearMatches()
	receivers, senders := g.Receivers(), g.Senders()
	for _, r := range receivers {
		g.Vertex(r).Price = 0
	}
	for _, s := range senders {
		g.Vertex(s).Price = g.MinInCost(s)
	}

	// 2) Rounds
	res := dijkstra.NewResult(g.NumVertices())
	for round := 1; round <= len(receivers); round++ {
		if err := dijkstra.RunInto(g, res); err != nil {
			return 0, errors.Wrapf(err, "round %d", round)
		}
		if res.Sink == core.NoVertex {
			return 0, errors.WithAssertionFailure(errors.Wrapf(ErrNoAugmentingPath,
				"round %d of %d", round, len(receivers)))
		}
		augment(g, res)
		updatePrices(g, res)

		if cfg.Hook != nil {
			if err := cfg.Hook(round); err != nil {
				return 0, err
			}
		}
	}

	// 3) Total
	return TotalCost(g), nil
}

// augment flips the matching along the shortest path ending at res.Sink.
func augment(g *core.Graph, res *dijkstra.Result) {
	for s := res.Sink; s != core.NoVertex; {
		r := res.From[s]
		next := res.From[r]
		g.Link(r, s, g.Edge(res.FromEdge[s]).Cost())
		s = next
	}
}

// updatePrices adds min(dist, sinkDist) to every active price.
func updatePrices(g *core.Graph, res *dijkstra.Result) {
	bound := res.SinkDist
	for _, r := range g.Receivers() {
		g.Vertex(r).Price += min(res.Dist[r], bound)
	}
	for _, s := range g.Senders() {
		g.Vertex(s).Price += min(res.Dist[s], bound)
	}
}

// TotalCost sums the match costs of the active receivers.
func TotalCost(g *core.Graph) int64 {
	var total int64
	for _, r := range g.Receivers() {
		total += g.Vertex(r).MatchCost
	}
	return total
}

// CheckPotentials verifies that every live edge of the active receivers has
// a non-negative reduced cost under the current prices. It returns an
// assertion failure wrapping ErrBrokenPotentials for the first violation.
func CheckPotentials(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, r := range g.Receivers() {
		rv := g.Vertex(r)
		for _, eid := range g.Adjacent(r) {
			e := g.Edge(eid)
			sv := g.Vertex(e.Sender)
			if reduced := rv.Price + e.Cost() - sv.Price; reduced < 0 {
				return errors.WithAssertionFailure(errors.Wrapf(ErrBrokenPotentials,
					"%q→%q reduced cost %d", rv.Name, sv.Name, reduced))
			}
		}
	}
	return nil
}
