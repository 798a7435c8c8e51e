package flow

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
)

// PerfectMatching clears the matching of g and rebuilds a perfect one by
// unweighted augmenting paths. It returns the total cost of the matched
// edges; each matched pair records its edge cost as MatchCost.
//
// Steps:
//  1. Validate the graph and clear the matching.
//  2. For every active receiver, DFS from it for an unmatched sender.
//  3. Flip the path found: every receiver on the stack takes the sender it
//     stepped to.
//  4. Sum the match costs.
func PerfectMatching(g *core.Graph) (int64, error) {
	// 1) Validate
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.Frozen() {
		return 0, core.ErrNotFrozen
	}
	g.ClearMatches()

	receivers := g.Receivers()
	st := newStacks(len(receivers))

	// 2) One search per receiver
	for _, root := range receivers {
		depth, ok := augment(g, st, root)
		if !ok {
			return 0, errors.Wrapf(ErrNoPerfectMatching, "receiver %q", g.Vertex(root).Name)
		}
		// 3) Flip
		for i := 0; i <= depth; i++ {
			r := st.receivers[i]
			s := st.senders[i]
			cost := g.Edge(st.edges[i]).Cost()
			rv, sv := g.Vertex(r), g.Vertex(s)
			rv.Match, sv.Match = s, r
			rv.MatchCost, sv.MatchCost = cost, cost
		}
	}

	// 4) Total
	var total int64
	for _, r := range receivers {
		total += g.Vertex(r).MatchCost
	}

	return total, nil
}

// augment searches for an unmatched sender reachable from root along
// alternating paths. On success it returns the stack depth of the last level,
// whose sender is the unmatched one.
func augment(g *core.Graph, st *stacks, root core.VertexID) (int, bool) {
	mark := g.NextMark()
	depth := 0
	st.receivers[0] = root
	st.next[0] = 0

	for depth >= 0 {
		r := st.receivers[depth]
		adj := g.Adjacent(r)
		if st.next[depth] == len(adj) {
			depth--
			continue
		}
		eid := adj[st.next[depth]]
		st.next[depth]++

		s := g.Edge(eid).Sender
		sv := g.Vertex(s)
		if sv.Mark == mark {
			continue
		}
		st.senders[depth] = s
		st.edges[depth] = eid
		if sv.Match == core.NoVertex {
			return depth, true
		}
		sv.Mark = mark

		// step through the matched pair
		depth++
		st.receivers[depth] = sv.Match
		st.next[depth] = 0
	}

	return 0, false
}
