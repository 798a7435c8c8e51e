// File: methods_frozen.go
// Role: Freeze and the operations that only make sense on a frozen graph:
//       active vertex arrays, edge filtering and orphan removal.

package core

// Freeze ends the building phase. Adjacency slices are compacted to their
// exact length and no further vertices or edges can be added.
//
// Errors: ErrGraphFrozen when called twice.
// Complexity: O(V + E).
func (g *Graph) Freeze() error {
	if g.frozen {
		return ErrGraphFrozen
	}

	for i := range g.vertices {
		v := &g.vertices[i]
		v.edges = compact(v.edges)
	}
	g.receivers = compact(g.receivers)
	g.senders = compact(g.senders)
	g.frozen = true

	return nil
}

func compact[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// Receivers returns the active receivers (orphans excluded), or nil while the
// graph is still being built. The order is the solvers' visiting order and
// changes with Shuffle. The slice is owned by the graph.
func (g *Graph) Receivers() []VertexID {
	if !g.frozen {
		return nil
	}
	return g.receivers
}

// Senders returns the active senders, or nil while building.
func (g *Graph) Senders() []VertexID {
	if !g.frozen {
		return nil
	}
	return g.senders
}

// Orphans returns the receivers removed by RemoveOrphans, in removal order.
func (g *Graph) Orphans() []VertexID { return g.orphans }

// FullyShrunk reports whether a level-2 shrink has completed, after which
// every surviving edge belongs to some optimal matching.
func (g *Graph) FullyShrunk() bool { return g.fullyShrunk }

// SetFullyShrunk records the outcome of the shrink engine.
func (g *Graph) SetFullyShrunk(v bool) { g.fullyShrunk = v }

// FilterEdges removes every edge of the active vertices for which keep
// returns false. keep is called once per edge, from the receiver side.
// Senders that lose an edge have their minimum incoming cost invalidated.
//
// Returns the number of removed edges.
// Complexity: O(V + E).
func (g *Graph) FilterEdges(keep func(id EdgeID, e *Edge) bool) int {
	removed := 0
	for _, r := range g.receivers {
		v := &g.vertices[r]
		n := 0
		for _, eid := range v.edges {
			e := &g.edges[eid]
			if keep(eid, e) {
				v.edges[n] = eid
				n++
				continue
			}
			e.removed = true
			delete(g.pairs, edgeKey{e.Receiver, e.Sender})
			g.vertices[e.Sender].dirty = true
			removed++
		}
		clear(v.edges[n:])
		v.edges = v.edges[:n:n]
	}
	if removed == 0 {
		return 0
	}

	for _, s := range g.senders {
		v := &g.vertices[s]
		n := 0
		for _, eid := range v.edges {
			if !g.edges[eid].removed {
				v.edges[n] = eid
				n++
			}
		}
		v.edges = v.edges[:n:n]
	}

	return removed
}

// RemoveOrphans drops from the active arrays every item whose receiver and
// sender are both reduced to the no-trade edge. Such an item cannot trade.
// Orphans are matched to themselves so that reports can still show a match
// cost for them.
//
// It must run after component pruning, which guarantees that a receiver left
// with only its self edge has a sender left with only its self edge too.
//
// Returns the number of new orphans.
// Complexity: O(V).
func (g *Graph) RemoveOrphans() int {
	n := 0
	found := 0
	for _, r := range g.receivers {
		if !g.isOrphan(r) {
			g.receivers[n] = r
			n++
			continue
		}
		v := &g.vertices[r]
		eid := v.edges[0]
		v.Match = v.Twin
		v.MatchCost = g.edges[eid].cost
		tw := &g.vertices[v.Twin]
		tw.Match = r
		tw.MatchCost = v.MatchCost
		g.orphans = append(g.orphans, r)
		found++
	}
	if found == 0 {
		return 0
	}
	g.receivers = g.receivers[:n:n]

	n = 0
	for _, s := range g.senders {
		if !g.isOrphan(g.vertices[s].Twin) {
			g.senders[n] = s
			n++
		}
	}
	g.senders = g.senders[:n:n]

	return found
}

func (g *Graph) isOrphan(r VertexID) bool {
	v := &g.vertices[r]
	if len(v.edges) != 1 || g.edges[v.edges[0]].Sender != v.Twin {
		return false
	}
	return len(g.vertices[v.Twin].edges) == 1
}

// EdgeCount returns the number of live edges among the active receivers.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, r := range g.receivers {
		n += len(g.vertices[r].edges)
	}
	return n
}

// Histogram counts the live edges of the active receivers per status.
func (g *Graph) Histogram() StatusHistogram {
	var h StatusHistogram
	for _, r := range g.receivers {
		for _, eid := range g.vertices[r].edges {
			h[g.edges[eid].Status]++
		}
	}
	return h
}

// ResetStatuses marks every live edge of the active receivers Unknown.
func (g *Graph) ResetStatuses() {
	for _, r := range g.receivers {
		for _, eid := range g.vertices[r].edges {
			g.edges[eid].Status = Unknown
		}
	}
}
