// File: methods_edges.go
// Role: Edge creation, lookup and cost edits.

package core

import (
	"github.com/cockroachdb/errors"
)

// AddEdge adds the arc receiver → sender with the given cost.
//
// While the graph is being built the sender's minimum incoming cost is
// maintained eagerly; later edits go through SetCost.
//
// Errors: ErrGraphFrozen, ErrVertexNotFound, ErrWrongRole, ErrBadCost,
// ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(receiver, sender VertexID, cost int64) (EdgeID, error) {
	if g.frozen {
		return NoEdge, ErrGraphFrozen
	}
	if !g.HasVertex(receiver) || !g.HasVertex(sender) {
		return NoEdge, errors.Wrapf(ErrVertexNotFound, "edge %d→%d", receiver, sender)
	}
	r, s := &g.vertices[receiver], &g.vertices[sender]
	if r.Role != Receiver || s.Role != Sender {
		return NoEdge, errors.Wrapf(ErrWrongRole, "edge %s→%s", r.Name, s.Name)
	}
	if cost < 0 || cost >= MaxCost {
		return NoEdge, errors.Wrapf(ErrBadCost, "edge %s→%s cost=%d", r.Name, s.Name, cost)
	}
	key := edgeKey{receiver, sender}
	if _, ok := g.pairs[key]; ok {
		return NoEdge, errors.Wrapf(ErrDuplicateEdge, "edge %s→%s", r.Name, s.Name)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{Receiver: receiver, Sender: sender, cost: cost})
	g.pairs[key] = id
	r.edges = append(r.edges, id)
	s.edges = append(s.edges, id)
	if cost < s.minInCost {
		s.minInCost = cost
	}

	return id, nil
}

// GetEdge returns the live edge receiver → sender, if any.
func (g *Graph) GetEdge(receiver, sender VertexID) (EdgeID, bool) {
	id, ok := g.pairs[edgeKey{receiver, sender}]
	return id, ok
}

// Edge returns the edge with the given id. Panics when id is outside the arena.
func (g *Graph) Edge(id EdgeID) *Edge {
	return &g.edges[id]
}

// NumEdges returns the size of the edge arena, removed edges included.
func (g *Graph) NumEdges() int { return len(g.edges) }

// SetCost changes the cost of edge id, invalidating the sender's cached
// minimum incoming cost only when the change can affect it.
//
// Errors: ErrBadCost.
func (g *Graph) SetCost(id EdgeID, cost int64) error {
	e := &g.edges[id]
	if cost < 0 || cost >= MaxCost {
		return errors.Wrapf(ErrBadCost, "edge %d cost=%d", id, cost)
	}
	old := e.cost
	e.cost = cost

	s := &g.vertices[e.Sender]
	if s.dirty {
		return nil
	}
	switch {
	case cost < s.minInCost:
		s.minInCost = cost
	case old == s.minInCost && cost > old:
		s.dirty = true
	}

	return nil
}

// MatchedEdge returns the edge realizing the current match of receiver r.
func (g *Graph) MatchedEdge(r VertexID) (EdgeID, bool) {
	m := g.vertices[r].Match
	if m == NoVertex {
		return NoEdge, false
	}

	return g.GetEdge(r, m)
}

// SelfEdge returns the no-trade edge of receiver r, if it survives.
func (g *Graph) SelfEdge(r VertexID) (EdgeID, bool) {
	return g.GetEdge(r, g.vertices[r].Twin)
}
