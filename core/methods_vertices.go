// File: methods_vertices.go
// Role: Item creation and vertex lookups.

package core

import (
	"math"

	"github.com/cockroachdb/errors"
)

// AddVertex creates the receiver/sender twin pair of a new item and returns
// the receiver's id. The sender's id is the receiver's Twin.
//
// Errors: ErrGraphFrozen, ErrEmptyName, ErrDuplicateVertex.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name, user string, dummy bool) (VertexID, error) {
	if g.frozen {
		return NoVertex, ErrGraphFrozen
	}
	if name == "" {
		return NoVertex, ErrEmptyName
	}
	if _, ok := g.names[name]; ok {
		return NoVertex, errors.Wrapf(ErrDuplicateVertex, "%q", name)
	}

	receiver := VertexID(len(g.vertices))
	sender := receiver + 1
	g.vertices = append(g.vertices,
		newVertex(name, user, dummy, Receiver, sender),
		newVertex(name, user, dummy, Sender, receiver),
	)
	g.receivers = append(g.receivers, receiver)
	g.senders = append(g.senders, sender)
	g.names[name] = receiver

	return receiver, nil
}

func newVertex(name, user string, dummy bool, role Role, twin VertexID) Vertex {
	return Vertex{
		Name:       name,
		User:       user,
		Dummy:      dummy,
		Role:       role,
		Twin:       twin,
		Match:      NoVertex,
		SavedMatch: NoVertex,
		minInCost:  math.MaxInt64,
	}
}

// VertexByName returns the receiver of the item with the given name.
func (g *Graph) VertexByName(name string) (VertexID, bool) {
	id, ok := g.names[name]
	return id, ok
}

// Vertex returns the vertex with the given id. The pointer stays valid until
// the next AddVertex call. Panics when id is outside the arena.
func (g *Graph) Vertex(id VertexID) *Vertex {
	return &g.vertices[id]
}

// HasVertex reports whether id addresses a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// NumVertices returns the size of the vertex arena (two per item, orphans
// included). Use it to size per-vertex scratch arrays.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumItems returns the number of items ever added, orphans included.
func (g *Graph) NumItems() int { return len(g.vertices) / 2 }

// Adjacent returns the edge list of v: outgoing edges of a receiver, incoming
// edges of a sender. The slice is owned by the graph.
func (g *Graph) Adjacent(v VertexID) []EdgeID {
	return g.vertices[v].edges
}

// MinInCost returns the smallest cost among the incoming edges of sender s,
// recomputing it first if an edit invalidated the cached value.
func (g *Graph) MinInCost(s VertexID) int64 {
	v := &g.vertices[s]
	if v.dirty {
		v.minInCost = math.MaxInt64
		for _, eid := range v.edges {
			if c := g.edges[eid].cost; c < v.minInCost {
				v.minInCost = c
			}
		}
		v.dirty = false
	}

	return v.minInCost
}

// Dirty reports whether the cached minimum incoming cost of s is stale.
func (g *Graph) Dirty(s VertexID) bool { return g.vertices[s].dirty }
