package dfs

import (
	"github.com/katalvlaran/tradecycle/core"
)

// Components labels the strongly connected components of the active items of
// g and stores each label in Vertex.Component of both twins. It returns the
// number of components.
//
// Errors: ErrGraphNil, core.ErrNotFrozen.
// Complexity: O(V + E).
func Components(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Frozen() {
		return 0, core.ErrNotFrozen
	}

	mark := g.NextMark()
	receivers := g.Receivers()
	finished := make([]core.VertexID, 0, len(receivers))
	stack := make([]frame, 0, 16)

	// 1) forward pass over receivers, recording twins in finish order
	for _, start := range receivers {
		if g.Vertex(start).Mark == mark {
			continue
		}
		g.Vertex(start).Mark = mark
		stack = append(stack, frame{v: int(start)})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := core.VertexID(top.v)
			adj := g.Adjacent(v)
			if top.next == len(adj) {
				stack = stack[:len(stack)-1]
				finished = append(finished, g.Vertex(v).Twin)
				continue
			}
			e := g.Edge(adj[top.next])
			top.next++
			w := g.Vertex(e.Sender).Twin
			if wv := g.Vertex(w); wv.Mark != mark {
				wv.Mark = mark
				stack = append(stack, frame{v: int(w)})
			}
		}
	}

	// 2) backward pass over senders in reverse finish order
	component := 0
	for i := len(finished) - 1; i >= 0; i-- {
		start := finished[i]
		if g.Vertex(start).Mark == mark {
			continue
		}
		component++
		g.Vertex(start).Mark = mark
		stack = append(stack, frame{v: int(start)})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := core.VertexID(top.v)
			adj := g.Adjacent(v)
			if top.next == len(adj) {
				stack = stack[:len(stack)-1]
				sv := g.Vertex(v)
				sv.Component = component
				g.Vertex(sv.Twin).Component = component
				continue
			}
			e := g.Edge(adj[top.next])
			top.next++
			w := g.Vertex(e.Receiver).Twin
			if wv := g.Vertex(w); wv.Mark != mark {
				wv.Mark = mark
				stack = append(stack, frame{v: int(w)})
			}
		}
	}

	return component, nil
}

// PruneComponents removes all edges between different strongly connected
// components and then removes the resulting orphans from the active vertex
// arrays. Senders that lose edges are marked dirty so their minimum incoming
// cost is recomputed before the next solve.
//
// Errors: ErrGraphNil, core.ErrNotFrozen.
// Complexity: O(V + E).
func PruneComponents(g *core.Graph) (Stats, error) {
	var st Stats
	n, err := Components(g)
	if err != nil {
		return st, err
	}
	st.Components = n

	st.RemovedEdges = g.FilterEdges(func(_ core.EdgeID, e *core.Edge) bool {
		return g.Vertex(e.Receiver).Component == g.Vertex(e.Sender).Component
	})
	st.Orphans = g.RemoveOrphans()

	return st, nil
}
