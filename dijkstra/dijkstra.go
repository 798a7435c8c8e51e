package dijkstra

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/pheap"
)

// Run executes one reduced-cost Dijkstra round on g and returns a new Result.
//
// Errors: ErrNilGraph, core.ErrNotFrozen, and assertion failures wrapping
// ErrNegativeReducedCost or ErrDistanceOverflow.
func Run(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	res := NewResult(g.NumVertices())
	if err := RunInto(g, res); err != nil {
		return nil, err
	}
	return res, nil
}

// RunInto is Run writing into a caller-owned Result, so that the matcher can
// reuse one Result across all rounds of a solve.
func RunInto(g *core.Graph, res *Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Frozen() {
		return core.ErrNotFrozen
	}
	res.reset(g.NumVertices())

	r := &runner{
		g:       g,
		res:     res,
		heap:    pheap.New[core.VertexID](),
		entries: make([]*pheap.Entry[core.VertexID], g.NumVertices()),
	}
	r.init()
	if err := r.process(); err != nil {
		return err
	}
	r.finish()

	return nil
}

// runner holds the mutable state of a single round.
type runner struct {
	g       *core.Graph
	res     *Result
	heap    *pheap.Heap[core.VertexID]
	entries []*pheap.Entry[core.VertexID] // per vertex handle, nil when inactive
}

// init seeds the heap: senders at infinity, receivers at 0 when unmatched.
func (r *runner) init() {
	for _, s := range r.g.Senders() {
		r.res.From[s] = core.NoVertex
		r.res.FromEdge[s] = core.NoEdge
		r.entries[s] = r.heap.Insert(s, core.Infinity)
	}
	for _, v := range r.g.Receivers() {
		r.res.From[v] = core.NoVertex
		r.res.FromEdge[v] = core.NoEdge
		cost := core.Infinity
		if r.g.Vertex(v).Match == core.NoVertex {
			cost = 0
		}
		r.entries[v] = r.heap.Insert(v, cost)
	}
}

// process is the main loop. It stops at the first vertex extracted at
// infinity.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		entry, err := r.heap.ExtractMin()
		if err != nil {
			return err
		}
		v, d := entry.Value, entry.Cost()
		if d >= core.Infinity {
			break
		}

		vx := r.g.Vertex(v)
		switch {
		case vx.Role == core.Receiver:
			if err = r.relaxReceiver(v, vx, d); err != nil {
				return err
			}
		case vx.Match == core.NoVertex:
			if d < r.res.SinkDist {
				r.res.Sink = v
				r.res.SinkDist = d
			}
		default:
			if err = r.relaxMatchedSender(v, vx, d); err != nil {
				return err
			}
		}
	}

	return nil
}

// relaxReceiver follows every edge of receiver v except the one to its match.
func (r *runner) relaxReceiver(v core.VertexID, vx *core.Vertex, d int64) error {
	for _, eid := range r.g.Adjacent(v) {
		e := r.g.Edge(eid)
		s := e.Sender
		if s == vx.Match {
			continue
		}
		c := vx.Price + e.Cost() - r.g.Vertex(s).Price
		if err := r.relax(v, s, eid, d, c); err != nil {
			return err
		}
	}

	return nil
}

// relaxMatchedSender follows the backward arc of a matched pair.
func (r *runner) relaxMatchedSender(v core.VertexID, vx *core.Vertex, d int64) error {
	other := r.g.Vertex(vx.Match)
	c := vx.Price - other.MatchCost - other.Price

	return r.relax(v, vx.Match, core.NoEdge, d, c)
}

// relax offers distance d+c to vertex to, reached from vertex from.
func (r *runner) relax(from, to core.VertexID, via core.EdgeID, d, c int64) error {
	if c < 0 {
		return errors.WithAssertionFailure(errors.Wrapf(ErrNegativeReducedCost,
			"%s→%s reduced cost %d", r.name(from), r.name(to), c))
	}
	nd := d + c
	if nd >= core.Infinity {
		return errors.WithAssertionFailure(errors.Wrapf(ErrDistanceOverflow,
			"%s→%s distance %d", r.name(from), r.name(to), nd))
	}
	entry := r.entries[to]
	if entry == nil {
		return errors.AssertionFailedf("dijkstra: edge %s→%s leaves the active graph",
			r.name(from), r.name(to))
	}
	if nd >= entry.Cost() {
		return nil
	}
	if err := r.heap.DecreaseCost(entry, nd); err != nil {
		return err
	}
	r.res.From[to] = from
	if via != core.NoEdge {
		r.res.FromEdge[to] = via
	}

	return nil
}

// finish copies the final heap costs into Result.Dist.
func (r *runner) finish() {
	for _, v := range r.g.Receivers() {
		r.res.Dist[v] = r.entries[v].Cost()
	}
	for _, v := range r.g.Senders() {
		r.res.Dist[v] = r.entries[v].Cost()
	}
}

func (r *runner) name(v core.VertexID) string {
	vx := r.g.Vertex(v)
	return vx.Name + "/" + vx.Role.String()
}
