package dijkstra

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeReducedCost indicates that the potentials of the matcher are
	// inconsistent. Always wrapped as an assertion failure.
	ErrNegativeReducedCost = errors.New("dijkstra: negative reduced cost")

	// ErrDistanceOverflow indicates a tentative distance reaching core.Infinity.
	// Always wrapped as an assertion failure.
	ErrDistanceOverflow = errors.New("dijkstra: distance reached infinity")
)

// Result holds the outcome of one round. Slices are indexed by core.VertexID
// and sized to the graph's vertex arena; entries of inactive vertices are
// meaningless.
type Result struct {
	// Sink is the closest unmatched sender, or core.NoVertex when none is reachable.
	Sink core.VertexID
	// SinkDist is the distance of Sink (core.Infinity when there is none).
	SinkDist int64
	// Dist is the final shortest distance of every vertex; core.Infinity when unreached.
	Dist []int64
	// From is the predecessor of every reached vertex on its shortest path.
	From []core.VertexID
	// FromEdge is, for a sender, the edge through which it was reached.
	FromEdge []core.EdgeID
}

// NewResult allocates a Result for a graph with n vertices.
func NewResult(n int) *Result {
	res := &Result{}
	res.reset(n)
	return res
}

func (res *Result) reset(n int) {
	if cap(res.Dist) < n {
		res.Dist = make([]int64, n)
		res.From = make([]core.VertexID, n)
		res.FromEdge = make([]core.EdgeID, n)
	}
	res.Dist = res.Dist[:n]
	res.From = res.From[:n]
	res.FromEdge = res.FromEdge[:n]
	res.Sink = core.NoVertex
	res.SinkDist = core.Infinity
}

// Path returns the augmenting path ending at Sink as alternating
// receiver/sender ids, starting at an unmatched receiver.
func (res *Result) Path() []core.VertexID {
	if res.Sink == core.NoVertex {
		return nil
	}
	var path []core.VertexID
	for v := res.Sink; v != core.NoVertex; v = res.From[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
