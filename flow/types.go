package flow

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrNoPerfectMatching is returned when a receiver has no augmenting path.
	// Every item keeps its no-trade edge, so on a well-formed trade graph this
	// only happens when an invariant was broken upstream.
	ErrNoPerfectMatching = errors.New("flow: no perfect matching")
)

// stacks is the explicit DFS state of one augmenting-path search.
// Level i holds the receiver being expanded, the index of its next edge to
// try, and the sender/edge chosen from it.
type stacks struct {
	receivers []core.VertexID
	next      []int
	senders   []core.VertexID
	edges     []core.EdgeID
}

func newStacks(n int) *stacks {
	return &stacks{
		receivers: make([]core.VertexID, n),
		next:      make([]int, n),
		senders:   make([]core.VertexID, n),
		edges:     make([]core.EdgeID, n),
	}
}
