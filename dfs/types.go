package dfs

import "github.com/cockroachdb/errors"

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Stats summarizes one pruning pass.
type Stats struct {
	// Components is the number of strongly connected components found.
	Components int
	// RemovedEdges counts cross-component edges deleted by this pass.
	RemovedEdges int
	// Orphans counts items set aside by this pass.
	Orphans int
}

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int // core.VertexID
	next int // index of the next adjacency entry to inspect
}
