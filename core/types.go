// File: types.go
// Role: Vertex, Edge, Graph declarations, sentinel errors and NewGraph.

package core

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphFrozen indicates a mutation was attempted after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")

	// ErrNotFrozen indicates an operation that needs the compacted graph was
	// called before Freeze.
	ErrNotFrozen = errors.New("core: graph is not frozen")

	// ErrEmptyName indicates AddVertex was called with an empty name.
	ErrEmptyName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates a vertex with the same name already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex name")

	// ErrVertexNotFound indicates a VertexID outside the vertex arena.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrWrongRole indicates edge endpoints that are not a receiver and a sender.
	ErrWrongRole = errors.New("core: edge must run from a receiver to a sender")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadCost indicates a negative cost or one at or above MaxCost.
	ErrBadCost = errors.New("core: edge cost out of range")

	// ErrInvalidMatching indicates a matching that is not perfect, not
	// mutual, or not realized by live edges.
	ErrInvalidMatching = errors.New("core: invalid matching")
)

// Infinity is the distance sentinel used by the matchers. Edge costs are kept
// far below it so that additive relaxations never overflow.
const Infinity int64 = 10_000_000_000_000_000 // 10^16

// MaxCost is the exclusive upper bound of an edge cost.
const MaxCost int64 = Infinity / 10

// VertexID indexes the vertex arena of a Graph.
type VertexID int

// EdgeID indexes the edge arena of a Graph.
type EdgeID int

// NoVertex marks an absent vertex link (no match, no predecessor).
const NoVertex VertexID = -1

// NoEdge marks an absent edge link.
const NoEdge EdgeID = -1

// Role tells which side of the bipartite graph a vertex belongs to.
type Role uint8

const (
	// Receiver vertices own the outgoing edges of an item's want list.
	Receiver Role = iota
	// Sender vertices own the incoming edges of an item.
	Sender
)

// String implements fmt.Stringer.
func (r Role) String() string {
	if r == Receiver {
		return "RECEIVER"
	}

	return "SENDER"
}

// EdgeStatus classifies an edge relative to the set of all optimal matchings.
type EdgeStatus uint8

const (
	// Unknown edges have not been classified yet.
	Unknown EdgeStatus = iota
	// Required edges appear in every optimal matching.
	Required
	// Optional edges appear in some but not all optimal matchings.
	Optional
	// Forbidden edges appear in no optimal matching.
	Forbidden

	numStatuses
)

// String implements fmt.Stringer.
func (s EdgeStatus) String() string {
	switch s {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Forbidden:
		return "FORBIDDEN"
	default:
		return "UNKNOWN"
	}
}

// StatusHistogram counts edges per EdgeStatus.
type StatusHistogram [numStatuses]int

// Vertex is one side of an item.
//
// The exported scalar fields are solver state: matchers overwrite them on
// every solve and only the Graph's snapshot methods preserve them.
type Vertex struct {
	// Name is the item's display name, shared by both twins.
	Name string
	// User is the owning participant; empty when unknown.
	User string
	// Dummy marks a placeholder item that is never traded to an outsider.
	Dummy bool
	// Role is RECEIVER or SENDER.
	Role Role
	// Twin is the opposite-role vertex of the same item.
	Twin VertexID

	// Match is the opposite-role vertex this vertex is paired with.
	Match VertexID
	// MatchCost is the cost of the edge realizing Match.
	MatchCost int64
	// Price is the matcher's potential.
	Price int64
	// Mark is a traversal timestamp; compare against Graph.NextMark values.
	Mark int
	// Component is the strongly connected component label set by pruning.
	Component int

	// SavedMatch and SavedMatchCost hold the SaveMatches snapshot.
	SavedMatch     VertexID
	SavedMatchCost int64

	edges     []EdgeID
	minInCost int64 // senders only
	dirty     bool  // senders only: minInCost must be recomputed
}

// Edge is a directed receiver → sender arc.
type Edge struct {
	// Receiver is the tail of the edge.
	Receiver VertexID
	// Sender is the head of the edge.
	Sender VertexID
	// Status is the classification assigned by the shrink engine.
	Status EdgeStatus

	cost    int64
	removed bool
}

// Cost returns the current edge cost.
func (e *Edge) Cost() int64 { return e.cost }

// Removed reports whether the edge was pruned from the adjacency lists.
func (e *Edge) Removed() bool { return e.removed }

// edgeKey identifies an edge by its endpoints.
type edgeKey struct {
	r VertexID
	s VertexID
}

// Graph owns all vertices and edges of one trade problem.
type Graph struct {
	vertices []Vertex
	edges    []Edge

	names map[string]VertexID // name → receiver
	pairs map[edgeKey]EdgeID  // live edges only

	// Active vertex arrays. While building they list every vertex in
	// creation order; after Freeze they shrink as orphans are removed.
	receivers []VertexID
	senders   []VertexID
	orphans   []VertexID

	frozen      bool
	fullyShrunk bool
	timestamp   int
}

// NewGraph returns an empty graph in the building phase.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		names: make(map[string]VertexID),
		pairs: make(map[edgeKey]EdgeID),
	}
}
