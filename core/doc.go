// Package core provides the bipartite trade graph used by every solver in
// tradecycle.
//
// Every item is represented by two vertices, a RECEIVER and a SENDER, created
// together and linked as twins. A directed Edge always runs from a receiver
// to a sender and carries a non-negative integer cost: "receiver r would
// accept the item held by sender s at this cost". Every receiver is expected
// to own one no-trade edge to its own twin, which makes a perfect matching
// always exist.
//
// Storage:
//
//   - Vertices and edges live in flat arenas and are addressed by VertexID and
//     EdgeID. Twin, Match and predecessor links are indices, never pointers,
//     so matchers can overwrite them freely.
//   - Each vertex keeps one adjacency slice of EdgeIDs: outgoing edges for a
//     receiver, incoming edges for a sender.
//
// Lifecycle:
//
//	NewGraph → AddVertex / AddEdge (building) → Freeze → solvers (frozen)
//
// Building:
//
//	AddVertex(name, user, dummy) (VertexID, error)   // receiver id; twin = sender
//	AddEdge(receiver, sender, cost) (EdgeID, error)
//	GetEdge(receiver, sender) (EdgeID, bool)
//	VertexByName(name) (VertexID, bool)
//	Freeze() error
//
// Frozen (used by dfs, dijkstra, flow, matching, shrink, search):
//
//	Receivers(), Senders(), Orphans()      // active vertex arrays
//	Adjacent(v)                            // edge list of v
//	SetCost / MinInCost                    // cost edits with lazy min-in-cost cache
//	FilterEdges / RemoveOrphans            // pruning
//	NextMark, Shuffle                      // traversal support
//	ClearMatches, SaveMatches, RestoreMatches
//	Link, CheckMatching
//
// Errors:
//
//	ErrGraphFrozen      - mutation of a frozen graph, or a second Freeze.
//	ErrNotFrozen        - solver entry point called on a graph still being built.
//	ErrEmptyName        - AddVertex with an empty name.
//	ErrDuplicateVertex  - AddVertex with a name already in use.
//	ErrVertexNotFound   - a VertexID outside the arena.
//	ErrWrongRole        - AddEdge endpoints are not (receiver, sender).
//	ErrDuplicateEdge    - a second edge between the same receiver and sender.
//	ErrBadCost          - negative cost or a cost ≥ MaxCost.
//	ErrInvalidMatching  - CheckMatching found an unmatched or unrealized pair.
//
// A Graph is not safe for concurrent use: the solvers mutate per-vertex
// scalar state (match, price, mark) in place.
package core
