// Package dijkstra runs one round of Dijkstra's algorithm over the residual
// graph of a partial bipartite matching, using reduced costs.
//
// The residual graph of a core.Graph with a partial matching has:
//
//   - an arc receiver → sender for every edge that is not the receiver's match,
//     with reduced cost  r.Price + cost − s.Price;
//   - an arc sender → receiver for every matched pair, with reduced cost
//     s.Price − matchCost − r.Price.
//
// The matcher keeps vertex prices (potentials) such that every reduced cost
// is non-negative, which is what makes Dijkstra applicable. A negative
// reduced cost therefore signals a bug and is reported as an assertion
// failure rather than silently tolerated.
//
// Sources are all unmatched receivers (distance 0). Every other vertex starts
// at core.Infinity. The search stops as soon as it extracts a vertex at
// core.Infinity, since everything left is unreachable. The closest unmatched
// sender becomes the Sink of the round: the end of the shortest augmenting
// path.
//
// Priority queue: a pairing heap with true decrease-key (package pheap). A
// fresh heap is built for every call; heap handles never outlive a round.
//
// Complexity:
//
//	Time  O(E + V log V) amortized.
//	Space O(V) plus the caller-owned Result.
package dijkstra
