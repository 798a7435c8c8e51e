// Package flow finds a perfect matching of a trade graph by unit-capacity
// augmenting paths (Ford–Fulkerson on the bipartite receiver/sender graph),
// ignoring edge costs.
//
// # When it is valid
//
// Once the shrink engine has completed level 2, every surviving edge belongs
// to some minimum-cost perfect matching, and all such matchings have the same
// cost. Any perfect matching of the shrunk graph is then optimal, so the
// weighted matcher can be replaced by this much cheaper search. On a graph
// that is not fully shrunk the result is feasible but not necessarily
// optimal; package matching only calls it after a completed level-2 shrink.
//
// # Algorithm
//
// For every receiver in visiting order, an iterative depth-first search
// looks for an unmatched sender, stepping from a matched sender to the
// receiver it is matched with. Senders are marked with a per-search
// timestamp so none is explored twice. The path found is flipped in one
// pass over explicit stacks; there is no recursion.
//
// Complexity:
//
//	Time  O(V · E).
//	Space O(V) for the stacks.
//
// Errors:
//
//   - ErrNilGraph if the graph is nil.
//   - core.ErrNotFrozen if the graph is still being built.
//   - ErrNoPerfectMatching if some receiver cannot be matched.
package flow
