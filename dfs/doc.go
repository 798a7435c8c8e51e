// Package dfs prunes a frozen core.Graph with a strongly connected component
// pass.
//
// What:
//
//   - Components labels every active item with its strongly connected
//     component in the item digraph, where item i → item j whenever the
//     receiver of i has an edge to the sender of j.
//   - PruneComponents removes every edge whose endpoints lie in different
//     components, then removes the orphans this leaves behind.
//
// Why:
//
//	A trade cycle never leaves its component, so a cross-component edge can
//	never be part of any cycle. Dropping such edges shrinks every later
//	matching problem. An item reduced to its no-trade edge cannot trade at all
//	and is set aside as an orphan for reporting.
//
// How:
//
//	Kosaraju's two-pass algorithm. Pass one runs over receivers and records
//	the finish order (as the twin senders). Pass two walks senders along
//	incoming edges, i.e. the transposed digraph, in reverse finish order and
//	assigns a component id to each sender and its twin receiver. Both passes
//	are iterative with an explicit stack, so deep graphs cannot overflow the
//	goroutine stack, and both use Graph.NextMark timestamps instead of
//	clearing visited flags.
//
// Complexity:
//
//	Time O(V + E), memory O(V).
//
// Pruning must be re-run whenever edge deletions can split components, which
// is what the shrink engine does after each classification level.
package dfs
