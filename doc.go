// Package tradecycle finds the trades of a math trade: a set of items, each
// owned by one participant, each with a ranked list of items its owner would
// accept in exchange.
//
// What it computes
//
//	The largest set of items that can change hands at once, preferring
//	higher-ranked wants, split into trade loops (A gets B's item, B gets
//	C's, C gets A's). Among equally good trades it prefers many small loops
//	over a few large ones.
//
// How
//
//	Items become a bipartite graph of receivers and senders (core). Edges
//	that cannot be in any cycle are pruned (dfs), and optionally every edge
//	that is in no optimal trade (shrink). A minimum-cost perfect matching
//	(matching, over dijkstra and pheap, or flow on a fully shrunk graph)
//	picks the trade; search turns it into loops and retries under random
//	visiting orders to shrink the loops.
//
// Packages:
//
//	pheap/ - pairing heap with decrease-key
//	core/ - item graph: twin vertices, edges, matching state
//	dfs/ - strongly connected components and orphan removal
//	dijkstra/ - one reduced-cost shortest path round
//	matching/ - min-cost perfect matching by successive shortest paths
//	flow/ - unweighted perfect matching for fully shrunk graphs
//	shrink/ - REQUIRED / OPTIONAL / FORBIDDEN edge classification
//	search/ - cycle extraction and randomized restarts
//	builder/ - want lists → graph, priority schemes, dummy items
//	wantlist/ - the text input format
//	report/ - text, table and DOT output
//	config/ - YAML, environment and "#!" directive settings
//	logger/ - leveled logging
//	cmd/trademax - the command line tool
//
// Quick ASCII example:
//
//	(ann) BOOK  : GAME
//	(bob) GAME  : PUZZLE
//	(cat) PUZZLE: BOOK
//
//	BOOK ─▶ CAT, PUZZLE ─▶ BOB, GAME ─▶ ANN: one loop of three.
package tradecycle
