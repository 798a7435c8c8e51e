// Package matching computes a minimum-cost perfect matching of a trade graph.
//
// What:
//
//	Every item must be matched: its receiver to exactly one sender, each
//	sender to exactly one receiver. The no-trade edge of every item makes a
//	perfect matching always exist; the matcher finds one of minimum total
//	cost.
//
// How:
//
//	Successive shortest augmenting paths with vertex potentials (prices).
//	Receivers start at price 0 and senders at their cheapest incoming edge
//	cost, so every reduced cost starts non-negative. Each of the V rounds
//	runs one reduced-cost Dijkstra (package dijkstra), flips the matching
//	along the path to the closest free sender, then raises every price by
//	min(dist, sinkDist). Distances are capped at the sink's distance so
//	unreached vertices move by a finite amount, which keeps prices bounded
//	and reduced costs non-negative.
//
// When the shrink engine has marked the graph fully shrunk, FindBestMatches
// switches to the unweighted perfect matching of package flow, which is
// optimal there.
//
// Complexity:
//
//	MinCost: O(V · (E + V log V)) time, O(V) extra space.
//
// Errors:
//
//	Missing augmenting paths and negative reduced costs are assertion
//	failures (errors.HasAssertionFailure reports true). They abort the solve.
package matching
