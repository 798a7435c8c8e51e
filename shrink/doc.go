// Package shrink removes edges that cannot appear in any optimal trade
// before the randomized search starts, so that every restart solves a
// smaller problem.
//
// Levels:
//
//	0  Component pruning only (package dfs).
//	1  Level 0, then every edge used by all optimal matchings is classified
//	   REQUIRED and the other edges of its endpoints are deleted.
//	2  Level 1, then every edge used by some optimal matching is classified
//	   OPTIONAL and everything left UNKNOWN is FORBIDDEN and deleted. The
//	   graph is then marked fully shrunk.
//
// Levels above 2 behave like 2.
//
// How the classification works: costs are scaled by V+1 so that adding 1 to
// any set of at most V edges never changes which matchings are optimal; it
// only breaks ties among them. Bumping the edges already seen makes the next
// solve prefer edges not seen yet. Costs are scaled back down on exit, which
// also drops the bumps.
//
// Every run starts by resetting statuses and the fully-shrunk flag, so a
// second Shrink on the same graph deletes nothing more.
//
// Errors:
//
//   - ErrBadLevel for a negative level.
//   - ErrCostOverflow when scaled costs would reach core.MaxCost; the graph
//     is left unscaled.
//   - Assertion failures from the matcher, and when the REQUIRED/OPTIONAL
//     classification contradicts itself.
package shrink
