// Package search turns an optimal matching into trade cycles and improves
// the cycle structure with randomized restarts.
//
// A matching pairs every item's receiver with the sender of the item it
// gets. Following sender → receiver of the next owner splits the items into
// disjoint cycles; self-matched items do not trade. Dummy items are spliced
// out first so that a cycle never passes an item through a placeholder.
//
// Many matchings share the optimal cost. Solve re-solves after shuffling the
// visiting order of receivers and their edges, and keeps the first matching
// with the strictly smallest sum of squared cycle sizes. Smaller cycles are
// easier to ship and less fragile when a participant drops out.
//
// Determinism: with the same seed, iteration count and input, Solve returns
// the same cycles. A seed of 0 selects the default seed.
//
// Errors: validation sentinels of this package, plus whatever the shrink
// engine and the matcher return. Assertion failures abort the solve.
package search
