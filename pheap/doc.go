// Package pheap implements a pairing heap: a min-priority queue of values
// keyed by int64 cost, with O(1) insert, O(1) amortized decrease-key and
// O(log n) amortized extract-min.
//
// The heap is a heap-ordered multiway tree stored in child/sibling form.
// Every Entry remembers its "prev" link, which is its parent when it is the
// first child and its left sibling otherwise. This lets DecreaseCost cut a
// subtree out of the tree in O(1) and merge it back with the root, instead of
// pushing duplicates and skipping stale entries later (the lazy strategy used
// by container/heap based queues).
//
// Operations:
//
//	Insert(value, cost)      O(1)       returns a handle for DecreaseCost
//	ExtractMin()             O(log n)†  two-pass pairing of the root's children
//	DecreaseCost(e, cost)    O(1)†      cut + merge with root
//	Len(), IsEmpty()         O(1)
//
//	† amortized.
//
// Ordering among entries of equal cost is structural and callers must not
// rely on it.
//
// Errors:
//
//	ErrEmptyHeap        - ExtractMin on an empty heap.
//	ErrNilEntry         - DecreaseCost with a nil handle.
//	ErrEntryExtracted   - DecreaseCost on an entry already returned by ExtractMin.
//	ErrCostNotDecreased - DecreaseCost with a cost that is not strictly smaller.
//
// The last two indicate a bug in the caller and are marked as assertion
// failures (see errors.HasAssertionFailure in github.com/cockroachdb/errors).
//
// A Heap is not safe for concurrent use. Handles must not outlive the heap
// that produced them.
package pheap
