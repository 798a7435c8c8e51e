package pheap

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("pheap: heap is empty")

	// ErrNilEntry indicates a nil handle was passed to DecreaseCost.
	ErrNilEntry = errors.New("pheap: nil entry")

	// ErrEntryExtracted indicates DecreaseCost on an entry that already left the heap.
	ErrEntryExtracted = errors.New("pheap: entry already extracted")

	// ErrCostNotDecreased indicates DecreaseCost with a cost that is not strictly smaller.
	ErrCostNotDecreased = errors.New("pheap: new cost is not smaller than current cost")
)

// Entry is a node of the heap and the handle returned by Insert.
type Entry[T any] struct {
	// Value is the payload stored with the cost.
	Value T

	cost int64

	child   *Entry[T]
	sibling *Entry[T]
	prev    *Entry[T] // parent if first child, else previous sibling

	used bool
}

// Cost returns the current cost of the entry.
func (e *Entry[T]) Cost() int64 { return e.cost }

// Extracted reports whether the entry has already been returned by ExtractMin.
func (e *Entry[T]) Extracted() bool { return e.used }

// Heap is a pairing heap ordered by ascending cost.
type Heap[T any] struct {
	root *Entry[T]
	size int
}

// New returns an empty heap.
func New[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Len returns the number of entries still in the heap.
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap has no entries.
func (h *Heap[T]) IsEmpty() bool { return h.root == nil }

// Insert adds value with the given cost and returns its handle.
// Complexity: O(1).
func (h *Heap[T]) Insert(value T, cost int64) *Entry[T] {
	e := &Entry[T]{Value: value, cost: cost}
	if h.root == nil {
		h.root = e
	} else {
		h.root = merge(e, h.root)
	}
	h.size++

	return e
}

// Peek returns the minimum entry without removing it, or nil when empty.
func (h *Heap[T]) Peek() *Entry[T] { return h.root }

// ExtractMin removes and returns the entry with the smallest cost.
//
// The root's children are linked pairwise left to right, and the resulting
// trees are then merged right to left into a single tree. Repeating the
// pairing pass until one tree remains gives the same amortized bound.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) ExtractMin() (*Entry[T], error) {
	if h.root == nil {
		return nil, ErrEmptyHeap
	}

	minEntry := h.root
	minEntry.used = true
	h.size--

	list := minEntry.child
	if list != nil {
		for list.sibling != nil {
			var next *Entry[T]
			// 1) link neighbours pairwise, pushing each result onto next
			for list != nil && list.sibling != nil {
				a := list
				b := a.sibling
				list = b.sibling

				a.sibling, b.sibling = nil, nil
				a = merge(a, b)
				a.sibling = next
				next = a
			}
			// 2) an odd tree left over heads the reversed list
			if list == nil {
				list = next
			} else {
				list.sibling = next
			}
		}
		list.prev = nil
	}
	h.root = list

	minEntry.child = nil
	minEntry.sibling = nil
	minEntry.prev = nil

	return minEntry, nil
}

// DecreaseCost lowers the cost of e to cost. The new cost must be strictly
// smaller than the current one and e must still be in the heap.
//
// Complexity: O(1) amortized.
func (h *Heap[T]) DecreaseCost(e *Entry[T], cost int64) error {
	if e == nil {
		return ErrNilEntry
	}
	if e.used {
		return errors.WithAssertionFailure(ErrEntryExtracted)
	}
	if cost >= e.cost {
		return errors.WithAssertionFailure(
			errors.Wrapf(ErrCostNotDecreased, "current=%d requested=%d", e.cost, cost))
	}
	e.cost = cost

	// heap order still holds: nothing to move
	if e == h.root || cost >= e.prev.cost {
		return nil
	}

	// cut e (with its subtree) out of the tree
	if e == e.prev.child {
		e.prev.child = e.sibling
	} else {
		e.prev.sibling = e.sibling
	}
	if e.sibling != nil {
		e.sibling.prev = e.prev
	}
	e.prev = nil
	e.sibling = nil

	h.root = merge(e, h.root)

	return nil
}

// merge links two heap-ordered trees and returns the new root. Both a and b
// must be roots (no siblings, no prev).
func merge[T any](a, b *Entry[T]) *Entry[T] {
	if b.cost < a.cost {
		a, b = b, a
	}

	// b becomes a's first child
	b.prev = a
	b.sibling = a.child
	if b.sibling != nil {
		b.sibling.prev = b
	}
	a.child = b

	return a
}
