package pheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/pheap"
)

func drain(t *testing.T, h *pheap.Heap[int]) []int64 {
	t.Helper()
	var out []int64
	for !h.IsEmpty() {
		e, err := h.ExtractMin()
		require.NoError(t, err)
		assert.True(t, e.Extracted())
		out = append(out, e.Cost())
	}
	return out
}

func TestExtractMinOrdersByCost(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := pheap.New[int]()
	want := make([]int64, 0, 500)
	for i := 0; i < 500; i++ {
		c := rng.Int63n(1000)
		h.Insert(i, c)
		want = append(want, c)
	}
	require.Equal(t, 500, h.Len())
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	assert.Equal(t, want, drain(t, h))
	assert.Equal(t, 0, h.Len())
}

func TestDecreaseCostReordersHeap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := pheap.New[int]()
	entries := make([]*pheap.Entry[int], 200)
	for i := range entries {
		entries[i] = h.Insert(i, 1000+rng.Int63n(1000))
	}
	// interleave extractions and decreases
	for round := 0; round < 50; round++ {
		e := entries[rng.Intn(len(entries))]
		if !e.Extracted() && e.Cost() > 0 {
			require.NoError(t, h.DecreaseCost(e, rng.Int63n(e.Cost())))
		}
		if round%5 == 0 {
			_, err := h.ExtractMin()
			require.NoError(t, err)
		}
	}

	got := drain(t, h)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
}

func TestDecreaseCostToNewMinimum(t *testing.T) {
	h := pheap.New[string]()
	h.Insert("a", 5)
	b := h.Insert("b", 9)
	h.Insert("c", 7)

	require.NoError(t, h.DecreaseCost(b, 1))
	assert.Equal(t, "b", h.Peek().Value)

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "b", e.Value)
	assert.Equal(t, int64(1), e.Cost())
}

func TestHeapErrors(t *testing.T) {
	h := pheap.New[int]()

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, pheap.ErrEmptyHeap)
	assert.Nil(t, h.Peek())

	assert.ErrorIs(t, h.DecreaseCost(nil, 1), pheap.ErrNilEntry)

	e := h.Insert(1, 10)
	err = h.DecreaseCost(e, 10)
	assert.ErrorIs(t, err, pheap.ErrCostNotDecreased)
	assert.True(t, errors.HasAssertionFailure(err))

	err = h.DecreaseCost(e, 11)
	assert.ErrorIs(t, err, pheap.ErrCostNotDecreased)

	_, err = h.ExtractMin()
	require.NoError(t, err)
	err = h.DecreaseCost(e, 1)
	assert.ErrorIs(t, err, pheap.ErrEntryExtracted)
	assert.True(t, errors.HasAssertionFailure(err))
}

func BenchmarkInsertExtract(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	costs := make([]int64, 1<<12)
	for i := range costs {
		costs[i] = rng.Int63n(1 << 30)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pheap.New[int]()
		for j, c := range costs {
			h.Insert(j, c)
		}
		for !h.IsEmpty() {
			_, _ = h.ExtractMin()
		}
	}
}
