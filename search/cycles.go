package search

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
)

// ElideDummies rewires the matching so that no active receiver gets a dummy
// item: a receiver matched to a dummy's sender takes over whatever the dummy
// received, and the dummy becomes self-matched. Match costs are left as is,
// so the receiver keeps the cost of its edge to the dummy and the sum over
// all receivers is unchanged.
func ElideDummies(g *core.Graph) {
	for _, v := range g.Receivers() {
		rv := g.Vertex(v)
		for {
			dummySender := rv.Match
			ds := g.Vertex(dummySender)
			if !ds.Dummy || dummySender == rv.Twin {
				break
			}
			dummyReceiver := ds.Twin
			next := g.Vertex(dummyReceiver).Match

			rv.Match = next
			g.Vertex(next).Match = v
			ds.Match = dummyReceiver
			g.Vertex(dummyReceiver).Match = dummySender
		}
	}
}

// ExtractCycles decomposes the current matching into trade cycles, visiting
// receivers in their current order. Self-matched receivers are skipped.
func ExtractCycles(g *core.Graph) ([]Cycle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	mark := g.NextMark()
	var cycles []Cycle

	for _, start := range g.Receivers() {
		sv := g.Vertex(start)
		if sv.Mark == mark || sv.Match == sv.Twin {
			continue
		}
		var cycle Cycle
		for v := start; g.Vertex(v).Mark != mark; {
			vx := g.Vertex(v)
			vx.Mark = mark
			cycle = append(cycle, v)
			next := g.Vertex(vx.Twin).Match
			if next == core.NoVertex {
				return nil, errors.WithAssertionFailure(errors.Wrapf(ErrBrokenCycle,
					"item %q is not given to anyone", vx.Name))
			}
			v = next
		}
		if cycle[0] != g.Vertex(g.Vertex(cycle[len(cycle)-1]).Twin).Match {
			return nil, errors.WithAssertionFailure(errors.Wrapf(ErrBrokenCycle,
				"walk from %q did not close", sv.Name))
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

// SumOfSquares returns Σ len(c)² over cycles.
func SumOfSquares(cycles []Cycle) int64 {
	var sum int64
	for _, c := range cycles {
		sum += int64(len(c)) * int64(len(c))
	}
	return sum
}

// Sizes returns the cycle sizes in descending order.
func Sizes(cycles []Cycle) []int {
	sizes := make([]int, len(cycles))
	for i, c := range cycles {
		sizes[i] = len(c)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}
