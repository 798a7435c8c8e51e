package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/matching"
	"github.com/katalvlaran/tradecycle/shrink"
)

// Solve shrinks g, finds an optimal trade and keeps the restart with the
// smallest sum of squared cycle sizes. The winning matching is left on g.
//
// Steps:
//  1. Shrink at the configured level.
//  2. Baseline: solve, elide dummies, extract cycles.
//  3. Restarts: shuffle, re-solve, keep strictly smaller sums of squares.
//  4. Restore the best matching and summarize.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, core.ErrNotFrozen
	}
	rng := cfg.Rand
	if rng == nil {
		rng = newRand(cfg.Seed)
	}
	start := time.Now()
	log := cfg.Logger

	// 1) Shrink
	rep, err := shrink.Shrink(g, cfg.ShrinkLevel,
		shrink.WithLogger(log), shrink.WithVerbose(cfg.ShrinkVerbose))
	if err != nil {
		return nil, err
	}
	if cfg.Shrunk != nil {
		cfg.Shrunk(rep)
	}

	// 2) Baseline
	best, err := findCycles(g)
	if err != nil {
		return nil, err
	}
	res := &Result{Shrink: rep, Iterations: 1}
	bestSquares := SumOfSquares(best)
	res.Improvements = append(res.Improvements, Improvement{
		Iteration: 1, SumSquares: bestSquares, Sizes: Sizes(best),
	})

	// 3) Restarts
	if cfg.Iterations > 1 {
		g.SaveMatches()
		for i := 2; i <= cfg.Iterations; i++ {
			if cfg.TimeBudget > 0 && time.Since(start) > cfg.TimeBudget {
				log.Warningf("time budget %v exhausted after %d iterations", cfg.TimeBudget, res.Iterations)
				break
			}
			g.Shuffle(rng)
			cycles, err := findCycles(g)
			if err != nil {
				return nil, err
			}
			res.Iterations++

			squares := SumOfSquares(cycles)
			if squares >= bestSquares {
				continue
			}
			best, bestSquares = cycles, squares
			g.SaveMatches()

			imp := Improvement{Iteration: i, SumSquares: squares, Sizes: Sizes(cycles)}
			res.Improvements = append(res.Improvements, imp)
			log.Infof("[ %d : %s ]", squares, joinSizes(imp.Sizes))
			if cfg.Progress != nil {
				cfg.Progress(imp)
			}
		}
		log.Noticef("Completed %d iterations.", res.Iterations)
		g.RestoreMatches()
	}

	// 4) Summary
	res.Cycles = best
	res.SumSquares = bestSquares
	res.GroupSizes = Sizes(best)
	res.MatchingCost = matching.TotalCost(g)
	for _, c := range best {
		for _, r := range c {
			res.TotalCost += g.Vertex(r).MatchCost
		}
	}
	res.Orphans = append(res.Orphans, g.Orphans()...)
	for _, r := range g.Receivers() {
		v := g.Vertex(r)
		if v.Match == v.Twin && !v.Dummy {
			res.NonTraders = append(res.NonTraders, r)
		}
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// findCycles runs one solve of the current graph order.
func findCycles(g *core.Graph) ([]Cycle, error) {
	if _, err := matching.FindBestMatches(g); err != nil {
		return nil, err
	}
	ElideDummies(g)

	return ExtractCycles(g)
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, " ")
}
