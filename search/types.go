package search

import (
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/logger"
	"github.com/katalvlaran/tradecycle/shrink"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrBrokenCycle indicates a matching that does not decompose into
	// cycles. Always wrapped as an assertion failure.
	ErrBrokenCycle = errors.New("search: matching does not form cycles")
)

// Cycle lists the receivers of one trade loop. Item i gets the item of
// entry i-1 and gives its own item to entry i+1, wrapping around.
type Cycle []core.VertexID

// Improvement records a restart that lowered the sum of squares.
type Improvement struct {
	// Iteration counts from 1; the baseline solve is iteration 1.
	Iteration  int
	SumSquares int64
	// Sizes lists the cycle sizes in descending order.
	Sizes []int
}

// Result is the outcome of Solve. The best matching is also left on the graph.
type Result struct {
	Cycles []Cycle
	// TotalCost sums the match costs of the trading receivers.
	TotalCost int64
	// MatchingCost is the cost of the whole matching, no-trade edges included.
	MatchingCost int64
	SumSquares   int64
	// GroupSizes lists the cycle sizes in descending order.
	GroupSizes []int
	// NonTraders are active, non-dummy receivers matched to their own sender.
	NonTraders []core.VertexID
	// Orphans are the receivers the shrink removed from the active graph.
	Orphans []core.VertexID
	// Iterations is the number of solves actually performed.
	Iterations   int
	Improvements []Improvement
	Elapsed      time.Duration
	Shrink       *shrink.Report
}

// NumTrades counts the items that change hands.
func (r *Result) NumTrades() int {
	n := 0
	for _, c := range r.Cycles {
		n += len(c)
	}
	return n
}

// Options configures Solve.
type Options struct {
	Iterations    int
	Seed          int64
	Rand          *rand.Rand
	ShrinkLevel   int
	ShrinkVerbose bool
	// TimeBudget stops further restarts once exceeded; 0 means none.
	TimeBudget time.Duration
	Logger     logger.Logger
	Progress   func(Improvement)
	// Shrunk sees the graph right after shrinking, before the first solve.
	Shrunk func(*shrink.Report)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns one iteration, default seed, shrink level 0.
func DefaultOptions() Options {
	return Options{
		Iterations: 1,
		Logger:     logger.NewNopLogger(),
	}
}

// WithIterations sets the number of solves (baseline included). Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic("search: WithIterations(n<1)")
	}
	return func(o *Options) { o.Iterations = n }
}

// WithSeed seeds the restart shuffles. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the generator directly; it takes precedence over WithSeed.
// Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("search: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = rng }
}

// WithShrinkLevel sets the shrink level run before the first solve.
// Panics on a negative level.
func WithShrinkLevel(level int) Option {
	if level < 0 {
		panic("search: WithShrinkLevel(level<0)")
	}
	return func(o *Options) { o.ShrinkLevel = level }
}

// WithShrinkVerbose records every shrink matcher run in the report.
func WithShrinkVerbose(v bool) Option {
	return func(o *Options) { o.ShrinkVerbose = v }
}

// WithTimeBudget bounds the restarts. Panics on a negative duration.
func WithTimeBudget(d time.Duration) Option {
	if d < 0 {
		panic("search: WithTimeBudget(d<0)")
	}
	return func(o *Options) { o.TimeBudget = d }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(log logger.Logger) Option {
	if log == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = log }
}

// WithProgress installs a callback invoked for every improvement.
func WithProgress(fn func(Improvement)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithShrunk installs a callback invoked once the shrink is done and before
// the baseline solve.
func WithShrunk(fn func(*shrink.Report)) Option {
	return func(o *Options) { o.Shrunk = fn }
}
