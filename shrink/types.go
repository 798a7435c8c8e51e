package shrink

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/logger"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("shrink: graph is nil")

	// ErrBadLevel is returned for a negative shrink level.
	ErrBadLevel = errors.New("shrink: level must be non-negative")

	// ErrCostOverflow is returned when cost scaling would exceed core.MaxCost.
	ErrCostOverflow = errors.New("shrink: scaled edge cost overflows")
)

// MaxLevel is the deepest shrink level.
const MaxLevel = 2

// Stage is a snapshot of the graph size after one step of the shrink.
type Stage struct {
	Name      string
	Receivers int
	Edges     int
	Histogram core.StatusHistogram
	// Elapsed is measured from the start of the Shrink call.
	Elapsed time.Duration
}

// Report summarizes one Shrink call.
type Report struct {
	// Level is the effective level (input clamped to MaxLevel).
	Level int
	// Stages lists the main steps; with Verbose also every matcher run.
	Stages []Stage
	// RemovedEdges counts edges deleted by pruning and classification.
	RemovedEdges int
	// Orphans counts items that lost every trading edge.
	Orphans int
	// FullyShrunk reports whether level 2 completed.
	FullyShrunk bool
	Elapsed     time.Duration
}

// Options configures Shrink.
type Options struct {
	// Verbose records a Stage for every matcher run, not only the main steps.
	Verbose bool
	// Logger receives every recorded Stage at DEBUG level.
	Logger logger.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns non-verbose options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logger.NewNopLogger()}
}

// WithVerbose toggles per-run stage records.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(log logger.Logger) Option {
	if log == nil {
		panic("shrink: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = log }
}
