package matching

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNoAugmentingPath indicates that a round found no free sender.
	// Always wrapped as an assertion failure.
	ErrNoAugmentingPath = errors.New("matching: no augmenting path")

	// ErrBrokenPotentials indicates an edge with a negative reduced cost.
	ErrBrokenPotentials = errors.New("matching: negative reduced cost")
)

// RoundHook is called after every round of MinCost, once the matching has
// been augmented and the prices updated. round counts from 1. A non-nil
// error aborts the solve and is returned as is.
type RoundHook func(round int) error

// Options configures MinCost.
type Options struct {
	// Hook, if non-nil, runs after every round.
	Hook RoundHook
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithRoundHook installs a per-round callback. Panics on nil.
func WithRoundHook(h RoundHook) Option {
	if h == nil {
		panic("matching: WithRoundHook(nil)")
	}
	return func(o *Options) { o.Hook = h }
}
