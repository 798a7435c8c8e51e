// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • scheme       = SchemeNone
//   • smallStep    = DefaultSmallStep
//   • bigStep      = DefaultBigStep
//   • nonTradeCost = DefaultNonTradeCost
//   • dummies not allowed, repeats reported, no official names

package builder

// builderConfig aggregates all knobs of Build.
type builderConfig struct {
	scheme       Scheme
	smallStep    int64
	bigStep      int64
	nonTradeCost int64
	allowDummies bool
	showRepeats  bool
	official     map[string]struct{} // nil: no official names
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scheme:       SchemeNone,
		smallStep:    DefaultSmallStep,
		bigStep:      DefaultBigStep,
		nonTradeCost: DefaultNonTradeCost,
		showRepeats:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *builderConfig) isOfficial(name string) bool {
	_, ok := c.official[name]
	return ok
}
