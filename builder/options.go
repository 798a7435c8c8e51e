// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Build itself never panics.
//   • Later options override earlier ones.

package builder

import "github.com/katalvlaran/tradecycle/core"

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithScheme selects the priority scheme.
func WithScheme(s Scheme) BuilderOption {
	if s > SchemeExplicit {
		panic("builder: WithScheme(unknown scheme)")
	}
	return func(c *builderConfig) { c.scheme = s }
}

// WithSmallStep sets the rank increment between wants. Panics if n < 0.
func WithSmallStep(n int64) BuilderOption {
	if n < 0 {
		panic("builder: WithSmallStep(n<0)")
	}
	return func(c *builderConfig) { c.smallStep = n }
}

// WithBigStep sets the rank increment of a ';' break. Panics if n < 0.
func WithBigStep(n int64) BuilderOption {
	if n < 0 {
		panic("builder: WithBigStep(n<0)")
	}
	return func(c *builderConfig) { c.bigStep = n }
}

// WithNonTradeCost sets the cost of not trading. Panics unless
// 0 < cost < core.MaxCost.
func WithNonTradeCost(cost int64) BuilderOption {
	if cost <= 0 || cost >= core.MaxCost {
		panic("builder: WithNonTradeCost(cost out of range)")
	}
	return func(c *builderConfig) { c.nonTradeCost = cost }
}

// WithDummies allows dummy items.
func WithDummies(allow bool) BuilderOption {
	return func(c *builderConfig) { c.allowDummies = allow }
}

// WithRepeats toggles the problem reported for a want repeated in one list.
func WithRepeats(report bool) BuilderOption {
	return func(c *builderConfig) { c.showRepeats = report }
}

// WithOfficialNames restricts want lists to the given item names. A nil
// slice disables the check; an empty one accepts only dummies.
func WithOfficialNames(names []string) BuilderOption {
	return func(c *builderConfig) {
		if names == nil {
			c.official = nil
			return
		}
		c.official = make(map[string]struct{}, len(names))
		for _, n := range names {
			c.official[n] = struct{}{}
		}
	}
}
