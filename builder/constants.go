// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// constants.go — defaults of the cost model.

package builder

const (
	// DefaultSmallStep is the rank increment between consecutive wants.
	DefaultSmallStep int64 = 1
	// DefaultBigStep is the extra rank increment of a ';' break.
	DefaultBigStep int64 = 9
	// DefaultNonTradeCost prices the no-trade edge of every item and every
	// edge out of a dummy item.
	DefaultNonTradeCost int64 = 1_000_000_000

	// DummyPrefix marks a dummy item name.
	DummyPrefix = "%"
	// unitCost is the flat cost of SchemeNone.
	unitCost int64 = 1
)
