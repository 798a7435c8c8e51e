// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Input problems are not errors; they are reported in Result.Problems.
//   • Errors are reserved for lists that cannot be turned into a graph at all.
//   • Callers branch with errors.Is(err, ErrX).

package builder

import "github.com/cockroachdb/errors"

// ErrEmptyItem indicates a want list without an item name.
var ErrEmptyItem = errors.New("builder: want list has no item")

// ErrNoItems indicates that no want list survived validation.
var ErrNoItems = errors.New("builder: no items to trade")
