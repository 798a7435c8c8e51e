// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// types.go — input records, the priority scheme and the build Result.

package builder

import (
	"strings"

	"github.com/katalvlaran/tradecycle/core"
)

// Want is one entry of a want list.
type Want struct {
	// Name is the wanted item. It may carry an "=N" suffix, which is
	// validated and parsed like Explicit.
	Name string
	// Explicit, when positive, is the explicit rank of the want.
	Explicit int64
	// Break marks a ';' separator; Name is ignored.
	Break bool
}

// WantList is the want list of one offered item.
type WantList struct {
	// User owns the item; empty when the list has no username.
	User string
	// Item is the offered item; a DummyPrefix marks a dummy.
	Item  string
	Wants []Want
	// Line is the source line, 0 when unknown.
	Line int
}

// Scheme maps a want's rank to an edge cost.
type Scheme uint8

const (
	// SchemeNone prices every want the same.
	SchemeNone Scheme = iota
	// SchemeLinear prices a want at its rank.
	SchemeLinear
	// SchemeTriangle prices a want at rank(rank+1)/2.
	SchemeTriangle
	// SchemeSquare prices a want at rank².
	SchemeSquare
	// SchemeExplicit prices a want at its rank and allows "name=N".
	SchemeExplicit
)

var schemeNames = [...]string{"NONE", "LINEAR", "TRIANGLE", "SQUARE", "EXPLICIT"}

// String implements fmt.Stringer.
func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "UNKNOWN"
}

// ParseScheme is the inverse of String, case-insensitive.
func ParseScheme(name string) (Scheme, bool) {
	for i, n := range schemeNames {
		if strings.EqualFold(n, name) {
			return Scheme(i), true
		}
	}
	return SchemeNone, false
}

// Cost returns the edge cost of a want with the given rank.
func (s Scheme) Cost(rank int64) int64 {
	switch s {
	case SchemeLinear, SchemeExplicit:
		return rank
	case SchemeTriangle:
		return rank * (rank + 1) / 2
	case SchemeSquare:
		return rank * rank
	default:
		return unitCost
	}
}

// Result is the outcome of Build.
type Result struct {
	// Graph is frozen and ready for the solver.
	Graph *core.Graph
	// Problems are sorted human-readable messages about skipped input.
	Problems []string
	// Unknowns counts the occurrences of every wanted name without a list.
	Unknowns map[string]int
	// MissingOfficial lists, sorted, the official names without a want list.
	MissingOfficial []string
	// Items counts every item in the graph, dummies included.
	Items int
	// DummyItems counts the dummy items.
	DummyItems int
}

// RealItems counts the items that are not dummies.
func (r *Result) RealItems() int { return r.Items - r.DummyItems }
