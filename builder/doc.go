// SPDX-License-Identifier: MIT

// Package builder turns parsed want lists into a frozen trade graph.
//
// Every want list creates one item (a receiver/sender twin pair in package
// core) plus its no-trade edge, priced at the non-trade cost. Every accepted
// want becomes an edge from the wanting item's receiver to the wanted item's
// sender, priced by the priority scheme from its rank:
//
//   - the first want has rank 1;
//   - every accepted want advances the rank by the small step;
//   - a ';' break advances it by the big step;
//   - an official item without a want list still advances it by the small step;
//   - under SchemeExplicit, "name=N" sets the rank to N directly.
//
// Cost per scheme: None → 1, Linear → rank, Triangle → rank(rank+1)/2,
// Square → rank², Explicit → rank. Every edge out of a dummy item costs the
// non-trade cost, so dummies never bias the optimum.
//
// Input problems (unknown items, repeats, lists of non-official items, and
// so on) never abort the build. They are collected as human-readable
// messages in Result.Problems and the offending list or want is skipped.
//
// Options follow the functional-options pattern; option constructors panic
// on meaningless arguments, Build itself never panics.
package builder
