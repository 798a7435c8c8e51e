// Package report renders the outcome of a trade run as text: input
// problems, trade loops, an item summary, statistics, the shrunk want lists
// and a Graphviz DOT view of the cycles.
//
// Items are shown as "(user) item", or "item (user)" when sorting by item.
// Dummy items and items without a user show the bare name.
package report
