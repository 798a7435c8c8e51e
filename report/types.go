package report

import (
	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/core"
)

// Options selects the sections written by Write.
type Options struct {
	ShowLoops       bool
	ShowSummary     bool
	ShowNonTrades   bool
	ShowStats       bool
	ShowElapsedTime bool
	SortByItem      bool
}

// DefaultOptions shows every section except the elapsed time.
func DefaultOptions() Options {
	return Options{
		ShowLoops:     true,
		ShowSummary:   true,
		ShowNonTrades: true,
		ShowStats:     true,
	}
}

// WantsOptions controls WriteWants.
type WantsOptions struct {
	Scheme       builder.Scheme
	NonTradeCost int64
	AllowDummies bool
}

// namer formats item names for one report.
type namer struct {
	g          *core.Graph
	sortByItem bool
	width      int
}

func newNamer(g *core.Graph, sortByItem bool) *namer {
	n := &namer{g: g, sortByItem: sortByItem, width: 1}
	for id := 0; id < g.NumVertices(); id += 2 {
		v := g.Vertex(core.VertexID(id))
		if !v.Dummy {
			n.width = max(n.width, len(n.show(core.VertexID(id))))
		}
	}
	return n
}

// show returns the display name of the item of v (either twin).
func (n *namer) show(v core.VertexID) string {
	vx := n.g.Vertex(v)
	switch {
	case vx.User == "" || vx.Dummy:
		return vx.Name
	case n.sortByItem:
		return vx.Name + " (" + vx.User + ")"
	default:
		return "(" + vx.User + ") " + vx.Name
	}
}

// pad left-aligns the display name of v to the widest item.
func (n *namer) pad(v core.VertexID) string {
	s := n.show(v)
	for len(s) < n.width {
		s += " "
	}
	return s
}
