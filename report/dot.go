package report

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/search"
)

// itemNode is a trading item in the DOT view.
type itemNode struct {
	id   int64
	name string
}

func (n itemNode) ID() int64     { return n.id }
func (n itemNode) DOTID() string { return n.name }

// shipment is an arc giver → receiver labelled with the receiver's cost.
type shipment struct {
	from, to itemNode
	cost     int64
}

func (e shipment) From() graph.Node { return e.from }
func (e shipment) To() graph.Node   { return e.to }
func (e shipment) ReversedEdge() graph.Edge {
	return shipment{from: e.to, to: e.from, cost: e.cost}
}
func (e shipment) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatInt(e.cost, 10)}}
}

// WriteDOT writes the trade cycles of res as a Graphviz digraph: one node
// per trading item and an arc from every item to the one receiving it.
func WriteDOT(w io.Writer, g *core.Graph, res *search.Result) error {
	n := newNamer(g, false)
	dg := simple.NewDirectedGraph()
	node := func(v core.VertexID) itemNode {
		return itemNode{id: int64(v), name: n.show(v)}
	}

	for _, c := range res.Cycles {
		if len(c) < 2 {
			continue
		}
		for i, v := range c {
			next := c[(i+1)%len(c)]
			dg.SetEdge(shipment{from: node(v), to: node(next), cost: g.Vertex(next).MatchCost})
		}
	}

	b, err := dot.Marshal(dg, "trades", "", "  ")
	if err != nil {
		return errors.Wrap(err, "report: marshal dot")
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "report: write dot")
	}
	return nil
}
