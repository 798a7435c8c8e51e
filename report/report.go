package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/search"
	"github.com/katalvlaran/tradecycle/shrink"
)

// Missing writes the official names nobody sent a want list for.
func Missing(w io.Writer, b *builder.Result) {
	if len(b.MissingOfficial) == 0 {
		return
	}
	for _, name := range b.MissingOfficial {
		fmt.Fprintf(w, "**** Missing want list for official name %s\n", name)
	}
	fmt.Fprintln(w)
}

// Problems writes the sorted input problems of the build.
func Problems(w io.Writer, b *builder.Result) {
	if len(b.Problems) == 0 {
		return
	}
	fmt.Fprintln(w, "ERRORS:")
	for _, p := range b.Problems {
		fmt.Fprintf(w, "**** %s\n", p)
	}
	fmt.Fprintln(w)
}

// Write renders the trade loops, the item summary and the statistics of res.
func Write(w io.Writer, g *core.Graph, res *search.Result, b *builder.Result, opts Options) {
	n := newNamer(g, opts.SortByItem)
	trades := res.NumTrades()

	var loops, summary []string
	for _, c := range res.Cycles {
		for _, v := range c {
			vx := g.Vertex(v)
			from := g.Vertex(vx.Match).Twin
			to := g.Vertex(vx.Twin).Match
			loops = append(loops, n.pad(v)+" receives "+n.show(from))
			summary = append(summary, n.pad(v)+" receives "+n.pad(from)+" and sends to "+n.show(to))
		}
		loops = append(loops, "")
	}
	if opts.ShowNonTrades {
		for _, v := range res.NonTraders {
			summary = append(summary, n.pad(v)+"             does not trade")
		}
		for _, v := range res.Orphans {
			if !g.Vertex(v).Dummy {
				summary = append(summary, n.pad(v)+"             does not trade")
			}
		}
	}

	if opts.ShowLoops {
		fmt.Fprintf(w, "TRADE LOOPS (%d total trades):\n\n", trades)
		for _, l := range loops {
			fmt.Fprintln(w, l)
		}
	}
	if opts.ShowSummary {
		slices.Sort(summary)
		fmt.Fprintf(w, "ITEM SUMMARY (%d total trades):\n\n", trades)
		for _, s := range summary {
			fmt.Fprintln(w, s)
		}
		fmt.Fprintln(w)
	}

	writeStats(w, res, b, opts)
}

func writeStats(w io.Writer, res *search.Result, b *builder.Result, opts Options) {
	trades := res.NumTrades()
	items := b.RealItems()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	tradesCell := fmt.Sprintf("%d of %d items", trades, items)
	if items > 0 {
		tradesCell += fmt.Sprintf(" (%.1f%%)", 100*float64(trades)/float64(items))
	}
	t.AppendRow(table.Row{"Num trades", tradesCell})

	if opts.ShowStats {
		costCell := fmt.Sprint(res.TotalCost)
		if trades > 0 {
			costCell += fmt.Sprintf(" (avg %.2f)", float64(res.TotalCost)/float64(trades))
		}
		t.AppendRows([]table.Row{
			{"Total cost", costCell},
			{"Num groups", len(res.Cycles)},
			{"Group sizes", joinInts(res.GroupSizes)},
			{"Sum squares", res.SumSquares},
		})
	}
	if opts.ShowElapsedTime {
		t.AppendRow(table.Row{"Elapsed time", fmt.Sprintf("%dms", res.Elapsed.Milliseconds())})
	}
	t.Render()
}

// WriteStages renders the shrink report as a table.
func WriteStages(w io.Writer, rep *shrink.Report) {
	if rep == nil {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Stage", "V", "E", "Required", "Optional", "Unknown", "Time"})
	for _, st := range rep.Stages {
		t.AppendRow(table.Row{
			st.Name, st.Receivers, st.Edges,
			st.Histogram[core.Required], st.Histogram[core.Optional], st.Histogram[core.Unknown],
			st.Elapsed.Round(1000).String(),
		})
	}
	t.AppendFooter(table.Row{"Removed", "", rep.RemovedEdges, "", "", "", rep.Elapsed.Round(1000).String()})
	t.Render()
}

// WriteWants prints the want lists of the active items as they stand after
// shrinking, in the input format. The no-trade edge is implied.
func WriteWants(w io.Writer, g *core.Graph, opts WantsOptions) {
	if opts.NonTradeCost != 0 && opts.NonTradeCost != builder.DefaultNonTradeCost {
		fmt.Fprintf(w, "#! NONTRADE-COST=%d\n", opts.NonTradeCost)
	}
	if opts.Scheme != builder.SchemeNone {
		fmt.Fprintln(w, "#! EXPLICIT-PRIORITIES")
	}
	if opts.AllowDummies {
		fmt.Fprintln(w, "#! ALLOW-DUMMIES")
	}
	for _, r := range g.Receivers() {
		v := g.Vertex(r)
		var sb strings.Builder
		if v.User != "" {
			sb.WriteString("(" + v.User + ") ")
		}
		sb.WriteString(baseName(v.Name) + ":")
		for _, eid := range g.Adjacent(r) {
			e := g.Edge(eid)
			if e.Sender == v.Twin {
				continue
			}
			sb.WriteString(" " + baseName(g.Vertex(e.Sender).Name))
			if opts.Scheme != builder.SchemeNone {
				fmt.Fprintf(&sb, "=%d", e.Cost())
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

// baseName drops the owner qualification of a dummy item.
func baseName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, x := range a {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
