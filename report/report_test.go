package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradecycle/builder"
	"github.com/katalvlaran/tradecycle/report"
	"github.com/katalvlaran/tradecycle/search"
	"github.com/katalvlaran/tradecycle/wantlist"
)

const wants = `(ann) A : B
(bob) B : C
(cat) C : A
(dan) D : A
`

func solved(t *testing.T) (*builder.Result, *search.Result) {
	t.Helper()
	doc, err := wantlist.Parse(strings.NewReader(wants), wantlist.Options{})
	require.NoError(t, err)
	b, err := builder.Build(doc.Lists, builder.WithScheme(builder.SchemeLinear))
	require.NoError(t, err)
	res, err := search.Solve(b.Graph, search.WithShrinkLevel(1))
	require.NoError(t, err)
	return b, res
}

func TestWrite(t *testing.T) {
	b, res := solved(t)
	var buf bytes.Buffer
	report.Write(&buf, b.Graph, res, b, report.DefaultOptions())
	out := buf.String()

	assert.Contains(t, out, "TRADE LOOPS (3 total trades):\n\n")
	assert.Contains(t, out, "(ANN) A receives (BOB) B\n")
	assert.Contains(t, out, "(CAT) C receives (ANN) A\n")
	assert.Contains(t, out, "ITEM SUMMARY (3 total trades):\n\n")
	assert.Contains(t, out, "(ANN) A receives (BOB) B and sends to (CAT) C\n")
	assert.Contains(t, out, "(DAN) D             does not trade\n")
	assert.Contains(t, out, "3 of 4 items (75.0%)")
	assert.Contains(t, out, "3 (avg 1.00)")
	assert.Contains(t, out, "Sum squares")
	assert.NotContains(t, out, "Elapsed time")
}

func TestWriteSections(t *testing.T) {
	b, res := solved(t)
	var buf bytes.Buffer
	report.Write(&buf, b.Graph, res, b, report.Options{SortByItem: true, ShowSummary: true, ShowElapsedTime: true})
	out := buf.String()

	assert.NotContains(t, out, "TRADE LOOPS")
	assert.NotContains(t, out, "does not trade")
	assert.NotContains(t, out, "Sum squares")
	assert.Contains(t, out, "A (ANN) receives B (BOB) and sends to C (CAT)\n")
	assert.Contains(t, out, "Num trades")
	assert.Contains(t, out, "Elapsed time")
}

func TestProblemsAndMissing(t *testing.T) {
	b := &builder.Result{
		Problems:        []string{"Item A appears in its own want list."},
		MissingOfficial: []string{"ZED"},
	}
	var buf bytes.Buffer
	report.Missing(&buf, b)
	report.Problems(&buf, b)
	assert.Equal(t,
		"**** Missing want list for official name ZED\n\n"+
			"ERRORS:\n**** Item A appears in its own want list.\n\n",
		buf.String())

	buf.Reset()
	report.Problems(&buf, &builder.Result{})
	report.Missing(&buf, &builder.Result{})
	assert.Empty(t, buf.String())
}

func TestWriteWants(t *testing.T) {
	b, _ := solved(t)
	var buf bytes.Buffer
	report.WriteWants(&buf, b.Graph, report.WantsOptions{
		Scheme:       builder.SchemeLinear,
		NonTradeCost: 500,
	})
	assert.Equal(t, "#! NONTRADE-COST=500\n#! EXPLICIT-PRIORITIES\n"+
		"(ANN) A: B=1\n(BOB) B: C=1\n(CAT) C: A=1\n", buf.String())
}

func TestWriteStages(t *testing.T) {
	_, res := solved(t)
	var buf bytes.Buffer
	report.WriteStages(&buf, res.Shrink)
	out := buf.String()
	assert.Contains(t, out, "Original")
	assert.Contains(t, out, "Shrink 1 (SCC)")
	assert.Contains(t, out, "REMOVED")

	buf.Reset()
	report.WriteStages(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteDOT(t *testing.T) {
	b, res := solved(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteDOT(&buf, b.Graph, res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "strict digraph trades {"))
	assert.Equal(t, 3, strings.Count(out, "->"))
	assert.Contains(t, out, `"(ANN) A" -> "(CAT) C"`)
	assert.Contains(t, out, "label=1")
	assert.NotContains(t, out, "(DAN) D")
}
