package shrink

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
	"github.com/katalvlaran/tradecycle/dfs"
	"github.com/katalvlaran/tradecycle/matching"
)

// Shrink classifies and deletes edges of g up to the given level and returns
// a report of every step. On error the graph may be partially shrunk but is
// never left with scaled costs.
func Shrink(g *core.Graph, level int, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, core.ErrNotFrozen
	}
	if level < 0 {
		return nil, errors.Wrapf(ErrBadLevel, "level=%d", level)
	}

	e := &engine{
		g:     g,
		cfg:   cfg,
		rep:   &Report{Level: min(level, MaxLevel)},
		start: time.Now(),
	}
	if err := e.run(); err != nil {
		return nil, err
	}
	e.rep.Elapsed = time.Since(e.start)

	return e.rep, nil
}

// engine carries the state of one Shrink call.
type engine struct {
	g     *core.Graph
	cfg   Options
	rep   *Report
	start time.Time

	factor int64
	scaled []core.EdgeID // edges multiplied by factor
}

func (e *engine) run() error {
	e.g.ResetStatuses()
	e.g.SetFullyShrunk(false)
	e.stage("Original")

	// 0) Components
	if err := e.prune(); err != nil {
		return err
	}
	e.stage("Shrink 0 (SCC)")
	if e.rep.Level == 0 {
		return nil
	}

	// 1) Required edges
	if err := e.scaleUp(); err != nil {
		return err
	}
	err := e.shrinkLevels()
	e.scaleDown()

	return err
}

func (e *engine) shrinkLevels() error {
	if err := e.findRequired(); err != nil {
		return err
	}
	if err := e.prune(); err != nil {
		return err
	}
	e.stage("Shrink 1 (SCC)")
	if e.rep.Level < 2 {
		return nil
	}

	// 2) Optional edges; the rest is forbidden
	if err := e.findForbidden(); err != nil {
		return err
	}
	if err := e.prune(); err != nil {
		return err
	}
	e.stage("Shrink 2 (SCC)")
	e.g.SetFullyShrunk(true)
	e.rep.FullyShrunk = true

	return nil
}

func (e *engine) prune() error {
	st, err := dfs.PruneComponents(e.g)
	if err != nil {
		return err
	}
	e.rep.RemovedEdges += st.RemovedEdges
	e.rep.Orphans += st.Orphans

	return nil
}

// findRequired marks the edges used by every optimal matching REQUIRED and
// deletes all other edges of their endpoints.
//
// Steps:
//  1. Solve once; mark every matched edge REQUIRED and bump it.
//  2. Re-solve until no new edge shows up; REQUIRED edges left unused are
//     demoted to OPTIONAL and unbumped.
//  3. Mark the other edges of REQUIRED endpoints FORBIDDEN and delete them.
func (e *engine) findRequired() error {
	receivers := e.g.Receivers()

	// 1) Initial solution
	if err := e.solve(); err != nil {
		return err
	}
	required := make([]core.EdgeID, 0, len(receivers))
	var total int64
	for _, r := range receivers {
		eid, err := e.matchedEdge(r)
		if err != nil {
			return err
		}
		ed := e.g.Edge(eid)
		total += ed.Cost()
		ed.Status = core.Required
		if err = e.bump(eid, 1); err != nil {
			return err
		}
		required = append(required, eid)
	}
	e.run1(1)

	// 2) Demote what later solutions can avoid
	used := make([]bool, e.g.NumEdges())
	for run := 2; len(required) > 0; run++ {
		if err := e.solve(); err != nil {
			return err
		}
		clear(used)
		var current int64
		for _, r := range receivers {
			eid, err := e.matchedEdge(r)
			if err != nil {
				return err
			}
			ed := e.g.Edge(eid)
			used[eid] = true
			current += ed.Cost()
			if ed.Status != core.Required {
				ed.Status = core.Optional
			}
		}
		if current == total+int64(len(required)) {
			e.run1(run)
			break
		}

		n := 0
		for _, eid := range required {
			if used[eid] {
				required[n] = eid
				n++
				continue
			}
			e.g.Edge(eid).Status = core.Optional
			if err := e.bump(eid, -1); err != nil {
				return err
			}
		}
		required = required[:n]
		e.run1(run)
	}

	// 3) Delete the competitors of REQUIRED edges
	for _, eid := range required {
		ed := e.g.Edge(eid)
		if err := e.forbidOthers(ed.Receiver); err != nil {
			return err
		}
		if err := e.forbidOthers(ed.Sender); err != nil {
			return err
		}
	}
	e.rep.RemovedEdges += e.g.FilterEdges(func(_ core.EdgeID, ed *core.Edge) bool {
		return ed.Status != core.Forbidden
	})
	for _, eid := range required {
		ed := e.g.Edge(eid)
		if len(e.g.Adjacent(ed.Receiver)) != 1 || len(e.g.Adjacent(ed.Sender)) != 1 {
			return errors.AssertionFailedf("shrink: required edge %q→%q kept a competitor",
				e.g.Vertex(ed.Receiver).Name, e.g.Vertex(ed.Sender).Name)
		}
	}
	e.stage("Shrink 1 complete")

	return nil
}

// forbidOthers marks every non-REQUIRED edge of v FORBIDDEN.
func (e *engine) forbidOthers(v core.VertexID) error {
	for _, eid := range e.g.Adjacent(v) {
		ed := e.g.Edge(eid)
		switch ed.Status {
		case core.Required:
		case core.Optional:
			return errors.AssertionFailedf("shrink: optional edge %q→%q competes with a required edge",
				e.g.Vertex(ed.Receiver).Name, e.g.Vertex(ed.Sender).Name)
		default:
			ed.Status = core.Forbidden
		}
	}
	return nil
}

// findForbidden marks the edges used by some optimal matching OPTIONAL and
// deletes every edge still UNKNOWN. REQUIRED edges are already bumped.
func (e *engine) findForbidden() error {
	receivers := e.g.Receivers()
	for _, r := range receivers {
		for _, eid := range e.g.Adjacent(r) {
			if e.g.Edge(eid).Status != core.Optional {
				continue
			}
			if err := e.bump(eid, 1); err != nil {
				return err
			}
		}
	}

	for run, fresh := 1, 1; fresh > 0; run++ {
		if err := e.solve(); err != nil {
			return err
		}
		fresh = 0
		for _, r := range receivers {
			eid, err := e.matchedEdge(r)
			if err != nil {
				return err
			}
			ed := e.g.Edge(eid)
			if ed.Status != core.Unknown {
				continue
			}
			ed.Status = core.Optional
			if err = e.bump(eid, 1); err != nil {
				return err
			}
			fresh++
		}
		e.run2(run)
	}

	e.rep.RemovedEdges += e.g.FilterEdges(func(_ core.EdgeID, ed *core.Edge) bool {
		return ed.Status != core.Unknown
	})
	e.stage("Shrink 2 complete")

	return nil
}

func (e *engine) solve() error {
	_, err := matching.MinCost(e.g)
	return err
}

func (e *engine) matchedEdge(r core.VertexID) (core.EdgeID, error) {
	eid, ok := e.g.MatchedEdge(r)
	if !ok {
		return core.NoEdge, errors.AssertionFailedf("shrink: receiver %q has no matched edge",
			e.g.Vertex(r).Name)
	}
	return eid, nil
}

func (e *engine) bump(eid core.EdgeID, delta int64) error {
	return e.g.SetCost(eid, e.g.Edge(eid).Cost()+delta)
}

// scaleUp multiplies every live edge cost by V+1.
func (e *engine) scaleUp() error {
	e.factor = int64(len(e.g.Receivers()) + 1)
	e.scaled = e.scaled[:0]
	var highest int64
	for _, r := range e.g.Receivers() {
		for _, eid := range e.g.Adjacent(r) {
			e.scaled = append(e.scaled, eid)
			highest = max(highest, e.g.Edge(eid).Cost())
		}
	}
	// room for one bump on top of the scaled cost
	if highest > (core.MaxCost-2)/e.factor {
		e.scaled = nil
		return errors.Wrapf(ErrCostOverflow, "cost %d × %d", highest, e.factor)
	}
	for _, eid := range e.scaled {
		if err := e.g.SetCost(eid, e.g.Edge(eid).Cost()*e.factor); err != nil {
			return err
		}
	}
	return nil
}

// scaleDown divides the costs of the scaled edges that are still live, which
// also removes any bump, and refreshes the match cost of orphans.
func (e *engine) scaleDown() {
	for _, eid := range e.scaled {
		ed := e.g.Edge(eid)
		if ed.Removed() {
			continue
		}
		// dividing a valid cost cannot leave the valid range
		_ = e.g.SetCost(eid, ed.Cost()/e.factor)
	}
	e.scaled = nil

	for _, r := range e.g.Orphans() {
		eid, ok := e.g.SelfEdge(r)
		if !ok {
			continue
		}
		rv := e.g.Vertex(r)
		rv.MatchCost = e.g.Edge(eid).Cost()
		e.g.Vertex(rv.Twin).MatchCost = rv.MatchCost
	}
}

// stage records and logs a main step.
func (e *engine) stage(name string) {
	st := Stage{
		Name:      name,
		Receivers: len(e.g.Receivers()),
		Edges:     e.g.EdgeCount(),
		Histogram: e.g.Histogram(),
		Elapsed:   time.Since(e.start),
	}
	e.rep.Stages = append(e.rep.Stages, st)
	e.cfg.Logger.Debugf("%s: V=%d E=%d REQUIRED=%d OPTIONAL=%d UNKNOWN=%d",
		st.Name, st.Receivers, st.Edges,
		st.Histogram[core.Required], st.Histogram[core.Optional], st.Histogram[core.Unknown])
}

func (e *engine) run1(run int) {
	if e.cfg.Verbose {
		e.stage(fmt.Sprintf("Shrink 1.%d", run))
	}
}

func (e *engine) run2(run int) {
	if e.cfg.Verbose {
		e.stage(fmt.Sprintf("Shrink 2.%d", run))
	}
}
