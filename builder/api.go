// SPDX-License-Identifier: MIT
// Package: tradecycle/builder
//
// api.go — Build: want lists → frozen core.Graph.
//
// Steps:
//  1. Create one item per surviving want list (duplicates, non-official
//     names and bad dummies are reported).
//  2. Add the no-trade edge and the want edges of every item.
//  3. Freeze the graph and summarize unknown and missing names.

package builder

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/tradecycle/core"
)

var explicitWant = regexp.MustCompile(`^([^=]+)=([0-9]+)$`)

// Build creates the trade graph of lists.
//
// Errors: ErrEmptyItem for a list without an item, ErrNoItems when nothing
// survives, and core errors if the graph rejects an edge for a reason other
// than a reported problem.
// Complexity: O(L + W log W) for L lists and W wants.
func Build(lists []WantList, opts ...BuilderOption) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	b := &build{
		cfg:      cfg,
		g:        core.NewGraph(),
		out:      &Result{Unknowns: make(map[string]int)},
		used:     make(map[string]struct{}),
		accepted: make([]*itemList, 0, len(lists)),
	}

	// 1) Items
	for i := range lists {
		if err := b.addItem(&lists[i]); err != nil {
			return nil, err
		}
	}
	if b.out.Items == 0 {
		return nil, ErrNoItems
	}

	// 2) Edges
	for _, it := range b.accepted {
		if err := b.addWants(it); err != nil {
			return nil, err
		}
	}

	// 3) Summary
	if err := b.g.Freeze(); err != nil {
		return nil, err
	}
	b.summarize()
	b.out.Graph = b.g

	return b.out, nil
}

// build is the state of one Build call.
type build struct {
	cfg      builderConfig
	g        *core.Graph
	out      *Result
	used     map[string]struct{} // official names with a want list
	accepted []*itemList
}

// itemList is a want list whose item made it into the graph.
type itemList struct {
	list *WantList
	name string
	id   core.VertexID
}

func (b *build) problem(format string, args ...any) {
	b.out.Problems = append(b.out.Problems, fmt.Sprintf(format, args...))
}

// dummyName qualifies a dummy item with its owner, so that every user gets
// a private namespace of dummies.
func dummyName(name, user string) string {
	return fmt.Sprintf("%s for user (%s)", name, user)
}

func (b *build) addItem(l *WantList) error {
	name := l.Item
	if name == "" {
		return errors.Wrapf(ErrEmptyItem, "line %d", l.Line)
	}

	dummy := strings.HasPrefix(name, DummyPrefix)
	if dummy {
		switch {
		case l.User == "":
			b.problem("Dummy item %s declared without a username.", name)
		case !b.cfg.allowDummies:
			b.problem("Dummy items not allowed. (%s)", name)
		default:
			name = dummyName(name, l.User)
		}
	}

	if b.cfg.official != nil && !dummy && !b.cfg.isOfficial(name) {
		b.problem("Cannot define want list for %s because it is not an official name.  (Usually indicates a typo by the item owner.)", name)
		return nil
	}
	if _, ok := b.g.VertexByName(name); ok {
		b.problem("Item %s has multiple want lists--ignoring all but first.  (Sometimes the result of an accidental line break in the middle of a want list.)", name)
		return nil
	}

	id, err := b.g.AddVertex(name, l.User, dummy)
	if err != nil {
		return errors.Wrapf(err, "line %d", l.Line)
	}
	b.out.Items++
	if dummy {
		b.out.DummyItems++
	}
	if b.cfg.isOfficial(name) {
		b.used[name] = struct{}{}
	}
	b.accepted = append(b.accepted, &itemList{list: l, name: name, id: id})

	return nil
}

func (b *build) addWants(it *itemList) error {
	from := b.g.Vertex(it.id)
	if _, err := b.g.AddEdge(it.id, from.Twin, b.cfg.nonTradeCost); err != nil {
		return err
	}

	rank := int64(1)
	for _, w := range it.list.Wants {
		if w.Break {
			rank += b.cfg.bigStep
			continue
		}

		toName := w.Name
		if w.Explicit != 0 || strings.Contains(toName, "=") {
			name, explicit, ok := b.explicit(w, it.name)
			if !ok {
				continue
			}
			toName, rank = name, explicit
		}
		if strings.HasPrefix(toName, DummyPrefix) {
			if from.User == "" {
				b.problem("Dummy item %s used in want list for item %s, which does not have a username.", toName, it.name)
				continue
			}
			toName = dummyName(toName, from.User)
		}

		toID, ok := b.g.VertexByName(toName)
		if !ok {
			if b.cfg.isOfficial(toName) {
				// official item whose owner sent no want list
				rank += b.cfg.smallStep
			} else {
				b.out.Unknowns[toName]++
			}
			continue
		}

		to := b.g.Vertex(toID)
		sender := to.Twin
		switch {
		case sender == from.Twin:
			b.problem("Item %s appears in its own want list.", toName)
			continue
		case b.hasEdge(it.id, sender):
			if b.cfg.showRepeats {
				b.problem("Item %s is repeated in want list for %s.", toName, it.name)
			}
			continue
		case !to.Dummy && from.User != "" && from.User == to.User:
			b.problem("Item %s contains item %s from the same user (%s)", it.name, toName, from.User)
			continue
		}

		cost := b.cfg.scheme.Cost(rank)
		if from.Dummy {
			cost = b.cfg.nonTradeCost
		}
		if _, err := b.g.AddEdge(it.id, sender, cost); err != nil {
			if !errors.Is(err, core.ErrBadCost) {
				return err
			}
			b.problem("Item %s in want list for item %s has rank %d, which is too large.", toName, it.name, rank)
			continue
		}
		rank += b.cfg.smallStep
	}

	return nil
}

func (b *build) hasEdge(r, s core.VertexID) bool {
	_, ok := b.g.GetEdge(r, s)
	return ok
}

// explicit validates an explicit-rank want and returns its name and rank.
func (b *build) explicit(w Want, fromName string) (string, int64, bool) {
	token := w.Name
	if w.Explicit != 0 && !strings.Contains(token, "=") {
		token = fmt.Sprintf("%s=%d", w.Name, w.Explicit)
	}
	if b.cfg.scheme != SchemeExplicit {
		b.problem("Cannot use '=' annotation in item %s in want list for item %s unless using EXPLICIT-PRIORITIES.", token, fromName)
		return "", 0, false
	}
	m := explicitWant.FindStringSubmatch(token)
	if m == nil {
		b.problem("Item %s in want list for item %s must have the format 'name=number'.", token, fromName)
		return "", 0, false
	}
	rank, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		b.problem("Item %s in want list for item %s must have the format 'name=number'.", token, fromName)
		return "", 0, false
	}
	if rank < 1 {
		b.problem("Explicit priority must be positive in item %s in want list for item %s.", token, fromName)
		return "", 0, false
	}

	return m[1], rank, true
}

func (b *build) summarize() {
	for name, n := range b.out.Unknowns {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		b.problem("Unknown item %s (%d occurrence%s)", name, n, plural)
	}
	sort.Strings(b.out.Problems)

	for name := range b.cfg.official {
		if _, ok := b.used[name]; !ok {
			b.out.MissingOfficial = append(b.out.MissingOfficial, name)
		}
	}
	sort.Strings(b.out.MissingOfficial)
}
