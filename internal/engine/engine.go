// Package engine implements the chart parser: it saturates a
// chart.Chart over the input by repeatedly applying every rule in a
// locale.Registry until a full pass produces no new node.
//
// Grounded on dhamidi-sai's Earley parser (ebnf/parse/earley.go): a
// chart indexed by position, filled by repeated prediction/scan/complete
// passes until fixed point, with a Tracer-style hook for step-by-step
// debugging. This engine has no grammar nonterminals to predict — a
// Rule's pattern is matched directly against existing chart nodes and
// fresh regex scans — so the Earley "predict" step collapses into "try
// every rule at every cursor", but the chart-as-map-by-position, the
// fixed-point loop, and the debug-trace idiom are carried over directly.
package engine

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/locale"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

// ErrCancelled is returned when ctx is done at a chart-closure iteration
// boundary.
var ErrCancelled = errors.New("ducktype: parse cancelled")

// Parse saturates a chart over input using every rule in reg, returning
// the final chart. reg is read-only and may be shared by any
// number of concurrent Parse calls without synchronization.
func Parse(ctx context.Context, input string, reg *locale.Registry) (*chart.Chart, error) {
	c := chart.New()

	seed(c, input, reg)

	for {
		select {
		case <-ctx.Done():
			return c, ErrCancelled
		default:
		}

		if !closePass(c, input, reg) {
			return c, nil
		}
	}
}

// seed scans every rule whose first pattern item is a regex at every
// legal start position, inserting every leaf match.
func seed(c *chart.Chart, input string, reg *locale.Registry) {
	for _, r := range reg.Rules {
		if len(r.Pattern) == 0 {
			continue
		}
		re, ok := r.Pattern[0].(pattern.Regex)
		if !ok {
			continue
		}
		for s := 0; s <= len(input); s++ {
			insertLeaf(c, input, s, re)
		}
	}
}

func insertLeaf(c *chart.Chart, input string, s int, re pattern.Regex) {
	m, ok := re.FindAt(input, s)
	if !ok {
		return
	}
	n := &chart.Node{
		Range: chart.Range{Start: s, End: m.End},
		Token: token.RegexMatch{Groups: m.Groups},
	}
	c.Insert(n)
}

// closePass runs one full closure pass over every rule and every
// starting cursor, returning whether any new node was inserted.
func closePass(c *chart.Chart, input string, reg *locale.Registry) bool {
	progressed := false
	for s := 0; s <= len(input); s++ {
		for _, r := range reg.Rules {
			if fire(c, input, s, r) {
				progressed = true
			}
		}
	}
	return progressed
}

// fire attempts to extend rule r left-to-right starting at cursor s: at
// each step the set of candidates is the chart nodes starting at the
// current cursor that satisfy that step's pattern item. Every
// combination of matching children is tried, since a step may have more
// than one candidate starting at the same cursor (e.g. two different
// dimensions' nodes covering the same span). Per spec §4.2's adjacency
// rule, a step after the first may also start after skipping a single
// run of whitespace left by the previous match ("between 10 and 20
// dollars" needs "and" to find "20" across the space that follows it).
func fire(c *chart.Chart, input string, s int, r rule.Rule) bool {
	if len(r.Pattern) == 0 {
		return false
	}
	inserted := false
	var walk func(step int, cursor int, matched []*chart.Node)
	walk = func(step int, cursor int, matched []*chart.Node) {
		if step == len(r.Pattern) {
			if produceAndInsert(c, r, matched) {
				inserted = true
			}
			return
		}
		cursors := []int{cursor}
		if step > 0 {
			if gap := skipGap(input, cursor); gap != cursor {
				cursors = append(cursors, gap)
			}
		}
		seen := make(map[*chart.Node]bool)
		for _, at := range cursors {
			for _, n := range candidatesAt(c, input, at, r.Pattern[step]) {
				if seen[n] {
					continue
				}
				seen[n] = true
				next := make([]*chart.Node, len(matched), len(matched)+1)
				copy(next, matched)
				next = append(next, n)
				walk(step+1, n.Range.End, next)
			}
		}
	}
	walk(0, s, nil)
	return inserted
}

// skipGap advances pos past a single contiguous run of plain whitespace,
// implementing the "adjacency modulo optional whitespace gaps" clause of
// spec §4.2: a rule step after the first may start either exactly where
// the previous match ended or after the whitespace that immediately
// follows it, but never across intervening non-whitespace text.
func skipGap(input string, pos int) int {
	for pos < len(input) && (input[pos] == ' ' || input[pos] == '\t' || input[pos] == '\n') {
		pos++
	}
	return pos
}

// candidatesAt returns the chart nodes starting exactly at cursor that
// satisfy item. For a Regex item this performs a fresh scan, inserting
// any newly-discovered leaf into the chart so later passes can reuse it;
// for a Predicate item it filters the chart's existing nodes at that
// cursor.
func candidatesAt(c *chart.Chart, input string, cursor int, item pattern.Item) []*chart.Node {
	switch it := item.(type) {
	case pattern.Regex:
		m, ok := it.FindAt(input, cursor)
		if !ok {
			return nil
		}
		insertLeaf(c, input, cursor, it)
		return filterRegexNodes(c.At(cursor), m)
	case pattern.Predicate:
		var out []*chart.Node
		for _, n := range c.At(cursor) {
			if it.Accept(n.Token) {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}

// filterRegexNodes restricts to the leaf regex-match node for m: a Regex
// pattern item must match its own freshly-scanned literal, not a
// previously produced higher-level token or another regex's leaf that
// happens to start at the same cursor.
func filterRegexNodes(nodes []*chart.Node, m pattern.Match) []*chart.Node {
	want := token.RegexMatch{Groups: m.Groups}
	var out []*chart.Node
	for _, n := range nodes {
		if n.IsLeaf() && n.Range.End == m.End && n.Token.Equal(want) {
			out = append(out, n)
		}
	}
	return out
}

func produceAndInsert(c *chart.Chart, r rule.Rule, matched []*chart.Node) bool {
	tok, ok := r.Produce(matched)
	if !ok {
		logrus.WithField("rule", r.Name).Debug("production rejected")
		return false
	}
	n := &chart.Node{
		Range:    chart.Range{Start: matched[0].Range.Start, End: matched[len(matched)-1].Range.End},
		Token:    tok,
		Children: matched,
		RuleName: r.Name,
	}
	inserted := c.Insert(n)
	if inserted {
		logrus.WithFields(logrus.Fields{
			"rule":  r.Name,
			"start": n.Range.Start,
			"end":   n.Range.End,
		}).Debug("rule fired")
	}
	return inserted
}
