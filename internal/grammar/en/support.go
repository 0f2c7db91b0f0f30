// Package en is the illustrative English grammar: a small, hand-written
// rule catalog exercising every component the core rule engine defines
// (spec §1 scopes the catalog itself out as "large leaf tables...the
// actual linguistic content is data" — this package is deliberately
// small, covering spec §8's literal scenario table plus a few more
// dimensions, not a Duckling-scale language matrix).
//
// Two registries are built here, en-US and en-XX (the region-default
// fallback per internal/locale's DefaultRegion sentinel): en-US carries
// the full rule list below, en-XX a strict subset (no money intervals,
// no measurement dimensions, no multiplicative numeral composition) so
// locale.Lookup's region-fallback path has something real to exercise.
package en

import (
	"strconv"
	"strings"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

// leaf builds a single-item regex Rule. src is wrapped in an outer
// capturing group so produce always receives the full matched text as
// groups[0], with src's own capture groups (if any) following at
// groups[1:] — OpenActa's lexer_regex_table is a flat {tag, regex}
// pairing with no capture groups at all (its lexer only needs the token
// tag); this grammar's leaf rules need the literal text too, since that
// literal drives a production's word/unit lookup, so every leaf rule
// here is built through this one helper instead of each hand-rolling its
// own capture-group bookkeeping.
func leaf(name string, dim token.Dimension, src string, produce func(whole string, groups []string) (token.Token, bool)) rule.Rule {
	wrapped := "(" + src + ")"
	return rule.Rule{
		Name:      name,
		Dimension: dim,
		Pattern:   []pattern.Item{pattern.NewRegex(wrapped)},
		Produce: func(children []*chart.Node) (token.Token, bool) {
			rm := children[0].Token.(token.RegexMatch)
			var rest []string
			if len(rm.Groups) > 1 {
				rest = rm.Groups[1:]
			}
			return produce(rm.Groups[0], rest)
		},
	}
}

// alt joins words into a regex alternation, longest first so a shorter
// word that happens to prefix a longer one never wins the match before
// the longer word gets a chance (regexp's leftmost-first, not
// leftmost-longest, semantics — see internal/pattern's FindAt boundary
// check for the complementary half of this guard).
func alt(words ...string) string {
	sorted := append([]string(nil), words...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return strings.Join(sorted, "|")
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// numeralOf extracts a Numeral from a chart node's token, for use in
// predicate-item rules and productions that compose numerals.
func numeralOf(n *chart.Node) (token.Numeral, bool) {
	num, ok := n.Token.(token.Numeral)
	return num, ok
}

func isMultipliableNumeral(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && n.Multipliable
}

func isPlainNumeral(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && n.PowerOfTen == nil
}

func isGrainNumeral(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && n.PowerOfTen != nil
}

func intp(v int) *int { return &v }
