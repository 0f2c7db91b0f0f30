// Package pattern implements the two pattern-item kinds a Rule's sequence
// is built from: a precompiled regex anchored at a candidate start offset,
// and a predicate over an existing chart node's token.
package pattern

import (
	"regexp"
	"unicode"

	"github.com/openacta/ducktype/internal/token"
)

// Item is a single element of a Rule's pattern sequence.
type Item interface {
	// isPatternItem seals the interface to Regex and Predicate. Regex
	// items scan the input directly; predicate items are evaluated
	// against an already-discovered chart node. The chart parser
	// dispatches on the concrete type — see internal/engine, which calls
	// Regex.FindAt at the seed/extend step and Predicate.Accept against
	// existing nodes.
	isPatternItem()
}

// Regex is a precompiled, Unicode-aware, case-insensitive regex pattern
// item. Grounded on OpenActa's
// lexer_regex_table: a {tag, regex, compiled} triple compiled once before
// use (lexer_symbols.go's package-level table + lexer.go's init()), here
// generalized from a single fixed global table compiled at package init
// to a per-rule, per-registry-build Regex value so each locale's grammar
// owns its own compiled set.
type Regex struct {
	Source   string
	compiled *regexp.Regexp
}

// NewRegex compiles src with the case-insensitive flag forced on and panics on a bad pattern — a developer error caught at
// grammar-registration time, never at request time. Mirrors OpenActa's
// regexp.MustCompile usage in lexer.go's init().
func NewRegex(src string) Regex {
	pattern := src
	if len(pattern) < 4 || pattern[:4] != "(?i)" {
		pattern = "(?i)" + pattern
	}
	compiled := regexp.MustCompile(pattern)
	return Regex{Source: src, compiled: compiled}
}

func (Regex) isPatternItem() {}

// Match is the result of a successful Regex.FindAt: the full matched
// text, its end offset, and any parenthesized capture groups.
type Match struct {
	Text   string
	End    int
	Groups []string
}

// FindAt attempts a match of r starting exactly at offset s within text.
// A match is valid only if it consumes at least one character and is
// delimited on both sides by the text boundary or a word separator.
func (r Regex) FindAt(text string, s int) (m Match, ok bool) {
	if s < 0 || s > len(text) {
		return Match{}, false
	}
	idx := r.compiled.FindStringSubmatchIndex(text[s:])
	if idx == nil || idx[0] != 0 {
		return Match{}, false
	}
	end := s + idx[1]
	if end == s {
		return Match{}, false // zero-length match is never valid
	}
	if !isBoundary(text, s) || !isBoundary(text, end) {
		return Match{}, false
	}

	groups := make([]string, 0, len(idx)/2-1)
	for i := 2; i+1 < len(idx); i += 2 {
		if idx[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[s+idx[i]:s+idx[i+1]])
	}

	return Match{Text: text[s:end], End: end, Groups: groups}, true
}

// isBoundary reports whether offset i in text is a delimiter position:
// the start/end of the text, or adjacent to whitespace / locale
// punctuation.
func isBoundary(text string, i int) bool {
	if i <= 0 || i >= len(text) {
		return true
	}
	before := rune(text[i-1])
	after := rune(text[i])
	return isSeparatorRune(before) || isSeparatorRune(after)
}

func isSeparatorRune(r rune) bool {
	return unicode.IsSpace(r) || isSeparatorPunct(r)
}

// isSeparatorPunct is the default word-separator punctuation class.
func isSeparatorPunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '(', ')', '[', ']', '{', '}', '"', '\'', '-', '/':
		return true
	default:
		return false
	}
}

// Predicate is a function-valued pattern item matching an existing chart
// node whose token satisfies Accept.
type Predicate struct {
	Name   string // used only for debugging/tracing, not matching
	Accept func(token.Token) bool
}

func (Predicate) isPatternItem() {}

// Dim builds a Predicate accepting any token of the given dimension.
func Dim(d token.Dimension) Predicate {
	return Predicate{
		Name:   "dim(" + string(d) + ")",
		Accept: func(t token.Token) bool { return t.Dimension() == d },
	}
}

// Pred builds a Predicate from an arbitrary acceptance function.
func Pred(name string, f func(token.Token) bool) Predicate {
	return Predicate{Name: name, Accept: f}
}
