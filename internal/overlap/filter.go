// Package overlap implements the post-resolution overlap filter: a final
// pass over resolved entities that removes any entity strictly dominated
// (range-wise) by another, keeping equal-range duplicates for the caller
// to judge between.
//
// Grounded on DataDog's processing_rule_applicator.go match-overlap
// bookkeeping (sort matches by start, drop anything strictly contained
// in an already-kept match, keep the first of equal-range matches) —
// adapted from "replace the first match and skip ahead past overlaps in
// a mutated byte buffer" to "keep the non-dominated entity and preserve
// equal-range duplicates", since this filter returns a new slice rather
// than rewriting text in place.
package overlap

import "sort"

// Span is anything with a character range, satisfied by the top-level
// ducktype.Entity type. Generic over Span (rather than depending on
// ducktype.Entity directly) so this package has no import-cycle back to
// the top-level package and so the filter itself is unit-testable
// against a bare {start, end} stand-in.
type Span interface {
	Range() (start, end int)
}

// Filter removes every entity strictly dominated by another entity in
// the slice, preserving input order among the survivors otherwise.
// Equal-range entities are all retained since the caller, not this
// filter, decides which value among them to present.
func Filter[T Span](entities []T) []T {
	order := make([]int, len(entities))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		si, ei := entities[order[i]].Range()
		sj, ej := entities[order[j]].Range()
		if si != sj {
			return si < sj
		}
		return ei < ej
	})

	dominated := make([]bool, len(entities))
	for _, i := range order {
		si, ei := entities[i].Range()
		for _, j := range order {
			if i == j || dominated[j] {
				continue
			}
			sj, ej := entities[j].Range()
			if strictlyDominates(sj, ej, si, ei) {
				dominated[i] = true
				break
			}
		}
	}

	out := make([]T, 0, len(entities))
	for i, e := range entities {
		if !dominated[i] {
			out = append(out, e)
		}
	}
	return out
}

// strictlyDominates reports whether range [aStart, aEnd) strictly
// contains [bStart, bEnd): equal ranges do not dominate each other.
func strictlyDominates(aStart, aEnd, bStart, bEnd int) bool {
	if aStart > bStart || bEnd > aEnd {
		return false
	}
	return aStart < bStart || bEnd < aEnd
}
