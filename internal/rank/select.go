package rank

import (
	"sort"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/token"
)

// Candidate pairs a root chart node with its parse-tree score and whether
// its dimension is in the caller's requested target set.
type Candidate struct {
	Node     *chart.Node
	Score    float64
	IsTarget bool
}

// Select implements the antichain selection over candidates: the maximal set under the combined
// (range, dimension, score) order cmp, followed by a post-selection
// duplicate collapse and a sort by (start, end).
func Select(candidates []Candidate) []*chart.Node {
	var winners []Candidate
	for i, c := range candidates {
		dominated := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if less(c, other) {
				dominated = true
				break
			}
		}
		if !dominated {
			winners = append(winners, c)
		}
	}

	nodes := collapseDuplicates(winners)
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Range.Start != nodes[j].Range.Start {
			return nodes[i].Range.Start < nodes[j].Range.Start
		}
		return nodes[i].Range.End < nodes[j].Range.End
	})
	return nodes
}

// less reports whether a is strictly dominated by b under cmp. It is not required to be a total order: incomparable pairs both
// return false, which is exactly what lets disjoint, non-conflicting
// candidates across the string all survive into the winner set.
func less(a, b Candidate) bool {
	sameDim := a.Node.Token.Dimension() == b.Node.Token.Dimension()

	if sameDim {
		return lessSameDimension(a, b)
	}

	if a.IsTarget == b.IsTarget {
		// "If different dimensions: if both target or both non-target,
		// use pure range domination".
		return b.Node.Range.Dominates(a.Node.Range)
	}

	// One target, one not: "the target wins only when it dominates;
	// otherwise the comparison is incomparable". From the
	// non-target candidate's perspective this means it loses only when
	// the target candidate actually dominates it; it never wins outright
	// against a target it merely overlaps without dominating.
	if a.IsTarget {
		return false // a target candidate is never "less" than a non-target one
	}
	return b.Node.Range.Dominates(a.Node.Range)
}

func lessSameDimension(a, b Candidate) bool {
	if b.Node.Range.Dominates(a.Node.Range) {
		return true
	}
	if a.Node.Range.Dominates(b.Node.Range) {
		return false
	}
	if !a.Node.Range.Equal(b.Node.Range) {
		if a.Node.Range.End <= b.Node.Range.Start || b.Node.Range.End <= a.Node.Range.Start {
			// Disjoint spans do not conflict: incomparable.
			return false
		}
		// Partially overlapping, same dimension, neither dominates:
		// ordinary score tie-break, lower score loses.
		return a.Score < b.Score
	}
	// Equal range, same dimension: distinct (non-token-equal) candidates
	// compare as "<" in both directions regardless of score and so both
	// leave the antichain; token-equal candidates never trigger this
	// path's exclusion (the caller's post-selection dedup is what
	// collapses those into one), so we only exclude when the tokens
	// actually differ.
	return !a.Node.Token.Equal(b.Node.Token)
}

// collapseDuplicates merges winners sharing (range, token, latent) into
// a single node. Token structural equality is used as the pre-resolution
// proxy for resolved-value equality, since resolution is a deterministic
// function of the token and ranking runs before the resolver sees
// anything.
func collapseDuplicates(winners []Candidate) []*chart.Node {
	type key struct {
		r      chart.Range
		latent bool
	}
	seen := make(map[key][]*chart.Node)
	var order []key

	for _, w := range winners {
		k := key{r: w.Node.Range, latent: isLatent(w.Node.Token)}
		bucket, exists := seen[k]
		if !exists {
			order = append(order, k)
		}
		duplicate := false
		for _, n := range bucket {
			if n.Token.Equal(w.Node.Token) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			seen[k] = append(bucket, w.Node)
		}
	}

	var out []*chart.Node
	for _, k := range order {
		out = append(out, seen[k]...)
	}
	return out
}

func isLatent(t token.Token) bool {
	if tm, ok := t.(token.Time); ok {
		return tm.Latent
	}
	return false
}
