// Package chart implements the Range and Node data model the saturation
// engine (internal/engine) builds and the ranker (internal/rank) scores.
package chart

import "github.com/openacta/ducktype/internal/token"

// Range is a half-open character interval [Start, End) over the input.
type Range struct {
	Start int
	End   int
}

// Equal reports whether two ranges share both endpoints.
func (r Range) Equal(o Range) bool { return r.Start == o.Start && r.End == o.End }

// Dominates reports whether r strictly contains o: r.Start <= o.Start and
// o.End <= r.End, with at least one strict inequality.
func (r Range) Dominates(o Range) bool {
	if r.Start > o.Start || o.End > r.End {
		return false
	}
	return r.Start < o.Start || o.End < r.End
}

// Len is the number of characters the range spans.
func (r Range) Len() int { return r.End - r.Start }

// Node is a chart parse-tree node: a range, its token payload, and the
// child nodes (in pattern order) a rule matched to produce it. Leaf
// regex nodes have no children; the invariant that children's ranges
// are pairwise non-overlapping and ordered, and that together with any
// whitespace gaps the engine skipped between them they span the parent's
// range, is established by the engine at construction time, not
// re-validated here.
type Node struct {
	Range    Range
	Token    token.Token
	Children []*Node
	// RuleName is empty for leaf regex nodes.
	RuleName string
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// sameKey reports whether two nodes are duplicates under the chart's
// dedup key: same range, same rule name, and structurally equal token.
func sameKey(a, b *Node) bool {
	return a.Range.Equal(b.Range) && a.RuleName == b.RuleName && a.Token.Equal(b.Token)
}

// Chart is the set of nodes discovered so far, indexed by start offset
// for near-constant-time lookup of "nodes starting at a given cursor".
type Chart struct {
	byStart map[int][]*Node
	size    int
}

// New returns an empty chart.
func New() *Chart {
	return &Chart{byStart: make(map[int][]*Node)}
}

// At returns every node currently in the chart starting at offset s, in
// discovery order.
func (c *Chart) At(s int) []*Node {
	return c.byStart[s]
}

// Insert adds n to the chart unless a structurally-equal duplicate
// already exists at its start offset. It reports
// whether a new node was actually inserted, which the saturation loop
// uses as its "progress was made" signal.
func (c *Chart) Insert(n *Node) bool {
	existing := c.byStart[n.Range.Start]
	for _, e := range existing {
		if sameKey(e, n) {
			return false
		}
	}
	c.byStart[n.Range.Start] = append(existing, n)
	c.size++
	return true
}

// All returns every node in the chart, in a stable order: by start
// offset, then by discovery order within that offset.
func (c *Chart) All() []*Node {
	out := make([]*Node, 0, c.size)
	for s := 0; s <= maxStart(c.byStart); s++ {
		out = append(out, c.byStart[s]...)
	}
	return out
}

func maxStart(m map[int][]*Node) int {
	max := -1
	for s := range m {
		if s > max {
			max = s
		}
	}
	return max
}

// Len returns the total number of nodes in the chart.
func (c *Chart) Len() int { return c.size }
