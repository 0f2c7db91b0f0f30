package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/token"
)

func TestRangeDominates(t *testing.T) {
	outer := Range{Start: 0, End: 10}
	inner := Range{Start: 2, End: 5}
	same := Range{Start: 0, End: 10}

	assert.True(t, outer.Dominates(inner))
	assert.False(t, inner.Dominates(outer))
	assert.False(t, outer.Dominates(same), "equal ranges must not dominate each other")
	assert.True(t, outer.Equal(same))
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 5, Range{Start: 3, End: 8}.Len())
}

func TestChartInsertDedup(t *testing.T) {
	c := New()
	n1 := &Node{Range: Range{0, 3}, Token: token.Numeral{Value: 10}, RuleName: "digit"}
	n2 := &Node{Range: Range{0, 3}, Token: token.Numeral{Value: 10}, RuleName: "digit"}

	require.True(t, c.Insert(n1), "first insert should succeed")
	assert.False(t, c.Insert(n2), "structurally identical node should be deduped")
	assert.Equal(t, 1, c.Len())
}

func TestChartInsertDistinctRulesSameRange(t *testing.T) {
	c := New()
	n1 := &Node{Range: Range{0, 3}, Token: token.Numeral{Value: 10}, RuleName: "digit"}
	n2 := &Node{Range: Range{0, 3}, Token: token.Numeral{Value: 10}, RuleName: "word"}

	require.True(t, c.Insert(n1))
	assert.True(t, c.Insert(n2), "different rule name at the same range is not a duplicate")
	assert.Equal(t, 2, c.Len())
}

func TestChartAllOrderedByStart(t *testing.T) {
	c := New()
	late := &Node{Range: Range{5, 8}, Token: token.Numeral{Value: 1}, RuleName: "a"}
	early := &Node{Range: Range{0, 2}, Token: token.Numeral{Value: 2}, RuleName: "b"}
	c.Insert(late)
	c.Insert(early)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].Range.Start)
	assert.Equal(t, 5, all[1].Range.Start)
}

func TestNodeIsLeaf(t *testing.T) {
	leaf := &Node{Range: Range{0, 1}, Token: token.Numeral{Value: 1}}
	parent := &Node{Range: Range{0, 2}, Token: token.Numeral{Value: 1}, Children: []*Node{leaf}}

	assert.True(t, leaf.IsLeaf())
	assert.False(t, parent.IsLeaf())
}
