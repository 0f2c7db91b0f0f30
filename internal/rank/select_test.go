package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/token"
)

func node(start, end int, tok token.Token) *chart.Node {
	return &chart.Node{Range: chart.Range{Start: start, End: end}, Token: tok}
}

func TestSelectCrossDimensionDominationEliminatesSubsumed(t *testing.T) {
	// "between 10 and 20 dollars": the money interval dominates the two
	// bare numerals it was built from.
	interval := node(0, 22, token.Money{})
	ten := node(8, 10, token.Numeral{Value: 10})
	twenty := node(15, 17, token.Numeral{Value: 20})

	winners := Select([]Candidate{
		{Node: interval, IsTarget: true},
		{Node: ten, IsTarget: true},
		{Node: twenty, IsTarget: true},
	})

	require.Len(t, winners, 1)
	assert.Equal(t, interval, winners[0])
}

func TestSelectSameDimensionSameRangeDistinctTokensEliminateEachOther(t *testing.T) {
	a := node(0, 4, token.Numeral{Value: 1})
	b := node(0, 4, token.Numeral{Value: 2})

	winners := Select([]Candidate{
		{Node: a, IsTarget: true, Score: 5},
		{Node: b, IsTarget: true, Score: -5},
	})

	assert.Empty(t, winners, "non-token-equal same-range same-dimension candidates must both lose")
}

func TestSelectSameDimensionSameRangeEqualTokensCollapse(t *testing.T) {
	a := node(0, 4, token.Numeral{Value: 7})
	b := node(0, 4, token.Numeral{Value: 7})

	winners := Select([]Candidate{
		{Node: a, IsTarget: true},
		{Node: b, IsTarget: true},
	})

	require.Len(t, winners, 1)
}

func TestSelectDisjointCandidatesBothSurvive(t *testing.T) {
	first := node(0, 4, token.Numeral{Value: 1})
	second := node(10, 14, token.Numeral{Value: 2})

	winners := Select([]Candidate{
		{Node: first, IsTarget: true},
		{Node: second, IsTarget: true},
	})

	assert.Len(t, winners, 2)
}

func TestSelectNonTargetLosesOnlyWhenDominated(t *testing.T) {
	targetOuter := node(0, 10, token.Money{})
	nonTargetInner := node(2, 5, token.Numeral{Value: 3})

	winners := Select([]Candidate{
		{Node: targetOuter, IsTarget: true},
		{Node: nonTargetInner, IsTarget: false},
	})

	require.Len(t, winners, 1)
	assert.Equal(t, targetOuter, winners[0])
}

func TestSelectOverlappingSameDimensionScoreTieBreak(t *testing.T) {
	low := node(0, 6, token.Numeral{Value: 1})
	high := node(3, 9, token.Numeral{Value: 2})

	winners := Select([]Candidate{
		{Node: low, IsTarget: true, Score: -1},
		{Node: high, IsTarget: true, Score: 5},
	})

	require.Len(t, winners, 1)
	assert.Equal(t, high, winners[0])
}

func TestSelectOutputSortedByStart(t *testing.T) {
	second := node(10, 14, token.Numeral{Value: 2})
	first := node(0, 4, token.Numeral{Value: 1})

	winners := Select([]Candidate{
		{Node: second, IsTarget: true},
		{Node: first, IsTarget: true},
	})

	require.Len(t, winners, 2)
	assert.Equal(t, 0, winners[0].Range.Start)
	assert.Equal(t, 10, winners[1].Range.Start)
}

func TestSelectLatentAndAnchoredTimeAtSameRangeDoNotCollapse(t *testing.T) {
	latent := node(0, 2, token.Time{Form: token.Hour{Hour: 3}, Latent: true})
	anchored := node(0, 2, token.Time{Form: token.Hour{Hour: 3}, Latent: false})

	winners := Select([]Candidate{
		{Node: latent, IsTarget: true},
		{Node: anchored, IsTarget: true},
	})

	// Same dimension, same range, distinct (non-token-equal, Latent
	// differs) tokens: per the same-range/same-dimension rule both are
	// eliminated from the antichain, same as any other non-equal pair.
	assert.Empty(t, winners)
}
