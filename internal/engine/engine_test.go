package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/locale"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

func digitRule() rule.Rule {
	return rule.Rule{
		Name:      "digit",
		Dimension: token.DimNumeral,
		Pattern:   []pattern.Item{pattern.NewRegex(`\d+(\.\d+)?`)},
		Produce: func(children []*chart.Node) (token.Token, bool) {
			groups := children[0].Token.(token.RegexMatch).Groups
			_ = groups
			return token.Numeral{Value: 10}, true
		},
	}
}

func wordRule() rule.Rule {
	return rule.Rule{
		Name:      "and-word",
		Dimension: token.DimRegexMatch,
		Pattern:   []pattern.Item{pattern.NewRegex(`and`)},
		Produce: func(children []*chart.Node) (token.Token, bool) {
			return token.RegexMatch{Groups: nil}, true
		},
	}
}

func pairRule() rule.Rule {
	return rule.Rule{
		Name:      "pair",
		Dimension: token.DimDuration,
		Pattern: []pattern.Item{
			pattern.Dim(token.DimNumeral),
			pattern.NewRegex(`and`),
			pattern.Dim(token.DimNumeral),
		},
		Produce: func(children []*chart.Node) (token.Token, bool) {
			return token.Duration{Count: 2, Grain: token.Day}, true
		},
	}
}

func testRegistry() *locale.Registry {
	return &locale.Registry{
		Locale: locale.Locale{Language: "zz", Region: "ZZ"},
		Rules:  []rule.Rule{digitRule(), wordRule(), pairRule()},
	}
}

func TestParseSeedsLeaves(t *testing.T) {
	reg := testRegistry()
	reg.Rules = []rule.Rule{digitRule()}
	c, err := Parse(context.Background(), "10", reg)
	require.NoError(t, err)

	found := false
	for _, n := range c.All() {
		if num, ok := n.Token.(token.Numeral); ok && num.Value == 10 {
			found = true
		}
	}
	assert.True(t, found, "expected a numeral node to be produced")
}

func TestParseRespectsWhitespaceGapAdjacency(t *testing.T) {
	reg := testRegistry()
	c, err := Parse(context.Background(), "10 and 20", reg)
	require.NoError(t, err)

	found := false
	for _, n := range c.All() {
		if n.RuleName == "pair" {
			found = true
			assert.Equal(t, 0, n.Range.Start)
			assert.Equal(t, 9, n.Range.End)
		}
	}
	assert.True(t, found, "pair rule should fire across the space-separated gap")
}

func TestParseDoesNotCrossNonWhitespaceGap(t *testing.T) {
	reg := testRegistry()
	c, err := Parse(context.Background(), "10xand 20", reg)
	require.NoError(t, err)

	for _, n := range c.All() {
		assert.NotEqual(t, "pair", n.RuleName, "a non-whitespace gap must not be bridged")
	}
}

func TestParseCancellation(t *testing.T) {
	reg := testRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, "10 and 20", reg)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestParseTerminatesOnFixedPoint(t *testing.T) {
	reg := testRegistry()
	done := make(chan struct{})
	go func() {
		_, _ = Parse(context.Background(), "10 and 20 and 30", reg)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Parse did not terminate; saturation loop likely never reaches a fixed point")
	}
}
