package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/token"
)

func leaf(ruleName string, tok token.Token) *chart.Node {
	return &chart.Node{Token: tok, RuleName: ruleName}
}

func TestNodeFeaturesRuleChildren(t *testing.T) {
	n := &chart.Node{
		RuleName: "multiply",
		Token:    token.Numeral{Value: 100},
		Children: []*chart.Node{
			leaf("digit", token.Numeral{Value: 1}),
			leaf("grain-word", token.Numeral{Value: 100}),
		},
	}
	features := NodeFeatures(n)
	assert.Equal(t, "digitgrain-word", features[0])
}

func TestNodeFeaturesGrain(t *testing.T) {
	n := &chart.Node{
		RuleName: "numeral-grain-duration",
		Token:    token.Duration{Count: 3, Grain: token.Day},
		Children: []*chart.Node{
			leaf("digit", token.Numeral{Value: 3}),
			{RuleName: "grain-word", Token: token.GrainToken{Grain: token.Day}},
		},
	}
	features := NodeFeatures(n)
	assert.Contains(t, features, "day")
}

func TestNodeFeaturesOmitsEmptyGrainFeature(t *testing.T) {
	n := &chart.Node{
		RuleName: "digit",
		Token:    token.Numeral{Value: 5},
	}
	features := NodeFeatures(n)
	assert.Len(t, features, 1, "a leaf-child-free node should carry only the (empty) rule-children feature")
}

func TestTreeScoreSumsOverInternalNodesOnly(t *testing.T) {
	table := Table{
		"multiply": Classifier{Ok: ClassData{Prior: -1, Unseen: 0}},
		"digit":    Classifier{Ok: ClassData{Prior: -0.5, Unseen: 0}},
	}
	root := &chart.Node{
		RuleName: "multiply",
		Token:    token.Numeral{Value: 100},
		Children: []*chart.Node{
			{RuleName: "digit", Token: token.Numeral{Value: 1}, Children: []*chart.Node{
				{Token: token.RegexMatch{}}, // leaf, no rule name
			}},
		},
	}
	// Only the two internal nodes (multiply, digit) are scored; the
	// innermost regex leaf contributes nothing of its own. With Unseen
	// zeroed out, each internal node's score collapses to its own Prior.
	got := TreeScore(root, table)
	assert.InDelta(t, -1.0-0.5, got, 1e-9)
}
