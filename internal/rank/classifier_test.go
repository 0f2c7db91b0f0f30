package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassDataScore(t *testing.T) {
	c := ClassData{
		Prior:       -0.5,
		Unseen:      -2.0,
		Likelihoods: map[string]float64{"a": -0.1, "b": -0.3},
	}
	got := scoreClass(c, []string{"a", "b", "unseen-feature"})
	assert.InDelta(t, -0.5-0.1-0.3-2.0, got, 1e-9)
}

func TestClassifierScoreUsesOkClassOnly(t *testing.T) {
	c := Classifier{
		Ok: ClassData{Prior: -1, Unseen: -5, Likelihoods: map[string]float64{"x": -0.2}},
		Ko: ClassData{Prior: -100, Unseen: -100, Likelihoods: map[string]float64{"x": -100}},
	}
	got := c.Score([]string{"x"})
	assert.InDelta(t, -1.2, got, 1e-9)
}

func TestTableScoreNodeMissingRuleScoresZero(t *testing.T) {
	table := Table{}
	assert.Equal(t, 0.0, table.ScoreNode("nonexistent-rule", []string{"anything"}))
}

func TestClassDataScoreHandlesNegativeInfinityPrior(t *testing.T) {
	c := ClassData{Prior: math.Inf(-1), Unseen: -1}
	got := scoreClass(c, []string{"f"})
	assert.True(t, math.IsInf(got, -1))
}
