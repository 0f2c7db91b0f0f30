package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/token"
)

func TestRegexFindAtCaseInsensitive(t *testing.T) {
	r := NewRegex(`dollars?`)
	m, ok := r.FindAt("ten DOLLARS today", 4)
	require.True(t, ok)
	assert.Equal(t, "DOLLARS", m.Text)
	assert.Equal(t, 11, m.End)
}

func TestRegexFindAtAlreadyPrefixed(t *testing.T) {
	// A source that already carries the (?i) prefix must not be double
	// prefixed into "(?i)(?i)...".
	r := NewRegex(`(?i)cat`)
	_, ok := r.FindAt("the CAT sat", 4)
	assert.True(t, ok)
}

func TestRegexFindAtRequiresBoundary(t *testing.T) {
	r := NewRegex(`cat`)
	_, ok := r.FindAt("concatenate", 3)
	assert.False(t, ok, "match embedded in a larger word must be rejected")
}

func TestRegexFindAtBoundaryAtStartAndEnd(t *testing.T) {
	r := NewRegex(`ten`)
	m, ok := r.FindAt("ten", 0)
	require.True(t, ok)
	assert.Equal(t, "ten", m.Text)
	assert.Equal(t, 3, m.End)
}

func TestRegexFindAtPunctuationBoundary(t *testing.T) {
	r := NewRegex(`ten`)
	_, ok := r.FindAt("(ten)", 1)
	assert.True(t, ok, "parens count as separator punctuation")
}

func TestRegexFindAtZeroLengthRejected(t *testing.T) {
	r := NewRegex(`a*`)
	_, ok := r.FindAt("ten", 0)
	assert.False(t, ok, "a zero-length match is never valid")
}

func TestRegexFindAtOutOfRangeOffset(t *testing.T) {
	r := NewRegex(`ten`)
	_, ok := r.FindAt("ten", 10)
	assert.False(t, ok)
}

func TestRegexFindAtCaptureGroups(t *testing.T) {
	r := NewRegex(`(\d+):(\d+)`)
	m, ok := r.FindAt("3:15 pm", 0)
	require.True(t, ok)
	require.Len(t, m.Groups, 2)
	assert.Equal(t, "3", m.Groups[0])
	assert.Equal(t, "15", m.Groups[1])
}

func TestDimPredicate(t *testing.T) {
	p := Dim(token.DimNumeral)
	assert.True(t, p.Accept(token.Numeral{Value: 5}))
	assert.False(t, p.Accept(token.Ordinal{Value: 1}))
}

func TestPredHelper(t *testing.T) {
	p := Pred("always-true", func(token.Token) bool { return true })
	assert.Equal(t, "always-true", p.Name)
	assert.True(t, p.Accept(token.Numeral{Value: 1}))
}
