package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(21000))
	assert.True(t, IsNatural(0))
	assert.True(t, IsNatural(-4))
	assert.False(t, IsNatural(0.2))
	assert.False(t, IsNatural(21011.5))
}

func TestNumeralEqual(t *testing.T) {
	a := Numeral{Value: 10}
	b := Numeral{Value: 10}
	c := Numeral{Value: 11}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNumeralEqualConsidersFlags(t *testing.T) {
	a := Numeral{Value: 10, Multipliable: true}
	b := Numeral{Value: 10, Multipliable: false}

	assert.False(t, a.Equal(b))
}

func TestNumeralDimension(t *testing.T) {
	assert.Equal(t, DimNumeral, Numeral{}.Dimension())
}
