package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

func TestParseLocale(t *testing.T) {
	loc := Parse("en-US")
	assert.Equal(t, Locale{Language: "en", Region: "US"}, loc)

	noRegion := Parse("fr")
	assert.Equal(t, Locale{Language: "fr", Region: DefaultRegion}, noRegion)
}

func TestLocaleString(t *testing.T) {
	assert.Equal(t, "en-US", Locale{Language: "en", Region: "US"}.String())
	assert.Equal(t, "en", Locale{Language: "en", Region: DefaultRegion}.String())
	assert.Equal(t, "en", Locale{Language: "en"}.String())
}

func TestRegisterAndLookupExact(t *testing.T) {
	reg := &Registry{
		Locale: Locale{Language: "zz", Region: "QQ"},
		Rules: []rule.Rule{
			{Name: "r1", Dimension: token.DimNumeral},
		},
	}
	Register(reg)

	got, err := Lookup(Locale{Language: "zz", Region: "QQ"})
	require.NoError(t, err)
	assert.Same(t, reg, got)
	assert.Len(t, got.ByDimension(token.DimNumeral), 1)
}

func TestLookupRegionFallback(t *testing.T) {
	reg := &Registry{
		Locale: Locale{Language: "yy", Region: DefaultRegion},
		Rules:  []rule.Rule{{Name: "r1", Dimension: token.DimOrdinal}},
	}
	Register(reg)

	got, err := Lookup(Locale{Language: "yy", Region: "GB"})
	require.NoError(t, err)
	assert.Same(t, reg, got)
}

func TestLookupUnknownLocale(t *testing.T) {
	_, err := Lookup(Locale{Language: "xx-nonexistent", Region: "ZZ"})
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestByDimensionIndexesAllRules(t *testing.T) {
	reg := &Registry{
		Locale: Locale{Language: "ww", Region: "WW"},
		Rules: []rule.Rule{
			{Name: "a", Dimension: token.DimMoney},
			{Name: "b", Dimension: token.DimMoney},
			{Name: "c", Dimension: token.DimTime},
		},
	}
	Register(reg)

	assert.Len(t, reg.ByDimension(token.DimMoney), 2)
	assert.Len(t, reg.ByDimension(token.DimTime), 1)
	assert.Empty(t, reg.ByDimension(token.DimQuantity))
}
