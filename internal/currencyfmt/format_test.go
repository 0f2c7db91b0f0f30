package currencyfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openacta/ducktype/internal/currencyfmt"
)

func TestFormatKnownCurrencyIsPrefixed(t *testing.T) {
	got := currencyfmt.Format("USD", 10)
	assert.True(t, strings.HasPrefix(got, "$"), "expected a leading $ symbol, got %q", got)
	assert.Contains(t, got, "10")
}

func TestFormatRange(t *testing.T) {
	got := currencyfmt.FormatRange("USD", 10, 20)
	assert.Contains(t, got, "10")
	assert.Contains(t, got, "20")
}

func TestFormatUnknownCurrencyFallsBackToCode(t *testing.T) {
	got := currencyfmt.Format("ZZZ", 5)
	assert.Contains(t, got, "ZZZ")
}
