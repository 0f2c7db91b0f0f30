package en

import (
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12,
}

func ordinalWordsList() []string {
	out := make([]string, 0, len(ordinalWords))
	for w := range ordinalWords {
		out = append(out, w)
	}
	return out
}

// OrdinalRules recognizes "3rd"/"21st" digit-suffix ordinals and the
// first..twelfth word forms.
var OrdinalRules = []rule.Rule{
	digitOrdinalRule,
	wordOrdinalRule,
}

var digitOrdinalRule = leaf("ordinal(digit)", token.DimOrdinal, `\d+(st|nd|rd|th)`, func(whole string, _ []string) (token.Token, bool) {
	digits := whole
	for len(digits) > 0 && !(digits[len(digits)-1] >= '0' && digits[len(digits)-1] <= '9') {
		digits = digits[:len(digits)-1]
	}
	v, ok := parseInt(digits)
	if !ok || v <= 0 {
		return nil, false
	}
	return token.Ordinal{Value: v}, true
})

var wordOrdinalRule = leaf("ordinal(word)", token.DimOrdinal, alt(ordinalWordsList()...), func(whole string, _ []string) (token.Token, bool) {
	v, ok := ordinalWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Ordinal{Value: v}, true
})
