package en

import (
	"golang.org/x/text/currency"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
	"github.com/openacta/ducktype/internal/value"
)

const usdWordPattern = `dollars?|usd`

// validCurrency reports whether code is a real ISO 4217 unit, grounded on
// GiGurra-subscription-detector's internal/currency.go GetCurrency, which
// validates a bank statement's currency code the same way before trusting
// it for formatting. A production rejecting on an invalid code is the
// spec §7 "production rejection" outcome, not a panic — this grammar's
// codes are always literal and valid, so the check only ever matters if
// a future rule derives a code from matched text instead of a constant.
func validCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}

// MoneyRules recognizes "$10", "10 dollars", and the two interval forms
// from spec §8's literal test table ("between X and Y dollars", "from X
// to Y dollars").
var MoneyRules = []rule.Rule{
	dollarSignRule,
	numeralCurrencyRule,
	betweenIntervalRule,
	fromToIntervalRule,
}

var dollarSignRule = leaf("money($)", token.DimMoney, `\$\d+(\.\d+)?`, func(whole string, _ []string) (token.Token, bool) {
	v, ok := parseFloat(whole[1:])
	if !ok || !validCurrency("USD") {
		return nil, false
	}
	return token.Money{Currency: "USD", Measurement: value.Single(v)}, true
})

var numeralCurrencyRule = rule.Rule{
	Name:      "money(numeral-currency)",
	Dimension: token.DimMoney,
	Pattern: []pattern.Item{
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex(usdWordPattern),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		num, ok := numeralOf(children[0])
		if !ok || !validCurrency("USD") {
			return nil, false
		}
		return token.Money{Currency: "USD", Measurement: value.Single(num.Value)}, true
	},
}

var betweenIntervalRule = rule.Rule{
	Name:      "money(between-interval)",
	Dimension: token.DimMoney,
	Pattern: []pattern.Item{
		pattern.NewRegex(`between`),
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex(`and`),
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex(usdWordPattern),
	},
	Produce: intervalProduce,
}

var fromToIntervalRule = rule.Rule{
	Name:      "money(from-to-interval)",
	Dimension: token.DimMoney,
	Pattern: []pattern.Item{
		pattern.NewRegex(`from`),
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex(`to`),
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex(usdWordPattern),
	},
	Produce: intervalProduce,
}

// intervalProduce rejects an inverted interval (min > max) rather than
// building one — spec §4.2's "productions may be non-total... rejection
// is a normal pruning signal" exercised exactly as the Duckling original
// does for its money/duration interval dimensions (see SPEC_FULL.md's
// supplemented-features section).
func intervalProduce(children []*chart.Node) (token.Token, bool) {
	a, ok1 := numeralOf(children[1])
	b, ok2 := numeralOf(children[3])
	if !ok1 || !ok2 || a.Value > b.Value || !validCurrency("USD") {
		return nil, false
	}
	return token.Money{Currency: "USD", Measurement: value.Between(a.Value, b.Value)}, true
}
