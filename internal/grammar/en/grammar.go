package en

import (
	"github.com/openacta/ducktype/internal/locale"
	"github.com/openacta/ducktype/internal/rule"
)

// usRules is the full en-US rule list.
var usRules = concat(
	NumeralRules,
	OrdinalRules,
	MoneyRules,
	DurationRules,
	MeasurementRules,
	TimeRules,
)

// xxRules is the region-default fallback's strict subset: plain digit
// and word numerals, "$N" money, and the anchorless time leaves, but no
// multiplicative numeral composition, no money intervals, and no
// measurement dimensions. This exists purely to exercise
// locale.Lookup's region-fallback path (spec §4.3/§6) with a real,
// smaller grammar rather than a second copy of en-US.
var xxRules = concat(
	[]rule.Rule{digitRule, onesRule, teensRule, tensRule},
	OrdinalRules,
	[]rule.Rule{dollarSignRule, numeralCurrencyRule},
	[]rule.Rule{todayRule, tomorrowRule, yesterdayRule, nowRule, weekdayRule, hourAmPmRule, hourMinuteAmPmRule, bareHourLatentRule, atAnchorRule},
)

func concat(lists ...[]rule.Rule) []rule.Rule {
	var out []rule.Rule
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// init registers en-US and en-XX with internal/locale at package load
// time, grounded on OpenActa's lexer.go init()-time regex-table
// compilation (generalized here from a single global table to two
// distinct per-locale registries, per spec §4.3's "adding a language
// means adding its rule list").
func init() {
	locale.Register(&locale.Registry{
		Locale:      locale.Locale{Language: "en", Region: "US"},
		Rules:       usRules,
		Classifiers: loadClassifiers("en-US"),
	})
	locale.Register(&locale.Registry{
		Locale:      locale.Locale{Language: "en", Region: locale.DefaultRegion},
		Rules:       xxRules,
		Classifiers: loadClassifiers("en-XX"),
	})
}
