package en

import (
	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

var durationGrainWords = map[string]token.Grain{
	"second": token.Second, "seconds": token.Second,
	"minute": token.Minute, "minutes": token.Minute,
	"hour": token.Hour, "hours": token.Hour,
	"day": token.Day, "days": token.Day,
	"week": token.Week, "weeks": token.Week,
	"month": token.Month, "months": token.Month,
	"quarter": token.Quarter, "quarters": token.Quarter,
	"year": token.Year, "years": token.Year,
}

func durationGrainWordsList() []string {
	out := make([]string, 0, len(durationGrainWords))
	for w := range durationGrainWords {
		out = append(out, w)
	}
	return out
}

// DurationRules recognizes "⟨numeral⟩ ⟨grain⟩" and an "...ago" suffix
// negating the count, per spec §3's signed Duration count.
var DurationRules = []rule.Rule{
	numeralGrainDurationRule,
	agoDurationRule,
}

var numeralGrainDurationRule = rule.Rule{
	Name:      "duration(numeral-grain)",
	Dimension: token.DimDuration,
	Pattern: []pattern.Item{
		pattern.Dim(token.DimNumeral),
		pattern.NewRegex("(" + alt(durationGrainWordsList()...) + ")"),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		num, ok := numeralOf(children[0])
		if !ok || !token.IsNatural(num.Value) {
			return nil, false
		}
		rm := children[1].Token.(token.RegexMatch)
		grain, ok := durationGrainWords[lower(rm.Groups[0])]
		if !ok {
			return nil, false
		}
		return token.Duration{Count: int(num.Value), Grain: grain}, true
	},
}

var agoDurationRule = rule.Rule{
	Name:      "duration(ago)",
	Dimension: token.DimDuration,
	Pattern: []pattern.Item{
		pattern.Dim(token.DimDuration),
		pattern.NewRegex(`ago`),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		d, ok := children[0].Token.(token.Duration)
		if !ok {
			return nil, false
		}
		return token.Duration{Count: -d.Count, Grain: d.Grain}, true
	},
}
