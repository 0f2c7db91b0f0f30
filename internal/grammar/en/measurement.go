package en

import (
	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
	"github.com/openacta/ducktype/internal/value"
)

// unitWords maps a recognized unit word to its canonical unit string.
type unitWords map[string]string

func (u unitWords) alternation() string {
	words := make([]string, 0, len(u))
	for w := range u {
		words = append(words, w)
	}
	return alt(words...)
}

var quantityUnits = unitWords{
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"dozen": "dozen", "dozens": "dozen",
}

var volumeUnits = unitWords{
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml",
	"gallon": "gal", "gallons": "gal",
}

var distanceUnits = unitWords{
	"km": "km", "kilometer": "km", "kilometers": "km", "kilometre": "km", "kilometres": "km",
	"mile": "mi", "miles": "mi",
	"m": "m", "meter": "m", "meters": "m", "metre": "m", "metres": "m",
}

var temperatureUnits = unitWords{
	"degree": "degree", "degrees": "degree",
	"celsius": "celsius", "fahrenheit": "fahrenheit",
}

// MeasurementRules recognizes "⟨numeral⟩ ⟨unit⟩" for the four dimensions
// sharing the value.Measurement shape (spec §4.5): quantity, volume,
// distance, and temperature. Unlike money, none of these carries an
// interval form in this illustrative grammar — spec §1 scopes the
// concrete rule catalog out entirely, so only enough is built here to
// exercise the shared MeasurementValue shape end to end for every
// dimension that uses it.
var MeasurementRules = []rule.Rule{
	measurementRule("quantity(numeral-unit)", token.DimQuantity, quantityUnits, func(unit string, v value.Measurement) token.Token {
		return token.Quantity{Unit: unit, Measurement: v}
	}),
	measurementRule("volume(numeral-unit)", token.DimVolume, volumeUnits, func(unit string, v value.Measurement) token.Token {
		return token.Volume{Unit: unit, Measurement: v}
	}),
	measurementRule("distance(numeral-unit)", token.DimDistance, distanceUnits, func(unit string, v value.Measurement) token.Token {
		return token.Distance{Unit: unit, Measurement: v}
	}),
	measurementRule("temperature(numeral-unit)", token.DimTemperature, temperatureUnits, func(unit string, v value.Measurement) token.Token {
		return token.Temperature{Unit: unit, Measurement: v}
	}),
}

func measurementRule(name string, dim token.Dimension, units unitWords, build func(unit string, v value.Measurement) token.Token) rule.Rule {
	return rule.Rule{
		Name:      name,
		Dimension: dim,
		Pattern: []pattern.Item{
			pattern.Dim(token.DimNumeral),
			pattern.NewRegex("(" + units.alternation() + ")"),
		},
		Produce: func(children []*chart.Node) (token.Token, bool) {
			num, ok := numeralOf(children[0])
			if !ok {
				return nil, false
			}
			rm := children[1].Token.(token.RegexMatch)
			unit, ok := units[lower(rm.Groups[0])]
			if !ok {
				return nil, false
			}
			return build(unit, value.Single(num.Value)), true
		},
	}
}
