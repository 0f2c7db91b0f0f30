package en

import (
	"math"
	"strings"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

var onesWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
}

var teenWords = map[string]float64{
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// grainWords names the power-of-ten multiplier words; the exponent is
// what a Numeral's PowerOfTen field carries (spec §3's Token table).
var grainWords = map[string]int{
	"hundred":  2,
	"thousand": 3,
	"million":  6,
	"billion":  9,
}

func words(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	return out
}

func grainWordsList() []string {
	out := make([]string, 0, len(grainWords))
	for w := range grainWords {
		out = append(out, w)
	}
	return out
}

// NumeralRules is the digit, word-number, and multiplicative/additive
// composition rule set ("twenty-one thousand eleven" = 21 * 1000 + 11,
// spec §8's literal test). The bitwise floor-equality "is_natural" check
// spec §9 flags as an open question is implemented in token.IsNatural
// and used here nowhere directly — it's a query helper for productions
// downstream (duration-from-numeral, time-from-numeral) that must reject
// non-integral values, not a constraint on numeral composition itself.
var NumeralRules = []rule.Rule{
	digitRule,
	fractionRule,
	onesRule,
	teensRule,
	tensRule,
	hyphenCompoundRule,
	grainWordRule,
	multiplyRule,
	additionRule,
}

var digitRule = leaf("numeral(digit)", token.DimNumeral, `\d+(\.\d+)?`, func(whole string, _ []string) (token.Token, bool) {
	v, ok := parseFloat(whole)
	if !ok {
		return nil, false
	}
	return token.Numeral{Value: v, Multipliable: true}, true
})

var fractionRule = leaf("numeral(fraction)", token.DimNumeral, `\d+/\d+`, func(whole string, _ []string) (token.Token, bool) {
	parts := strings.SplitN(whole, "/", 2)
	if len(parts) != 2 {
		return nil, false
	}
	num, ok1 := parseFloat(parts[0])
	den, ok2 := parseFloat(parts[1])
	if !ok1 || !ok2 || den == 0 {
		return nil, false
	}
	return token.Numeral{Value: num / den}, true
})

var onesRule = leaf("numeral(ones)", token.DimNumeral, alt(words(onesWords)...), func(whole string, _ []string) (token.Token, bool) {
	v, ok := onesWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Numeral{Value: v, Multipliable: v != 0}, true
})

var teensRule = leaf("numeral(teens)", token.DimNumeral, alt(words(teenWords)...), func(whole string, _ []string) (token.Token, bool) {
	v, ok := teenWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Numeral{Value: v, Multipliable: true}, true
})

var tensRule = leaf("numeral(tens)", token.DimNumeral, alt(words(tensWords)...), func(whole string, _ []string) (token.Token, bool) {
	v, ok := tensWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Numeral{Value: v, Multipliable: true}, true
})

var hyphenCompoundRule = leaf(
	"numeral(tens-hyphen-ones)",
	token.DimNumeral,
	"("+alt(words(tensWords)...)+")-("+alt(words(onesWords)...)+")",
	func(_ string, groups []string) (token.Token, bool) {
		if len(groups) != 2 {
			return nil, false
		}
		tens, ok1 := tensWords[lower(groups[0])]
		ones, ok2 := onesWords[lower(groups[1])]
		if !ok1 || !ok2 {
			return nil, false
		}
		return token.Numeral{Value: tens + ones, Multipliable: true}, true
	},
)

var grainWordRule = leaf("numeral(grain-word)", token.DimNumeral, alt(grainWordsList()...), func(whole string, _ []string) (token.Token, bool) {
	exp, ok := grainWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Numeral{Value: math.Pow(10, float64(exp)), PowerOfTen: intp(exp)}, true
})

// multiplyRule composes "⟨multiplier⟩ ⟨grain word⟩" ("twenty-one
// thousand" = 21 * 10^3), per spec §3's "multipliable" flag and §4.2's
// production-as-pure-function contract.
var multiplyRule = rule.Rule{
	Name:      "numeral(multiply)",
	Dimension: token.DimNumeral,
	Pattern: []pattern.Item{
		pattern.Pred("multipliable-numeral", isMultipliableNumeral),
		pattern.Pred("grain-numeral", isGrainNumeral),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		left, _ := numeralOf(children[0])
		right, _ := numeralOf(children[1])
		return token.Numeral{Value: left.Value * right.Value, Multipliable: true}, true
	},
}

// additionRule composes "⟨round composite⟩ ⟨small numeral⟩" ("twenty-one
// thousand eleven" = 21000 + 11). The left operand must be a multiple of
// 100 (the smallest grain word's value) — this is the grammar's proxy
// for "resulted from a grain multiplication", since spec §3 doesn't add
// an extra Numeral field for it and introducing one here would be
// grammar-specific state the closed token union (internal/token)
// shouldn't carry.
var additionRule = rule.Rule{
	Name:      "numeral(add)",
	Dimension: token.DimNumeral,
	Pattern: []pattern.Item{
		pattern.Pred("round-composite-numeral", isRoundComposite),
		pattern.Pred("small-plain-numeral", isPlainSmallNumeral),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		left, _ := numeralOf(children[0])
		right, _ := numeralOf(children[1])
		return token.Numeral{Value: left.Value + right.Value, Multipliable: true}, true
	},
}

func isRoundComposite(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && n.PowerOfTen == nil && n.Multipliable && math.Mod(n.Value, 100) == 0 && n.Value != 0
}

func isPlainSmallNumeral(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && n.PowerOfTen == nil && n.Value < 100
}
