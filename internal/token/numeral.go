package token

import "math"

// Numeral is a real-valued number, optionally carrying a power-of-ten
// grain used to compose "hundred", "thousand", etc. during multiplicative
// production.
type Numeral struct {
	Value float64
	// PowerOfTen is the grain exponent ("hundred" -> 2, "thousand" -> 3),
	// nil when the numeral carries no grain (a plain digit string).
	PowerOfTen *int
	// Multipliable marks a numeral that may be the left operand of a
	// multiplicative composition rule ("two hundred").
	Multipliable bool
	// Quantifier marks words like "dozen", "couple", "few" that behave as
	// numerals syntactically but are not ordinary cardinals.
	Quantifier bool
	// NotOkForTime suppresses this numeral from composing into an hour
	// ("oh-four-hundred" style numerals that would otherwise look like an
	// HHMM time but aren't meant to).
	NotOkForTime bool
}

func (Numeral) Dimension() Dimension { return DimNumeral }
func (n Numeral) Equal(o Token) bool { return equalByReflection(n, o) }
func (Numeral) ducktypeToken()       {}

// IsNatural reports whether v is integral, using a bitwise
// floor-equality test rather than an epsilon comparison. Multiplicative
// numeral composition can accumulate floating-point error ("twenty-one
// thousand" = 21 * 1000.0); DESIGN.md records the decision to use exact
// floor comparison rather than a tolerance.
func IsNatural(v float64) bool {
	return v == math.Floor(v)
}
