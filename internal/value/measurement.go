// Package value implements the shared "value, interval, or unit-only"
// shape used by every measurement-like token (money, quantity, volume,
// distance, temperature).
package value

// Measurement carries either a single value, a closed (min,max) interval,
// or neither (a bare unit with no quantity attached, e.g. "a few dollars").
// Product is an optional free-text qualifier ("a dozen eggs" -> product
// "eggs" on the quantity token); it is orthogonal to Value/Min/Max.
type Measurement struct {
	Value   *float64
	Min     *float64
	Max     *float64
	Product string
}

// Single builds a Measurement carrying one exact value.
func Single(v float64) Measurement {
	return Measurement{Value: &v}
}

// Between builds a Measurement carrying a closed interval. Callers must
// not construct an inverted interval (min > max); a rule's production
// function should return (nil, false) rather than build one — rejection
// is a normal pruning signal, not a panic.
func Between(min, max float64) Measurement {
	return Measurement{Min: &min, Max: &max}
}

// UnitOnly builds a Measurement with no numeric payload at all.
func UnitOnly() Measurement {
	return Measurement{}
}

// IsUnitOnly reports whether m carries neither a value nor an interval.
func (m Measurement) IsUnitOnly() bool {
	return m.Value == nil && m.Min == nil && m.Max == nil
}

// Equal is structural equality, required by chart node dedup.
func (m Measurement) Equal(o Measurement) bool {
	return floatPtrEqual(m.Value, o.Value) &&
		floatPtrEqual(m.Min, o.Min) &&
		floatPtrEqual(m.Max, o.Max) &&
		m.Product == o.Product
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// WithProduct returns a copy of m with Product set.
func (m Measurement) WithProduct(product string) Measurement {
	m.Product = product
	return m
}
