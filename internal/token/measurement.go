package token

import "github.com/openacta/ducktype/internal/value"

// Money, Quantity, Volume, Distance, and Temperature all share the uniform
// "value-or-interval-or-unit-only" shape from value.Measurement, with a
// plain string unit/currency field instead of a closed enum. Currency
// codes are plain strings here (e.g. ISO 4217 "USD") validated against
// golang.org/x/text/currency at production time in the grammar, not
// re-validated by the token type itself — the token is a value object,
// validation is the rule's job.

// Money is an amount-of-money token.
type Money struct {
	Currency string
	value.Measurement
}

func (Money) Dimension() Dimension { return DimMoney }
func (m Money) Equal(o Token) bool {
	other, ok := o.(Money)
	return ok && m.Currency == other.Currency && m.Measurement.Equal(other.Measurement)
}
func (Money) ducktypeToken() {}

// Quantity is a countable-unit token ("3 dozen eggs").
type Quantity struct {
	Unit string
	value.Measurement
}

func (Quantity) Dimension() Dimension { return DimQuantity }
func (q Quantity) Equal(o Token) bool {
	other, ok := o.(Quantity)
	return ok && q.Unit == other.Unit && q.Measurement.Equal(other.Measurement)
}
func (Quantity) ducktypeToken() {}

// Volume is a volume-unit token (liters, gallons,...).
type Volume struct {
	Unit string
	value.Measurement
}

func (Volume) Dimension() Dimension { return DimVolume }
func (v Volume) Equal(o Token) bool {
	other, ok := o.(Volume)
	return ok && v.Unit == other.Unit && v.Measurement.Equal(other.Measurement)
}
func (Volume) ducktypeToken() {}

// Distance is a distance-unit token (meters, miles,...).
type Distance struct {
	Unit string
	value.Measurement
}

func (Distance) Dimension() Dimension { return DimDistance }
func (d Distance) Equal(o Token) bool {
	other, ok := o.(Distance)
	return ok && d.Unit == other.Unit && d.Measurement.Equal(other.Measurement)
}
func (Distance) ducktypeToken() {}

// Temperature is a temperature-unit token (celsius, fahrenheit,...).
type Temperature struct {
	Unit string
	value.Measurement
}

func (Temperature) Dimension() Dimension { return DimTemperature }
func (t Temperature) Equal(o Token) bool {
	other, ok := o.(Temperature)
	return ok && t.Unit == other.Unit && t.Measurement.Equal(other.Measurement)
}
func (Temperature) ducktypeToken() {}
