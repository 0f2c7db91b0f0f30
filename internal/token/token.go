// Package token implements the closed tagged union of token payloads the
// chart parser produces and the ranker scores: numerals, ordinals,
// amounts of money, quantities, volumes, distances, temperatures,
// durations, grains, times, and raw regex matches.
//
// The union is closed: Token is satisfied only by the concrete types
// declared in this package (the unexported ducktypeToken method is the
// seal), mirroring the exhaustive TokenType enum in Duckling's original
// Rust source and the closed TokenType DSL enum grounding this design
// (jcom-dev-zmanim's api/internal/dsl/token.go). Go has no native closed
// sum type, so an interface with an unexported marker method is the
// idiomatic substitute; adding a dimension means adding a concrete type
// here and extending Dimension's const block and rank.NodeFeatures.
package token

import "reflect"

// Dimension is the top-level category of a token; callers filter output
// by dimension.
type Dimension string

const (
	DimNumeral     Dimension = "numeral"
	DimOrdinal     Dimension = "ordinal"
	DimMoney       Dimension = "amount-of-money"
	DimQuantity    Dimension = "quantity"
	DimVolume      Dimension = "volume"
	DimDistance    Dimension = "distance"
	DimTemperature Dimension = "temperature"
	DimDuration    Dimension = "duration"
	DimGrain       Dimension = "grain"
	DimTime        Dimension = "time"
	DimRegexMatch  Dimension = "regex-match"
)

// Token is the sealed interface every recognizable payload implements.
type Token interface {
	// Dimension returns the token's top-level category.
	Dimension() Dimension
	// Equal is structural equality, required by chart-node dedup
	// and by the ranker's post-selection duplicate collapse.
	Equal(Token) bool

	ducktypeToken()
}

// equalByReflection is the fallback structural-equality helper shared by
// the token variants whose fields are all comparable by value (pointers to
// float64/int/string, nested closed-union fields). Using reflect.DeepEqual
// here is a deliberate, narrow use of the standard library: none of the
// pack's examples ship an equality-generation library, and hand-writing a
// field-by-field Equal for every one of the 27 TimeForm variants plus the
// six token variants that use this helper would be pure boilerplate with no behavioral
// difference from DeepEqual on these plain value structs.
func equalByReflection(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
