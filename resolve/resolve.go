// Package resolve defines the boundary between the core rule engine and
// concrete time/unit resolution, plus one reference implementation.
// Resolving a token to a real timestamp or unit-normalized quantity is
// locale- and application-specific, so the core only carries an opaque
// token.Time through to this boundary; everything else passes straight
// through as its own resolved value.
package resolve

import (
	"time"

	"github.com/openacta/ducktype/internal/token"
)

// ReferenceContext supplies the information a Resolver needs that isn't
// in the token itself: "now", for relative expressions, the timezone to
// assume when a token doesn't name one, and any locale-specific knobs
// (e.g. week start day).
type ReferenceContext struct {
	ReferenceInstant time.Time
	DefaultTimezone  string
	LocaleOptions    map[string]string
}

// ResolvedValue is what an Entity carries as its Value. Token is always
// the originating core token (so a caller never loses information the
// resolver didn't need); Instant and IntervalEnd are populated only when
// Token is a token.Time that a Resolver successfully anchored to a
// concrete timestamp.
type ResolvedValue struct {
	Token       token.Token
	Instant     *time.Time
	IntervalEnd *time.Time
	Grain       token.Grain
}

// Resolver anchors a time token to a concrete instant given a reference
// context. Any Time token reaching Resolve is guaranteed non-latent by
// the core.
type Resolver interface {
	Resolve(t token.Time, ref ReferenceContext) (ResolvedValue, error)
}

// Passthrough wraps a non-time token as an already-resolved value: the
// core's token IS the final semantic value for every dimension except
// time, so no resolver involvement is needed.
func Passthrough(t token.Token) ResolvedValue {
	return ResolvedValue{Token: t}
}
