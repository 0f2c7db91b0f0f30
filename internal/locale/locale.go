// Package locale implements the per-(language,region) grammar registry: a
// flat rule list plus a precomputed dimension index, keyed by a
// two-letter language code and an optional two-letter region.
package locale

import (
	"errors"
	"fmt"
	"sync"

	"github.com/openacta/ducktype/internal/rank"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

// DefaultRegion is the sentinel region a locale falls back to when no
// region-specific registry was registered.
const DefaultRegion = "XX"

// Locale selects a grammar by (language, region).
type Locale struct {
	Language string
	Region   string
}

// String renders "language" or "language-REGION".
func (l Locale) String() string {
	if l.Region == "" || l.Region == DefaultRegion {
		return l.Language
	}
	return l.Language + "-" + l.Region
}

// Parse splits a "language" or "language-REGION" identifier.
func Parse(s string) Locale {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return Locale{Language: s[:i], Region: s[i+1:]}
		}
	}
	return Locale{Language: s, Region: DefaultRegion}
}

// Registry is a single locale's compiled grammar: its rule list plus a
// dimension index mapping dimension kind to the rules that can produce
// it.
type Registry struct {
	Locale Locale
	Rules  []rule.Rule
	// Classifiers holds the trained per-rule Naive Bayes weights (spec
	// §4.6); a rule with no entry here simply scores 0 and ranking falls
	// back entirely to antichain range domination for it.
	Classifiers rank.Table
	byDimension map[token.Dimension][]rule.Rule
}

// ByDimension returns the rules whose production targets dimension d.
func (reg *Registry) ByDimension(d token.Dimension) []rule.Rule {
	return reg.byDimension[d]
}

// ErrUnknownLocale is returned (not panicked) when a caller requests a
// locale with no registered grammar — the one caller-facing error in the
// core's taxonomy besides a malformed classifier file.
var ErrUnknownLocale = errors.New("ducktype: unknown locale")

var (
	mu        sync.RWMutex
	registry  = map[string]*Registry{}
)

// Register installs reg under its Locale, building the dimension index.
// It is intended to run once per locale at package-init time from each
// internal/grammar/<lang> package's init() (grounded on OpenActa's
// lexer.go init() compiling its regex tables once at startup); after
// Register calls complete, registries are read-only and safe for
// unsynchronized concurrent Lookup.
func Register(reg *Registry) {
	index := make(map[token.Dimension][]rule.Rule, 8)
	for _, r := range reg.Rules {
		index[r.Dimension] = append(index[r.Dimension], r)
	}
	reg.byDimension = index

	mu.Lock()
	defer mu.Unlock()
	registry[key(reg.Locale)] = reg
}

// Lookup resolves a (language, region) pair to its registry, falling
// back to the region-default sentinel when no region-specific grammar
// was registered. It returns ErrUnknownLocale when neither is registered.
func Lookup(loc Locale) (*Registry, error) {
	mu.RLock()
	defer mu.RUnlock()

	if reg, ok := registry[key(loc)]; ok {
		return reg, nil
	}
	fallback := Locale{Language: loc.Language, Region: DefaultRegion}
	if reg, ok := registry[key(fallback)]; ok {
		return reg, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, loc.String())
}

func key(l Locale) string {
	region := l.Region
	if region == "" {
		region = DefaultRegion
	}
	return l.Language + "-" + region
}
