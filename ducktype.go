// Package ducktype recognizes numeric and temporal dimensions in free-form
// text: cardinal numerals, ordinals, amounts of money, distances, volumes,
// quantities, temperatures, durations, and date/time expressions. For an
// input string and target dimension set it returns a set of non-overlapping
// entities, each carrying a character range, a resolved semantic value, and
// a latency flag.
//
// Parse wires together the chart parser (internal/engine), the
// Naive-Bayes ranker (internal/rank), the overlap filter
// (internal/overlap), and a value/time resolver (resolve) into the single
// entry point described in spec §6. Concrete per-locale grammars live in
// internal/grammar/<lang> and register themselves with internal/locale at
// package-init time; importing a grammar package for its side effect is
// what makes a locale available to Parse.
package ducktype

import (
	"context"
	"fmt"
	"time"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/engine"
	"github.com/openacta/ducktype/internal/locale"
	"github.com/openacta/ducktype/internal/overlap"
	"github.com/openacta/ducktype/internal/rank"
	"github.com/openacta/ducktype/internal/token"
	"github.com/openacta/ducktype/resolve"
)

// Entity is a single recognized span of text: its character range, the
// substring it covers, its dimension, its resolved value, and whether it
// is latent (only ever populated when the caller passed IncludeLatent).
type Entity struct {
	Start     int
	End       int
	Text      string
	Dimension token.Dimension
	Value     resolve.ResolvedValue
	Latent    bool
}

// Range implements overlap.Span so the post-resolution overlap filter
// (spec §4.7) can operate directly on a slice of Entity.
func (e Entity) Range() (start, end int) { return e.Start, e.End }

// DefaultResolver is the Resolver Parse uses when the caller doesn't wire
// in its own. It is a package variable, not a hardcoded call, so an
// embedder with its own calendar/holiday data can replace it.
var DefaultResolver resolve.Resolver = resolve.CalendarResolver{}

// Options controls the parts of Parse's behavior that aren't captured by
// the (text, locale, dims, reference) tuple spec §6 names directly.
type Options struct {
	// IncludeLatent, when true, allows latent time tokens (spec §4.5,
	// invariant 4) to appear in the returned entities. Default false.
	IncludeLatent bool
	// Resolver overrides DefaultResolver for this call.
	Resolver resolve.Resolver
}

// Parse is the top-level entry point from spec §6. An empty dims is
// interpreted as "all" dimensions. ref may be nil, in which case the
// reference instant defaults to the current time in UTC.
func Parse(text string, loc locale.Locale, dims map[token.Dimension]bool, ref *resolve.ReferenceContext) ([]Entity, error) {
	return ParseContext(context.Background(), text, loc, dims, ref, Options{})
}

// ParseContext is Parse with an explicit context and Options. Cancellation
// is checked only at chart-closure iteration boundaries (spec §5); a
// cancelled parse returns engine.ErrCancelled and whatever the chart had
// saturated to at that point is discarded, per spec's "no partial results"
// rule in §7.
func ParseContext(ctx context.Context, text string, loc locale.Locale, dims map[token.Dimension]bool, ref *resolve.ReferenceContext, opts Options) ([]Entity, error) {
	reg, err := locale.Lookup(loc)
	if err != nil {
		return nil, err
	}

	c, err := engine.Parse(ctx, text, reg)
	if err != nil {
		return nil, err
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = DefaultResolver
	}
	refCtx := effectiveReference(ref)

	winners := rank.Select(candidatesOf(c, reg.Classifiers, dims))

	entities := make([]Entity, 0, len(winners))
	for _, n := range winners {
		latent := isLatentTime(n.Token)
		if latent && !opts.IncludeLatent {
			continue
		}
		if len(dims) > 0 && !dims[n.Token.Dimension()] {
			continue
		}
		value, err := resolveToken(n.Token, latent, refCtx, resolver)
		if err != nil {
			// Resolution failure is a silent non-candidacy outcome, same
			// taxonomy as a production rejection (spec §7): the core
			// already committed to this token at ranking time, but if
			// the resolver can't anchor it (e.g. a Season with no
			// hemisphere convention), the entity is simply omitted.
			continue
		}
		entities = append(entities, Entity{
			Start:     n.Range.Start,
			End:       n.Range.End,
			Text:      text[n.Range.Start:n.Range.End],
			Dimension: n.Token.Dimension(),
			Value:     value,
			Latent:    latent,
		})
	}

	return overlap.Filter(entities), nil
}

// ParseAll parses every text in texts against the same locale/dims/reference,
// partitioning the batch across a bounded worker pool per spec §5's "a
// caller wishing to parallelize over many inputs partitions inputs across
// worker threads; each worker holds a cheap handle to the shared registry"
// guidance. Grounded on n0madic-go-brain's
// ParallelProcessingThreshold-gated dispatch (parser/brain.go): parallel
// processing only kicks in once the batch is large enough that dispatch
// overhead is worth paying, adapted from "threshold on log-group size" to
// "threshold on input-batch size". Results preserve the input order.
func ParseAll(ctx context.Context, texts []string, loc locale.Locale, dims map[token.Dimension]bool, ref *resolve.ReferenceContext, opts Options) ([][]Entity, error) {
	const parallelThreshold = 8

	results := make([][]Entity, len(texts))
	errs := make([]error, len(texts))

	if len(texts) < parallelThreshold {
		for i, t := range texts {
			results[i], errs[i] = ParseContext(ctx, t, loc, dims, ref, opts)
		}
		return results, firstError(errs)
	}

	workers := 4
	jobs := make(chan int)
	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				results[i], errs[i] = ParseContext(ctx, texts[i], loc, dims, ref, opts)
			}
			done <- struct{}{}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	return results, firstError(errs)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// effectiveReference fills in a default reference context (now, UTC) when
// the caller passed nil, per "ref: ReferenceContext?" in spec §6.
func effectiveReference(ref *resolve.ReferenceContext) resolve.ReferenceContext {
	if ref != nil {
		return *ref
	}
	return resolve.ReferenceContext{ReferenceInstant: time.Now().UTC(), DefaultTimezone: "UTC"}
}

// candidatesOf flattens every chart node with a recognizable (non
// internal-regex-match) dimension into a rank.Candidate, scored against
// reg's classifier table. An empty dims map means every dimension is a
// target, per spec §6.
func candidatesOf(c *chart.Chart, table rank.Table, dims map[token.Dimension]bool) []rank.Candidate {
	all := c.All()
	candidates := make([]rank.Candidate, 0, len(all))
	for _, n := range all {
		d := n.Token.Dimension()
		if d == token.DimRegexMatch {
			continue
		}
		candidates = append(candidates, rank.Candidate{
			Node:     n,
			Score:    rank.TreeScore(n, table),
			IsTarget: len(dims) == 0 || dims[d],
		})
	}
	return candidates
}

func isLatentTime(t token.Token) bool {
	tm, ok := t.(token.Time)
	return ok && tm.Latent
}

// resolveToken anchors t to a concrete value. A latent time token never
// reaches the resolver (spec §4.8's "any Time token reaching resolution is
// not latent" guarantee) — when the caller asked for latent output, it is
// passed through unresolved instead.
func resolveToken(t token.Token, latent bool, ref resolve.ReferenceContext, resolver resolve.Resolver) (resolve.ResolvedValue, error) {
	tm, ok := t.(token.Time)
	if !ok {
		return resolve.Passthrough(t), nil
	}
	if tm.Latent {
		if latent {
			return resolve.Passthrough(t), nil
		}
		return resolve.ResolvedValue{}, fmt.Errorf("ducktype: latent time token excluded from resolution")
	}
	return resolver.Resolve(tm, ref)
}
