// Command ducktype is a demo CLI over the core library: it parses a line
// of text against a locale and dimension set and renders the resulting
// entities as a table or as JSON.
//
// Grounded on GiGurra-subscription-detector's main.go: a boa.CmdT[Params]
// struct-tag-driven argument binding wrapping cobra, and a
// --output table|json switch rendered with go-pretty's table writer in
// one mode and encoding/json in the other (internal/output.go's
// PrintSubscriptionsTable/PrintSubscriptionsJSON pair), adapted from
// "subscriptions" rows to "entities" rows.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openacta/ducktype"
	_ "github.com/openacta/ducktype/internal/grammar/en"
	"github.com/openacta/ducktype/internal/locale"
	"github.com/openacta/ducktype/internal/token"
	"github.com/openacta/ducktype/resolve"
)

// Params is the CLI's argument surface, bound by boa the same way
// GiGurra-subscription-detector's Params struct is: descr/alts/default
// struct tags drive both the flag definitions and cobra's help text.
type Params struct {
	Text      string   `descr:"Text to parse" positional:"true"`
	Locale    string   `descr:"Locale, e.g. en-US" default:"en-US"`
	Dims      []string `descr:"Dimensions to restrict output to (empty = all)" optional:"true"`
	Output    string   `descr:"Output format" default:"table" alts:"table,json" strict:"true"`
	Latent    bool     `descr:"Include latent time entities" optional:"true"`
	Reference string   `descr:"Reference instant, RFC3339 (default now, UTC)" optional:"true"`
	Verbose   bool     `descr:"Enable debug logging of rule firings and production rejections" optional:"true"`
}

func main() {
	boa.CmdT[Params]{
		Use:   "ducktype",
		Short: "Recognize numeric and temporal entities in free text",
		Long:  "Parses a line of text against a locale and dimension set and prints the recognized entities.",
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
			boa.ParamEnricherBool,
		),
		RunFunc: run,
	}.Run()
}

func run(params *Params, _ *cobra.Command, _ []string) {
	logrus.SetLevel(logrus.WarnLevel)
	if params.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	loc := locale.Parse(params.Locale)
	dims := dimSet(params.Dims)
	ref, err := referenceContext(params.Reference)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entities, err := ducktype.ParseContext(context.Background(), params.Text, loc, dims, ref, ducktype.Options{IncludeLatent: params.Latent})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch params.Output {
	case "json":
		printJSON(os.Stdout, entities)
	default:
		printTable(os.Stdout, entities)
	}
}

func dimSet(names []string) map[token.Dimension]bool {
	if len(names) == 0 {
		return nil
	}
	out := make(map[token.Dimension]bool, len(names))
	for _, n := range names {
		out[token.Dimension(strings.TrimSpace(n))] = true
	}
	return out
}

func referenceContext(rfc3339 string) (*resolve.ReferenceContext, error) {
	if rfc3339 == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return nil, fmt.Errorf("parsing --reference: %w", err)
	}
	return &resolve.ReferenceContext{ReferenceInstant: t, DefaultTimezone: "UTC"}, nil
}
