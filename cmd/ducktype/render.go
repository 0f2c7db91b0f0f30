package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/openacta/ducktype"
	"github.com/openacta/ducktype/internal/currencyfmt"
	"github.com/openacta/ducktype/internal/token"
)

// printTable renders entities with go-pretty, the same writer/header/row
// idiom as GiGurra-subscription-detector's internal/output.go
// (table.NewWriter, SetOutputMirror, AppendHeader, then one AppendRow per
// result), coloring the Latent column the way that file colors its
// status column with text.FgGreen/text.FgRed.
func printTable(w io.Writer, entities []ducktype.Entity) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Start", "End", "Text", "Dimension", "Value", "Latent"})

	for _, e := range entities {
		latent := text.FgGreen.Sprint("no")
		if e.Latent {
			latent = text.FgRed.Sprint("yes")
		}
		t.AppendRow(table.Row{e.Start, e.End, e.Text, string(e.Dimension), valueString(e), latent})
	}

	t.Render()
}

func valueString(e ducktype.Entity) string {
	if e.Value.Instant != nil {
		if e.Value.IntervalEnd != nil {
			return fmt.Sprintf("%s .. %s", e.Value.Instant.Format(time.RFC3339), e.Value.IntervalEnd.Format(time.RFC3339))
		}
		return e.Value.Instant.Format(time.RFC3339)
	}
	if s, ok := moneyString(e.Value.Token); ok {
		return s
	}
	return fmt.Sprintf("%v", e.Value.Token)
}

// moneyString renders a Money token with currencyfmt's locale-aware
// symbol and separator placement instead of the bare struct dump every
// other dimension falls back to.
func moneyString(t token.Token) (string, bool) {
	m, ok := t.(token.Money)
	if !ok {
		return "", false
	}
	switch {
	case m.Value != nil:
		return currencyfmt.Format(m.Currency, *m.Value), true
	case m.Min != nil && m.Max != nil:
		return currencyfmt.FormatRange(m.Currency, *m.Min, *m.Max), true
	default:
		return m.Currency, true
	}
}

// jsonEntity is the wire shape for --output json: a flattened view of
// Entity that marshals cleanly (Entity.Value.Token is an interface and
// doesn't round-trip, so JSON mode reports the resolved instant/interval
// fields for a time entity and, for every other entity, the same value
// string the table mode displays).
type jsonEntity struct {
	Start       int        `json:"start"`
	End         int        `json:"end"`
	Text        string     `json:"text"`
	Dimension   string     `json:"dimension"`
	Latent      bool       `json:"latent"`
	Instant     *time.Time `json:"instant,omitempty"`
	IntervalEnd *time.Time `json:"intervalEnd,omitempty"`
	Value       string     `json:"value,omitempty"`
}

func printJSON(w io.Writer, entities []ducktype.Entity) {
	out := make([]jsonEntity, 0, len(entities))
	for _, e := range entities {
		je := jsonEntity{
			Start:     e.Start,
			End:       e.End,
			Text:      e.Text,
			Dimension: string(e.Dimension),
			Latent:    e.Latent,
		}
		switch {
		case e.Value.Instant != nil:
			je.Instant = e.Value.Instant
			je.IntervalEnd = e.Value.IntervalEnd
		default:
			if s, ok := moneyString(e.Value.Token); ok {
				je.Value = s
			} else {
				je.Value = fmt.Sprintf("%v", e.Value.Token)
			}
		}
		out = append(out, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
