// Package rule implements the Rule type: a named, ordered
// pattern sequence plus a production closure mapping matched child nodes
// to a new token.
package rule

import (
	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/token"
)

// Produce maps the matched child nodes (exactly len(Pattern) of them, in
// pattern order) to a new token. Production is non-total: returning
// (_, false) is a normal pruning signal, not an error.
type Produce func(children []*chart.Node) (token.Token, bool)

// Rule is a named, ordered pattern sequence with a production function
//. Name doubles as the classifier lookup key and
// is a public contract against the classifier files. Dimension is declared up front rather than probed from
// Produce, since probing would mean invoking an arbitrary closure with
// fabricated children before real matches exist; the registry's
// dimension index is built directly from this field.
type Rule struct {
	Name      string
	Dimension token.Dimension
	Pattern   []pattern.Item
	Produce   Produce
}
