package rank

import (
	"strings"

	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/token"
)

// NodeFeatures returns the feature bag for scoring a single internal
// node under its own rule's classifier: the rule-children feature
// (concatenation of the rule names of its direct children, empty string
// if it has none) and the grain feature (concatenation of the grain
// strings of any Duration and TimeGrain children, and of Time children
// whose form is a GrainOffset; other Time children contribute no grain),
// emitted only when non-empty.
func NodeFeatures(n *chart.Node) []string {
	features := make([]string, 0, 2)
	features = append(features, ruleChildrenFeature(n))
	if gf := grainFeature(n); gf != "" {
		features = append(features, gf)
	}
	return features
}

func ruleChildrenFeature(n *chart.Node) string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.RuleName)
	}
	return strings.Join(names, "")
}

func grainFeature(n *chart.Node) string {
	var grains []string
	for _, c := range n.Children {
		if g, ok := grainOf(c.Token); ok {
			grains = append(grains, g.String())
		}
	}
	return strings.Join(grains, "")
}

func grainOf(t token.Token) (token.Grain, bool) {
	switch v := t.(type) {
	case token.Duration:
		return v.Grain, true
	case token.GrainToken:
		return v.Grain, true
	case token.Time:
		if go_, ok := v.Form.(token.GrainOffset); ok {
			return go_.Grain, true
		}
	}
	return 0, false
}

// TreeScore is the sum of per-node ok-class scores over every internal
// node of the parse tree rooted at n.
// Leaf regex nodes carry no rule name and are not scored directly, but
// contribute through their parent's rule-children/grain features.
func TreeScore(n *chart.Node, table Table) float64 {
	var total float64
	var walk func(*chart.Node)
	walk = func(cur *chart.Node) {
		if !cur.IsLeaf() {
			total += table.ScoreNode(cur.RuleName, NodeFeatures(cur))
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return total
}
