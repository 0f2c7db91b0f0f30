// Package rank implements the Naive-Bayes candidate ranker and the antichain selection it feeds.
package rank

import "math"

// ClassData holds one class (ok or ko) of a per-rule Naive Bayes
// classifier: log-probabilities only, including -Inf, which must
// round-trip through serialization.
type ClassData struct {
	Prior       float64
	Unseen      float64
	Likelihoods map[string]float64
	N           int32
}

// Classifier is the per-rule-name pair of class data. Only Ok is consulted at inference time; Ko is retained
// for offline training.
type Classifier struct {
	Ok ClassData
	Ko ClassData
}

// Score computes log p(class) + sum count(f) * log p(f|class) over the
// ok class for the given feature multiset, using the classifier's
// unseen weight for features absent from Likelihoods.
func (c Classifier) Score(features []string) float64 {
	return scoreClass(c.Ok, features)
}

func scoreClass(class ClassData, features []string) float64 {
	score := class.Prior
	for _, f := range features {
		if lp, ok := class.Likelihoods[f]; ok {
			score += lp
		} else {
			score += class.Unseen
		}
	}
	return score
}

// Table is the registry's classifier lookup, keyed by rule name.
// Missing classifiers contribute 0 to a node's score.
type Table map[string]Classifier

// ScoreNode returns the per-rule ok-class score for a node's own rule
// name and feature bag, 0 when no classifier is registered for that
// rule.
func (t Table) ScoreNode(ruleName string, features []string) float64 {
	c, ok := t[ruleName]
	if !ok {
		return 0
	}
	return c.Score(features)
}

// negInf and posInf name the non-finite log-probabilities a ClassData can
// hold; internal/rank/classifierfile writes such values as the JSON
// string extensions "-Infinity"/"Infinity".
var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
