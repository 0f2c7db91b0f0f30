package token

// Duration is a signed count of a time grain ("3 days", "-2 weeks" for
// "2 weeks ago").
type Duration struct {
	Count int
	Grain Grain
}

func (Duration) Dimension() Dimension  { return DimDuration }
func (d Duration) Equal(o Token) bool  { return equalByReflection(d, o) }
func (Duration) ducktypeToken()        {}

// RegexMatch is the internal leaf token produced by a regex pattern item,
// carrying its capture groups for the production step that consumes it
//. It is never itself emitted as a
// final entity — only as an intermediate chart node feeding a rule
// production.
type RegexMatch struct {
	Groups []string
}

func (RegexMatch) Dimension() Dimension { return DimRegexMatch }
func (r RegexMatch) Equal(o Token) bool { return equalByReflection(r, o) }
func (RegexMatch) ducktypeToken()       {}
