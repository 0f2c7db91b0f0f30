package token

// Grain is the temporal coarseness of a token, totally ordered from finest
// to coarsest.
type Grain int

const (
	Second Grain = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

var grainNames = [...]string{"second", "minute", "hour", "day", "week", "month", "quarter", "year"}

// String renders the grain the way rule-children/grain ranking features
// key on it.
func (g Grain) String() string {
	if g < Second || g > Year {
		return "unknown-grain"
	}
	return grainNames[g]
}

// Coarser reports whether g is a coarser (larger) grain than o.
func (g Grain) Coarser(o Grain) bool { return g > o }

// GrainToken is the standalone TimeGrain token variant: a bare grain
// mention ("a month", "every week") distinct from a Duration's or Time
// form's embedded Grain field.
type GrainToken struct {
	Grain Grain
}

func (GrainToken) Dimension() Dimension       { return DimGrain }
func (g GrainToken) Equal(o Token) bool       { return equalByReflection(g, o) }
func (GrainToken) ducktypeToken()             {}
