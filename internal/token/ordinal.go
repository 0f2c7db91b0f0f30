package token

// Ordinal is a positive integer ordinal ("third", "21st").
type Ordinal struct {
	Value int
}

func (Ordinal) Dimension() Dimension { return DimOrdinal }
func (o Ordinal) Equal(other Token) bool { return equalByReflection(o, other) }
func (Ordinal) ducktypeToken()       {}
