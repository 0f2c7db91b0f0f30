package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleIsNotUnitOnly(t *testing.T) {
	m := Single(5)
	assert.False(t, m.IsUnitOnly())
	assert.Equal(t, 5.0, *m.Value)
}

func TestBetweenIsNotUnitOnly(t *testing.T) {
	m := Between(10, 20)
	assert.False(t, m.IsUnitOnly())
	assert.Equal(t, 10.0, *m.Min)
	assert.Equal(t, 20.0, *m.Max)
}

func TestUnitOnly(t *testing.T) {
	m := UnitOnly()
	assert.True(t, m.IsUnitOnly())
}

func TestMeasurementEqual(t *testing.T) {
	a := Single(5)
	b := Single(5)
	c := Single(6)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(UnitOnly()))
}

func TestMeasurementEqualConsidersProduct(t *testing.T) {
	a := Single(12).WithProduct("eggs")
	b := Single(12).WithProduct("eggs")
	c := Single(12).WithProduct("donuts")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestWithProductDoesNotMutateReceiver(t *testing.T) {
	base := Single(1)
	_ = base.WithProduct("eggs")
	assert.Equal(t, "", base.Product)
}
