package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeAnchoredClearsLatent(t *testing.T) {
	latent := Time{Form: Hour{Hour: 3}, Latent: true}
	anchored := latent.Anchored()

	assert.True(t, latent.Latent, "Anchored must not mutate the receiver")
	assert.False(t, anchored.Latent)
	assert.Equal(t, latent.Form, anchored.Form)
}

func TestTimeEqualDistinguishesLatency(t *testing.T) {
	a := Time{Form: Hour{Hour: 3}, Latent: true}
	b := Time{Form: Hour{Hour: 3}, Latent: false}

	assert.False(t, a.Equal(b))
}

func TestTimeEqualAgainstNonTimeToken(t *testing.T) {
	a := Time{Form: Hour{Hour: 3}}
	assert.False(t, a.Equal(Numeral{Value: 3}))
}

func TestGrainStringAndCoarser(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "year", Year.String())
	assert.True(t, Year.Coarser(Day))
	assert.False(t, Day.Coarser(Year))
}
