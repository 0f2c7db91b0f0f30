package classifierfile

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacta/ducktype/internal/rank"
)

func TestLoadSampleClassifierFile(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	require.Contains(t, table, "numeral(multiply)")
	c := table["numeral(multiply)"]
	assert.InDelta(t, -0.1, c.Ok.Prior, 1e-9)
	assert.Equal(t, int32(64), c.Ok.N)
	assert.InDelta(t, -0.2, c.Ok.Likelihoods["numeral(digit)numeral(grain-word)"], 1e-9)
}

func TestLoadHandlesInfinitySentinels(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	c := table["money(between-interval)"]
	assert.True(t, math.IsInf(c.Ko.Prior, -1), "the -Infinity JSON string sentinel must decode to math.Inf(-1)")
}

func TestLoadUnknownFilePath(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.json"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := rank.Table{
		"duration(numeral-grain)": rank.Classifier{
			Ok: rank.ClassData{Prior: -0.2, Unseen: -3.1, Likelihoods: map[string]float64{"f": -1.5}, N: 7},
			Ko: rank.ClassData{Prior: math.Inf(-1), Unseen: -4, Likelihoods: map[string]float64{}, N: 3},
		},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.json")
	require.NoError(t, Save(path, original))

	got, err := Load(path)
	require.NoError(t, err)

	require.Contains(t, got, "duration(numeral-grain)")
	c := got["duration(numeral-grain)"]
	assert.InDelta(t, -0.2, c.Ok.Prior, 1e-9)
	assert.Equal(t, int32(7), c.Ok.N)
	assert.True(t, math.IsInf(c.Ko.Prior, -1))
}

func TestLoadOverlayMergesLikelihoodsOnly(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	originalPrior := table["numeral(multiply)"].Ok.Prior

	err = LoadOverlay(filepath.Join("testdata", "overlay.yaml"), table)
	require.NoError(t, err)

	c := table["numeral(multiply)"]
	assert.InDelta(t, -0.15, c.Ok.Likelihoods["numeral(digit)numeral(grain-word)"], 1e-9)
	assert.InDelta(t, -0.4, c.Ok.Likelihoods["numeral(ones)numeral(grain-word)"], 1e-9)
	assert.InDelta(t, originalPrior, c.Ok.Prior, 1e-9, "overlay must not touch prior/unseen/n")
}

func TestLoadOverlaySkipsRulesAbsentFromTable(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	err = LoadOverlay(filepath.Join("testdata", "overlay.yaml"), table)
	require.NoError(t, err)

	assert.NotContains(t, table, "rule-not-in-base-table")
}
