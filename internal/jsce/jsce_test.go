package jsce

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gorwall/internal/rebar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDerivedStrengths(t *testing.T) {
	c := Default()

	assert.InDelta(t, 30/1.3, c.Fcd(), 1e-12)
	assert.Equal(t, 345.0, c.Fyd())
	assert.InDelta(t, 0.28*math.Pow(30, 2.0/3)/1.3, c.Fbod(), 1e-12)
	assert.InDelta(t, 0.2*math.Pow(30/1.3, 1.0/3), c.Fvcd(), 1e-12)
	assert.InDelta(t, math.Pi/12, c.Beta1, 1e-15)
	require.NoError(t, c.Validate())
}

func TestImportanceFactor(t *testing.T) {
	c := Default()
	assert.Equal(t, 1.15, c.ImportanceFactor(Permanent))
	assert.Equal(t, 1.0, c.ImportanceFactor(Seismic))
}

func TestParseLoadCase(t *testing.T) {
	lc, err := ParseLoadCase("Seismic")
	require.NoError(t, err)
	assert.Equal(t, Seismic, lc)
	assert.Equal(t, "seismic", lc.String())

	lc, err = ParseLoadCase("static")
	require.NoError(t, err)
	assert.Equal(t, Permanent, lc)

	_, err = ParseLoadCase("wind")
	assert.Error(t, err)
	assert.Equal(t, "LoadCase(7)", LoadCase(7).String())
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "constants.yaml")

	overrides := map[string]float64{
		"height":        5.0,
		"seismic_coeff": 0.25,
	}
	data, err := yaml.Marshal(overrides)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, c.Height)
	assert.Equal(t, 0.25, c.SeismicCoeff)
	// untouched keys keep their defaults
	assert.Equal(t, Default().Fck, c.Fck)
	assert.Equal(t, Default().K1, c.K1)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("fck: 0\n"))
	assert.ErrorContains(t, err, "fck must be positive")

	_, err = Parse([]byte("k2: -0.1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("height: [1, 2]\n"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsUnknownDistributionBar(t *testing.T) {
	_, err := Parse([]byte("distribution_bar: 10\n"))
	assert.ErrorIs(t, err, rebar.ErrUnknownDiameter)
}
