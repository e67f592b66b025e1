package astrochart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thirtyDegreeCusps() HouseCusps {
	var hc HouseCusps
	for i := range hc.Cusps {
		hc.Cusps[i] = 30 * float64(i)
	}
	return hc
}

func TestHouseOf(t *testing.T) {
	hc := thirtyDegreeCusps()

	tests := []struct {
		lon  float64
		want House
	}{
		{45, House2},
		{5, House1},
		{0.0001, House1},
		{359.9, House12},
		{30, House1},
		{30.0001, House2},
		{0, House12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HouseOf(tt.lon, hc), "lon=%v", tt.lon)
	}
}

func TestHouseOfWrapsToHighestCusp(t *testing.T) {
	// Cusps rotated so House1 starts at 340 and House2 wraps through 0.
	var hc HouseCusps
	for i := range hc.Cusps {
		hc.Cusps[i] = NormalizeDegrees(340 + 30*float64(i))
	}

	assert.Equal(t, House1, HouseOf(5, hc))
	assert.Equal(t, House1, HouseOf(345, hc))
	assert.Equal(t, House2, HouseOf(15, hc))
	assert.Equal(t, House12, HouseOf(335, hc))
}

func TestHouseOfPointIsInclusive(t *testing.T) {
	hc := thirtyDegreeCusps()

	for h := House1; h.Valid(); h++ {
		cusp, err := hc.Cusp(h)
		require.NoError(t, err)
		assert.Equal(t, h, HouseOfPoint(cusp, hc), "cusp of %s", h)
	}

	assert.Equal(t, House1, HouseOfPoint(30, hc))
	assert.Equal(t, House2, HouseOfPoint(30.5, hc))
	assert.Equal(t, House12, HouseOf(0, hc))
	assert.Equal(t, House1, HouseOfPoint(0, hc))
}

func TestHouseFromNumber(t *testing.T) {
	for n := 1; n <= 12; n++ {
		h, err := HouseFromNumber(n)
		require.NoError(t, err)
		assert.Equal(t, n, int(h))
	}
	for _, n := range []int{0, 13, -1} {
		_, err := HouseFromNumber(n)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestHouseCuspsLookup(t *testing.T) {
	hc := natalCusps()

	v, err := hc.Cusp(House10)
	require.NoError(t, err)
	assert.InDelta(t, 285.0, v, 1e-12)

	v, err = hc.Point(Midheaven)
	require.NoError(t, err)
	assert.InDelta(t, 285.0, v, 1e-12)

	_, err = hc.Cusp(House(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = hc.Point(Cross(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseHouseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want HouseSystem
	}{
		{"Placidus", Placidus},
		{"placidus", Placidus},
		{"whole sign", WholeSign},
		{"whole_sign", WholeSign},
		{"Equal", Equal},
		{"Equal MC", EqualMC},
		{"koch", Koch},
		{"topocentric", PolichPage},
		{"Sunshine (Treindl solution)", SunshineTreindl},
	}
	for _, tt := range tests {
		got, err := ParseHouseSystem(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseHouseSystem("bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHouseNames(t *testing.T) {
	assert.Equal(t, "House7", House7.String())
	assert.Equal(t, "House(0)", House(0).String())
	assert.Equal(t, "Medium coeli", Midheaven.String())
	assert.Equal(t, "Imum coeli", ImumCoeli.String())
	assert.Equal(t, "Cross(9)", Cross(9).String())
	assert.Equal(t, "Equal Ascendant", Equal.String())
	assert.Equal(t, "Whole sign", WholeSign.String())
	assert.Equal(t, "HouseSystem(99)", HouseSystem(99).String())
}
