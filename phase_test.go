package astrochart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartWithLights(t *testing.T, sun, moon float64) *Chart {
	t.Helper()
	s := NewStaticEphemeris("lights")
	s.Add(natalMoment, EphemerisEntry{
		Positions: map[Object]Position{
			Sun:  {Longitude: sun},
			Moon: {Longitude: moon},
		},
	})
	c, err := NewChart(context.Background(), natalMoment, s, WithObjects(Sun, Moon))
	require.NoError(t, err)
	return c
}

func TestLunarPhase(t *testing.T) {
	tests := []struct {
		name       string
		sun, moon  float64
		phase      string
		waxing     bool
		elongation float64
	}{
		{"new", 10, 10, "New Moon", false, 0},
		{"waxing crescent", 350, 35, "Waxing Crescent", true, 45},
		{"first quarter", 100, 190, "First Quarter", true, 90},
		{"waxing gibbous", 0, 135, "Waxing Gibbous", true, 135},
		{"full", 0, 180, "Full Moon", false, 180},
		{"waning gibbous", 180, 45, "Waning Gibbous", false, 135},
		{"last quarter", 130, 40, "Last Quarter", false, 90},
		{"waning crescent", 20, 335, "Waning Crescent", false, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph, err := chartWithLights(t, tt.sun, tt.moon).LunarPhase()
			require.NoError(t, err)
			assert.Equal(t, tt.phase, ph.Name)
			assert.Equal(t, tt.waxing, ph.Waxing)
			assert.InDelta(t, tt.elongation, ph.Elongation, 1e-9)
			assert.GreaterOrEqual(t, ph.Fraction, 0.0)
			assert.LessOrEqual(t, ph.Fraction, 1.0)
		})
	}
}

func TestPhaseNameWindows(t *testing.T) {
	tests := []struct {
		elong  float64
		waxing bool
		want   string
	}{
		{11.9, true, "New Moon"},
		{12, true, "Waxing Crescent"},
		{83.9, true, "Waxing Crescent"},
		{84.1, true, "First Quarter"},
		{95.9, false, "Last Quarter"},
		{96, false, "Waning Gibbous"},
		{168, true, "Waxing Gibbous"},
		{168.1, false, "Full Moon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phaseName(tt.elong, tt.waxing), "elongation %v", tt.elong)
	}
}

func TestLunarPhaseNeedsLights(t *testing.T) {
	c := natalChart(t, WithObjects(Sun))
	_, err := c.LunarPhase()
	assert.ErrorIs(t, err, ErrObjectNotSupported)
}
