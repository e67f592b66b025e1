package astrochart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	natalMoment   = time.Date(2024, time.March, 20, 3, 6, 0, 0, time.UTC)
	transitMoment = natalMoment.Add(24 * time.Hour)
)

// natalCusps are equal houses starting at 15° Aries.
func natalCusps() HouseCusps {
	var hc HouseCusps
	for i := range hc.Cusps {
		hc.Cusps[i] = 15 + 30*float64(i)
	}
	hc.Cross[Ascendant] = 15
	hc.Cross[ImumCoeli] = 105
	hc.Cross[Descendant] = 195
	hc.Cross[Midheaven] = 285
	hc.Cross[Vertex] = 220
	return hc
}

func testEphemeris() *StaticEphemeris {
	s := NewStaticEphemeris("test")
	s.Add(natalMoment, EphemerisEntry{
		Ayanamsa: 24,
		Positions: map[Object]Position{
			Sun:       {Longitude: 130, Distance: 1.01, SpeedLongitude: 0.98},
			Moon:      {Longitude: 40, Latitude: 4.1, Distance: 0.0025, SpeedLongitude: 13.2},
			Mercury:   {Longitude: 10, SpeedLongitude: -0.5},
			Venus:     {Longitude: 200, SpeedLongitude: 1.2},
			Mars:      {Longitude: 275, SpeedLongitude: 0.7},
			Jupiter:   {Longitude: 65, SpeedLongitude: 0.2},
			Saturn:    {Longitude: 345, SpeedLongitude: 0.1},
			Uranus:    {Longitude: 50, SpeedLongitude: 0.04},
			Neptune:   {Longitude: 355, SpeedLongitude: 0.02},
			Pluto:     {Longitude: 300, SpeedLongitude: -0.01},
			NorthNode: {Longitude: 100, SpeedLongitude: -0.05},
			SouthNode: {Longitude: 280, SpeedLongitude: -0.05},
		},
		Houses: map[HouseSystem]HouseCusps{
			Placidus: natalCusps(),
		},
	})
	s.Add(transitMoment, EphemerisEntry{
		Ayanamsa: 24,
		Positions: map[Object]Position{
			Sun:  {Longitude: 131, SpeedLongitude: 0.98},
			Moon: {Longitude: 53.2, SpeedLongitude: 13.2},
		},
	})
	return s
}

func natalChart(t *testing.T, opts ...Option) *Chart {
	t.Helper()
	c, err := NewChart(context.Background(), natalMoment, testEphemeris(), opts...)
	require.NoError(t, err)
	return c
}

var errBoom = errors.New("boom")

// failingProvider delegates to Provider except for the call named in failOn.
type failingProvider struct {
	Provider
	failOn string
}

func (f failingProvider) Ayanamsa(ctx context.Context, t time.Time) (float64, error) {
	if f.failOn == "ayanamsa" {
		return 0, errBoom
	}
	return f.Provider.Ayanamsa(ctx, t)
}

func (f failingProvider) PositionOf(ctx context.Context, o Object, t time.Time, mode CalculationMode) (Position, error) {
	if f.failOn == "position" {
		return Position{}, errBoom
	}
	return f.Provider.PositionOf(ctx, o, t, mode)
}

func (f failingProvider) HousesOf(ctx context.Context, t time.Time, loc Coordinates, hs HouseSystem, mode CalculationMode) (HouseCusps, error) {
	if f.failOn == "houses" {
		return HouseCusps{}, errBoom
	}
	return f.Provider.HousesOf(ctx, t, loc, hs, mode)
}
