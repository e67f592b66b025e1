package astrochart

import (
	"context"
	"fmt"
	"io"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/thurmanmarka/astrochart/internal/degree"
	"github.com/thurmanmarka/astrochart/internal/timeutil"
)

// EphemerisEntry is everything a StaticEphemeris knows about one moment.
// Houses are precomputed for a single observer, so the location passed to
// HousesOf is not consulted.
type EphemerisEntry struct {
	Ayanamsa  float64
	Positions map[Object]Position
	Houses    map[HouseSystem]HouseCusps
}

// StaticEphemeris is a Provider backed by an in-memory table of
// precomputed moments. It is safe for concurrent use.
type StaticEphemeris struct {
	name string

	mu      sync.RWMutex
	entries map[instant]EphemerisEntry
}

// instant identifies a moment without the int64 nanosecond range limit of
// UnixNano, which wraps outside the years 1678..2262.
type instant struct {
	sec  int64
	nsec int
}

func instantOf(t time.Time) instant {
	return instant{sec: t.Unix(), nsec: t.Nanosecond()}
}

// NewStaticEphemeris returns an empty table.
func NewStaticEphemeris(name string) *StaticEphemeris {
	return &StaticEphemeris{
		name:    name,
		entries: make(map[instant]EphemerisEntry),
	}
}

// Add stores e for the instant t, replacing any previous entry. The maps in
// e are copied.
func (s *StaticEphemeris) Add(t time.Time, e EphemerisEntry) {
	e.Positions = maps.Clone(e.Positions)
	e.Houses = maps.Clone(e.Houses)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[instantOf(t)] = e
}

// Len returns the number of stored moments.
func (s *StaticEphemeris) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *StaticEphemeris) Name() string {
	return s.name
}

func (s *StaticEphemeris) lookup(ctx context.Context, t time.Time) (EphemerisEntry, error) {
	if err := ctx.Err(); err != nil {
		return EphemerisEntry{}, err
	}
	if !timeutil.IsUTC(t) {
		return EphemerisEntry{}, invalidInput("moment %s is not UTC", t.Format(time.RFC3339))
	}

	s.mu.RLock()
	e, ok := s.entries[instantOf(t)]
	s.mu.RUnlock()
	if !ok {
		return EphemerisEntry{}, fmt.Errorf("static ephemeris %s: no data for %s", s.name, t.Format(time.RFC3339Nano))
	}
	return e, nil
}

func (s *StaticEphemeris) Ayanamsa(ctx context.Context, t time.Time) (float64, error) {
	e, err := s.lookup(ctx, t)
	if err != nil {
		return 0, err
	}
	return e.Ayanamsa, nil
}

func (s *StaticEphemeris) PositionOf(ctx context.Context, o Object, t time.Time, mode CalculationMode) (Position, error) {
	e, err := s.lookup(ctx, t)
	if err != nil {
		return Position{}, err
	}
	p, ok := e.Positions[o]
	if !ok {
		return Position{}, fmt.Errorf("static ephemeris %s: no position for %s at %s", s.name, o, t.Format(time.RFC3339Nano))
	}

	switch mode {
	case ModeTropic:
	case ModeSidereal:
		p.Longitude = degree.Subtract(p.Longitude, e.Ayanamsa)
	default:
		return Position{}, invalidInput("unsupported calculation mode %d", int(mode))
	}
	return p, nil
}

func (s *StaticEphemeris) HousesOf(ctx context.Context, t time.Time, _ Coordinates, hs HouseSystem, mode CalculationMode) (HouseCusps, error) {
	e, err := s.lookup(ctx, t)
	if err != nil {
		return HouseCusps{}, err
	}
	hc, ok := e.Houses[hs]
	if !ok {
		return HouseCusps{}, fmt.Errorf("static ephemeris %s: no %s houses at %s", s.name, hs, t.Format(time.RFC3339Nano))
	}

	switch mode {
	case ModeTropic:
	case ModeSidereal:
		for i := range hc.Cusps {
			hc.Cusps[i] = degree.Subtract(hc.Cusps[i], e.Ayanamsa)
		}
		for i := range hc.Cross {
			hc.Cross[i] = degree.Subtract(hc.Cross[i], e.Ayanamsa)
		}
	default:
		return HouseCusps{}, invalidInput("unsupported calculation mode %d", int(mode))
	}
	return hc, nil
}

// staticFile is the TOML layout read by LoadStaticEphemeris.
type staticFile struct {
	Moments []staticMoment `toml:"moment"`
}

type staticMoment struct {
	Time      time.Time                 `toml:"time"`
	Ayanamsa  float64                   `toml:"ayanamsa"`
	Positions map[string]staticPosition `toml:"positions"`
	Houses    map[string]staticHouses   `toml:"houses"`
}

type staticPosition struct {
	Longitude      float64 `toml:"longitude"`
	Latitude       float64 `toml:"latitude"`
	Distance       float64 `toml:"distance"`
	SpeedLongitude float64 `toml:"speed_longitude"`
	SpeedLatitude  float64 `toml:"speed_latitude"`
	SpeedDistance  float64 `toml:"speed_distance"`
}

type staticHouses struct {
	Cusps      []float64 `toml:"cusps"`
	Ascendant  float64   `toml:"ascendant"`
	ImumCoeli  float64   `toml:"imum_coeli"`
	Descendant float64   `toml:"descendant"`
	Midheaven  float64   `toml:"midheaven"`
	Vertex     float64   `toml:"vertex"`
}

// LoadStaticEphemeris reads precomputed moments from TOML:
//
//	[[moment]]
//	time = 2024-03-20T03:06:00Z
//	ayanamsa = 24.19
//
//	[moment.positions.Sun]
//	longitude = 0.0
//	speed_longitude = 0.99
//
//	[moment.houses.Placidus]
//	cusps = [15.2, 41.0, ...] # twelve values, House1 first
//	ascendant = 15.2
//	midheaven = 280.4
func LoadStaticEphemeris(name string, r io.Reader) (*StaticEphemeris, error) {
	var f staticFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, invalidInput("decode static ephemeris: %v", err)
	}
	if err := undecodedKeys(md); err != nil {
		return nil, err
	}

	s := NewStaticEphemeris(name)
	for i, m := range f.Moments {
		if m.Time.IsZero() {
			return nil, invalidInput("moment %d has no time", i)
		}

		e := EphemerisEntry{
			Ayanamsa:  m.Ayanamsa,
			Positions: make(map[Object]Position, len(m.Positions)),
			Houses:    make(map[HouseSystem]HouseCusps, len(m.Houses)),
		}
		for on, p := range m.Positions {
			o, err := ParseObject(on)
			if err != nil {
				return nil, err
			}
			e.Positions[o] = Position(p)
		}
		for hn, h := range m.Houses {
			hs, err := ParseHouseSystem(hn)
			if err != nil {
				return nil, err
			}
			if len(h.Cusps) != numHouses {
				return nil, invalidInput("moment %d: %s houses need %d cusps, got %d", i, hs, numHouses, len(h.Cusps))
			}
			var hc HouseCusps
			copy(hc.Cusps[:], h.Cusps)
			hc.Cross[Ascendant] = h.Ascendant
			hc.Cross[ImumCoeli] = h.ImumCoeli
			hc.Cross[Descendant] = h.Descendant
			hc.Cross[Midheaven] = h.Midheaven
			hc.Cross[Vertex] = h.Vertex
			e.Houses[hs] = hc
		}
		s.Add(m.Time, e)
	}
	return s, nil
}

// undecodedKeys rejects keys the decoder did not map to a field, so that a
// misspelled key is not read as a zero value.
func undecodedKeys(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return invalidInput("unknown keys %s", strings.Join(names, ", "))
}
