package astrochart

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// CalculationMode selects the zodiac frame a provider reports in.
type CalculationMode int

const (
	// ModeTropic reports longitudes from the equinox point.
	ModeTropic CalculationMode = iota

	// ModeSidereal reports longitudes with the ayanamsa already removed.
	ModeSidereal
)

func (m CalculationMode) String() string {
	switch m {
	case ModeTropic:
		return "tropic"
	case ModeSidereal:
		return "sidereal"
	default:
		return "CalculationMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

// Provider is an ephemeris source. Implementations must reject instants
// whose location is not time.UTC. Charts pass every error through wrapped
// in a PROVIDER_FAILURE *Error, reachable with errors.Is/As.
type Provider interface {
	// Name identifies the provider in logs, metrics and errors.
	Name() string

	// Ayanamsa returns the precession offset in degrees at t.
	Ayanamsa(ctx context.Context, t time.Time) (float64, error)

	// PositionOf returns the position of o at t.
	PositionOf(ctx context.Context, o Object, t time.Time, mode CalculationMode) (Position, error)

	// HousesOf returns house cusps and cross points for an observer at loc.
	HousesOf(ctx context.Context, t time.Time, loc Coordinates, hs HouseSystem, mode CalculationMode) (HouseCusps, error)
}

// RateLimited wraps p so every call first waits on l. A cancelled context
// while waiting is returned as the call's error.
func RateLimited(p Provider, l *rate.Limiter) Provider {
	return &rateLimitedProvider{next: p, limiter: l}
}

type rateLimitedProvider struct {
	next    Provider
	limiter *rate.Limiter
}

func (r *rateLimitedProvider) Name() string {
	return r.next.Name()
}

func (r *rateLimitedProvider) Ayanamsa(ctx context.Context, t time.Time) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return r.next.Ayanamsa(ctx, t)
}

func (r *rateLimitedProvider) PositionOf(ctx context.Context, o Object, t time.Time, mode CalculationMode) (Position, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Position{}, err
	}
	return r.next.PositionOf(ctx, o, t, mode)
}

func (r *rateLimitedProvider) HousesOf(ctx context.Context, t time.Time, loc Coordinates, hs HouseSystem, mode CalculationMode) (HouseCusps, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return HouseCusps{}, err
	}
	return r.next.HousesOf(ctx, t, loc, hs, mode)
}
