package astrochart

import "strconv"

// Position is the location of a celestial object at one moment, as
// reported by the ephemeris provider. Longitude is interpreted modulo 360
// by every consumer; the record itself is never normalized.
type Position struct {
	Longitude float64 // ecliptic longitude, degrees
	Latitude  float64 // ecliptic latitude, degrees
	Distance  float64 // distance from the reference point, AU

	SpeedLongitude float64 // degrees per day
	SpeedLatitude  float64 // degrees per day
	SpeedDistance  float64 // AU per day
}

// Motion is the apparent direction of travel along the ecliptic.
type Motion int

const (
	Forward Motion = iota
	Retrograde
)

func (m Motion) String() string {
	switch m {
	case Forward:
		return "Forward"
	case Retrograde:
		return "Retrograde"
	default:
		return "Motion(" + strconv.Itoa(int(m)) + ")"
	}
}

// MotionOf classifies p as Retrograde when its longitudinal speed is
// negative, Forward otherwise (including stationary).
func MotionOf(p Position) Motion {
	if p.SpeedLongitude < 0 {
		return Retrograde
	}
	return Forward
}
