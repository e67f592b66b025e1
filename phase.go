package astrochart

import (
	"math"
)

// LunarPhase describes the illuminated fraction and qualitative phase of
// the Moon at a chart's moment.
type LunarPhase struct {
	Fraction   float64 // illuminated fraction [0..1], 0=new, 1=full
	Elongation float64 // Sun-Moon ecliptic separation in degrees [0..180]
	Waxing     bool    // true if waxing (illumination increasing), false if waning
	Name       string  // e.g. "New Moon", "Waxing Crescent", "First Quarter", ...
}

// LunarPhase derives the Moon's phase from the Sun and Moon longitudes.
// The chart must support both objects.
func (c *Chart) LunarPhase() (LunarPhase, error) {
	d, err := c.AngleBetween(Moon, Sun)
	if err != nil {
		return LunarPhase{}, err
	}

	elong := math.Abs(d)

	// k = (1 - cos ψ) / 2
	fraction := 0.5 * (1 - math.Cos(elong*math.Pi/180.0))
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	// Moon east of the Sun is waxing.
	waxing := d > 0

	return LunarPhase{
		Fraction:   fraction,
		Elongation: elong,
		Waxing:     waxing,
		Name:       phaseName(elong, waxing),
	}, nil
}

// Phase windows, in degrees of elongation.
const (
	syzygyWindow  = 12.0 // New or Full within this distance of 0° or 180°
	quarterWindow = 6.0  // a quarter within this distance of 90°
)

// phaseName names the phase for an elongation in [0, 180].
func phaseName(elong float64, waxing bool) string {
	switch {
	case elong < syzygyWindow:
		return "New Moon"
	case elong > 180-syzygyWindow:
		return "Full Moon"
	case math.Abs(elong-90) < quarterWindow:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case elong < 90 && waxing:
		return "Waxing Crescent"
	case elong < 90:
		return "Waning Crescent"
	case waxing:
		return "Waxing Gibbous"
	default:
		return "Waning Gibbous"
	}
}
