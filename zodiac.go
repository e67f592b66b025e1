package astrochart

import (
	"math"
	"strconv"

	"github.com/thurmanmarka/astrochart/internal/degree"
)

// Sign is one of the twelve 30° zodiac signs, Aries first.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	numSigns = int(Pisces) + 1
)

var signNames = [numSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= 0 && int(s) < numSigns
}

func (s Sign) String() string {
	if !s.Valid() {
		return "Sign(" + strconv.Itoa(int(s)) + ")"
	}
	return signNames[s]
}

// ParseSign resolves a sign name, ignoring case.
func ParseSign(name string) (Sign, error) {
	key := nameKey(name)
	for i, n := range signNames {
		if nameKey(n) == key {
			return Sign(i), nil
		}
	}
	return 0, invalidInput("unknown zodiac sign %q", name)
}

// SignOf returns the sign containing longitude. Each sign includes its
// starting cusp, so 30 is Taurus and 29.999 is Aries.
func SignOf(longitude float64) Sign {
	return Sign(math.Floor(degree.Normalize(longitude) / 30.0))
}

// Reference selects the frame a sign is read in: the tropical zodiac, or
// the sidereal constellations (longitude minus ayanamsa).
type Reference int

const (
	Tropical Reference = iota
	Sidereal
)

func (r Reference) String() string {
	switch r {
	case Tropical:
		return "tropical"
	case Sidereal:
		return "sidereal"
	default:
		return "Reference(" + strconv.Itoa(int(r)) + ")"
	}
}

// NormalizeDegrees reduces d to [0, 360).
func NormalizeDegrees(d float64) float64 { return degree.Normalize(d) }

// AddDegrees adds two longitudes in [0, 360), wrapping past 360.
func AddDegrees(a, b float64) float64 { return degree.Add(a, b) }

// SubtractDegrees subtracts b from a for longitudes in [0, 360), wrapping below 0.
func SubtractDegrees(a, b float64) float64 { return degree.Subtract(a, b) }

// AngleDifference is the shortest signed angle from b to a, in [-180, 180).
func AngleDifference(a, b float64) float64 { return degree.SignedDifference(a, b) }
