// Package astrochart models astrological charts: a snapshot of celestial
// object positions and, optionally, house cusps for one moment and place,
// together with the properties derived from them (zodiac sign,
// constellation, dignity, motion and angular relationships).
//
// Positions come from an external ephemeris Provider. A Chart resolves
// everything it needs from the provider once, at construction, and is an
// immutable snapshot afterwards, safe for concurrent readers.
//
// Longitudes are ecliptic degrees. Tropical longitudes are measured from the
// equinox point; sidereal (constellation) longitudes subtract the ayanamsa
// of the chart's moment.
package astrochart

import (
	"strconv"
	"strings"
)

// Object is a celestial object (or computed point) a chart can hold.
type Object int

const (
	Sun Object = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	NorthNode
	SouthNode
	Chiron
	Earth

	numObjects = int(Earth) + 1
)

var objectNames = [numObjects]string{
	Sun:       "Sun",
	Moon:      "Moon",
	Mercury:   "Mercury",
	Venus:     "Venus",
	Mars:      "Mars",
	Jupiter:   "Jupiter",
	Saturn:    "Saturn",
	Uranus:    "Uranus",
	Neptune:   "Neptune",
	Pluto:     "Pluto",
	NorthNode: "North Node",
	SouthNode: "South Node",
	Chiron:    "Chiron",
	Earth:     "Earth",
}

// DefaultObjects returns the classical set used when a chart is built
// without an explicit object list. The slice is freshly allocated.
func DefaultObjects() []Object {
	return []Object{
		Sun, Moon, Mercury, Venus, Mars,
		Jupiter, Saturn, NorthNode, SouthNode,
		Uranus, Neptune, Pluto,
	}
}

// Valid reports whether o is one of the declared objects.
func (o Object) Valid() bool {
	return o >= 0 && int(o) < numObjects
}

func (o Object) String() string {
	if !o.Valid() {
		return "Object(" + strconv.Itoa(int(o)) + ")"
	}
	return objectNames[o]
}

// ParseObject resolves a display name ("North Node") or a compact form
// ("northnode", "north_node") to an Object.
func ParseObject(name string) (Object, error) {
	key := nameKey(name)
	for i, n := range objectNames {
		if nameKey(n) == key {
			return Object(i), nil
		}
	}
	return 0, invalidInput("unknown celestial object %q", name)
}

// nameKey folds case and drops separators so names compare loosely.
func nameKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-', '/', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
