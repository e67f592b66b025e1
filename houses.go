package astrochart

import (
	"strconv"
)

// House identifies one of the twelve astrological houses, numbered 1..12.
type House int

const (
	House1 House = iota + 1
	House2
	House3
	House4
	House5
	House6
	House7
	House8
	House9
	House10
	House11
	House12
)

const numHouses = 12

// Valid reports whether h is House1..House12.
func (h House) Valid() bool {
	return h >= House1 && h <= House12
}

func (h House) String() string {
	if !h.Valid() {
		return "House(" + strconv.Itoa(int(h)) + ")"
	}
	return "House" + strconv.Itoa(int(h))
}

// HouseFromNumber converts 1..12 to a House.
func HouseFromNumber(n int) (House, error) {
	h := House(n)
	if !h.Valid() {
		return 0, invalidInput("%d is not a supported house number", n)
	}
	return h, nil
}

// Cross is a cardinal point of the chart derived from the local horizon
// and meridian.
type Cross int

const (
	Ascendant Cross = iota
	ImumCoeli
	Descendant
	Midheaven
	Vertex

	numCross = int(Vertex) + 1
)

var crossNames = [numCross]string{
	Ascendant:  "Ascendant",
	ImumCoeli:  "Imum coeli",
	Descendant: "Descendant",
	Midheaven:  "Medium coeli",
	Vertex:     "Vertex",
}

// Valid reports whether c is one of the five cross points.
func (c Cross) Valid() bool {
	return c >= 0 && int(c) < numCross
}

func (c Cross) String() string {
	if !c.Valid() {
		return "Cross(" + strconv.Itoa(int(c)) + ")"
	}
	return crossNames[c]
}

// HouseSystem selects how the provider divides the chart into houses.
type HouseSystem int

const (
	Placidus HouseSystem = iota
	Alcabitus
	APCHouses
	AxialRotation
	Azimuthal
	Campanus
	Carter
	Equal
	EqualMC
	Equal1Aries
	SunshineTreindl
	SunshineMakransky
	Koch
	KrusinskiPisaGoelzer
	Morinus
	PolichPage
	Porphyrius
	PullenSD
	PullenSR
	Regiomontanus
	Sripati
	VehlowEqual
	WholeSign

	numHouseSystems = int(WholeSign) + 1
)

var houseSystemNames = [numHouseSystems]string{
	Placidus:             "Placidus",
	Alcabitus:            "Alcabitus",
	APCHouses:            "APC houses",
	AxialRotation:        "Axial rotation system",
	Azimuthal:            "Azimuthal system",
	Campanus:             "Campanus",
	Carter:               "Carter",
	Equal:                "Equal Ascendant",
	EqualMC:              "Equal MC",
	Equal1Aries:          "Equal 0 Aries",
	SunshineTreindl:      "Sunshine (Treindl solution)",
	SunshineMakransky:    "Sunshine (Makransky solution)",
	Koch:                 "Koch",
	KrusinskiPisaGoelzer: "Krusinski-Pisa-Goelzer",
	Morinus:              "Morinus",
	PolichPage:           "Polich/Page",
	Porphyrius:           "Porphyrius",
	PullenSD:             "Pullen SD",
	PullenSR:             "Pullen SR",
	Regiomontanus:        "Regiomontanus",
	Sripati:              "Sripati",
	VehlowEqual:          "Vehlow equal",
	WholeSign:            "Whole sign",
}

// houseSystemAliases are short names accepted by ParseHouseSystem in
// addition to the display names.
var houseSystemAliases = map[string]HouseSystem{
	"equal":       Equal,
	"topocentric": PolichPage,
	"porphyry":    Porphyrius,
	"meridian":    AxialRotation,
	"horizontal":  Azimuthal,
}

// Valid reports whether hs is a declared house system.
func (hs HouseSystem) Valid() bool {
	return hs >= 0 && int(hs) < numHouseSystems
}

func (hs HouseSystem) String() string {
	if !hs.Valid() {
		return "HouseSystem(" + strconv.Itoa(int(hs)) + ")"
	}
	return houseSystemNames[hs]
}

// ParseHouseSystem resolves a house system by display name or alias,
// ignoring case and separators.
func ParseHouseSystem(name string) (HouseSystem, error) {
	key := nameKey(name)
	if hs, ok := houseSystemAliases[key]; ok {
		return hs, nil
	}
	for i, n := range houseSystemNames {
		if nameKey(n) == key {
			return HouseSystem(i), nil
		}
	}
	return 0, invalidInput("unknown house system %q", name)
}

// HouseCusps holds the cusp longitude of every house and the longitude of
// every cross point. Both tables are complete by construction.
type HouseCusps struct {
	Cusps [numHouses]float64 // indexed by House-1
	Cross [numCross]float64  // indexed by Cross
}

// Cusp returns the cusp longitude of h.
func (hc HouseCusps) Cusp(h House) (float64, error) {
	if !h.Valid() {
		return 0, invalidInput("%d is not a supported house number", int(h)).WithContext(CtxHouse, int(h))
	}
	return hc.Cusps[h-1], nil
}

// Point returns the longitude of the cross point c.
func (hc HouseCusps) Point(c Cross) (float64, error) {
	if !c.Valid() {
		return 0, invalidInput("unsupported cross direction %d", int(c)).WithContext(CtxCross, int(c))
	}
	return hc.Cross[c], nil
}

// HouseOf returns the house containing longitude: the house whose cusp is
// the greatest one strictly below longitude, or, when no cusp lies below it,
// the house with the greatest cusp (the one wrapping through 0°).
func HouseOf(longitude float64, hc HouseCusps) House {
	return houseOf(longitude, hc, false)
}

// HouseOfPoint is HouseOf with an inclusive comparison, for classifying
// points that may sit exactly on a cusp (the cusps and cross points
// themselves). A point on a cusp belongs to the house that cusp opens.
func HouseOfPoint(longitude float64, hc HouseCusps) House {
	return houseOf(longitude, hc, true)
}

func houseOf(longitude float64, hc HouseCusps, inclusive bool) House {
	below, top := -1, 0
	for i, cusp := range hc.Cusps {
		if cusp > hc.Cusps[top] {
			top = i
		}
		if cusp < longitude || (inclusive && cusp == longitude) {
			if below < 0 || cusp > hc.Cusps[below] {
				below = i
			}
		}
	}
	if below < 0 {
		return House(top + 1)
	}
	return House(below + 1)
}
