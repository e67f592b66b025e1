package astrochart

import (
	"io"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
)

// State is the classical dignity of an object in a sign.
type State int

const (
	None State = iota
	Domicile
	Exaltation
	Detriment
	Fall
)

func (s State) String() string {
	switch s {
	case None:
		return "None"
	case Domicile:
		return "Domicile"
	case Exaltation:
		return "Exaltation"
	case Detriment:
		return "Detriment"
	case Fall:
		return "Fall"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// DignityRule maps an object in a sign to its state. Callers may pass
// their own rule wherever a DignityRule is accepted.
type DignityRule func(Object, Sign) State

// dignities lists the signs in which an object takes each state.
type dignities struct {
	domicile   []Sign
	exaltation []Sign
	detriment  []Sign
	fall       []Sign
}

func (d dignities) stateIn(s Sign) State {
	switch {
	case slices.Contains(d.domicile, s):
		return Domicile
	case slices.Contains(d.exaltation, s):
		return Exaltation
	case slices.Contains(d.detriment, s):
		return Detriment
	case slices.Contains(d.fall, s):
		return Fall
	default:
		return None
	}
}

// classicalDignities is read-only after package initialization. Objects
// without an entry (Pluto, the nodes, Chiron, Earth) are None everywhere.
// Mars carries no fall sign in this table.
var classicalDignities = map[Object]dignities{
	Sun:     {domicile: []Sign{Leo}, exaltation: []Sign{Aries}, detriment: []Sign{Aquarius}, fall: []Sign{Libra}},
	Moon:    {domicile: []Sign{Cancer}, exaltation: []Sign{Taurus}, detriment: []Sign{Capricorn}, fall: []Sign{Scorpio}},
	Mercury: {domicile: []Sign{Gemini}, exaltation: []Sign{Virgo}, detriment: []Sign{Sagittarius}, fall: []Sign{Pisces}},
	Venus:   {domicile: []Sign{Taurus, Libra}, exaltation: []Sign{Pisces}, detriment: []Sign{Aries, Scorpio}, fall: []Sign{Virgo}},
	Mars:    {domicile: []Sign{Aries}, exaltation: []Sign{Capricorn}, detriment: []Sign{Taurus, Libra}},
	Jupiter: {domicile: []Sign{Sagittarius, Pisces}, exaltation: []Sign{Cancer}, detriment: []Sign{Gemini, Virgo}, fall: []Sign{Capricorn}},
	Saturn:  {domicile: []Sign{Capricorn}, exaltation: []Sign{Libra}, detriment: []Sign{Cancer, Leo}, fall: []Sign{Aries}},
	Uranus:  {domicile: []Sign{Aquarius}, exaltation: []Sign{Scorpio}, detriment: []Sign{Leo}, fall: []Sign{Taurus}},
	Neptune: {domicile: []Sign{Pisces}, exaltation: []Sign{Cancer}, detriment: []Sign{Virgo}, fall: []Sign{Capricorn}},
}

// DefaultDignity is the classical rulership table.
func DefaultDignity(o Object, s Sign) State {
	d, ok := classicalDignities[o]
	if !ok {
		return None
	}
	return d.stateIn(s)
}

// dignityTableEntry is the TOML shape of one object's row.
type dignityTableEntry struct {
	Domicile   []string `toml:"domicile"`
	Exaltation []string `toml:"exaltation"`
	Detriment  []string `toml:"detriment"`
	Fall       []string `toml:"fall"`
}

// LoadDignityTable decodes a TOML dignity table and returns it as a rule.
// Each top-level table is an object name holding sign lists:
//
//	[Sun]
//	domicile = ["Leo"]
//	exaltation = ["Aries"]
//	detriment = ["Aquarius"]
//	fall = ["Libra"]
//
// Objects absent from the file are None in every sign. A sign listed under
// two states for the same object is rejected.
func LoadDignityTable(r io.Reader) (DignityRule, error) {
	var raw map[string]dignityTableEntry
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, invalidInput("decode dignity table: %v", err)
	}
	if err := undecodedKeys(md); err != nil {
		return nil, err
	}

	table := make(map[Object]dignities, len(raw))
	for name, entry := range raw {
		o, err := ParseObject(name)
		if err != nil {
			return nil, err
		}

		var d dignities
		seen := make(map[Sign]State)
		lists := []struct {
			state State
			names []string
			dst   *[]Sign
		}{
			{Domicile, entry.Domicile, &d.domicile},
			{Exaltation, entry.Exaltation, &d.exaltation},
			{Detriment, entry.Detriment, &d.detriment},
			{Fall, entry.Fall, &d.fall},
		}
		for _, l := range lists {
			for _, sn := range l.names {
				s, err := ParseSign(sn)
				if err != nil {
					return nil, err
				}
				if prev, dup := seen[s]; dup {
					return nil, invalidInput("%s in %s listed as both %s and %s", o, s, prev, l.state)
				}
				seen[s] = l.state
				*l.dst = append(*l.dst, s)
			}
		}
		table[o] = d
	}

	return func(o Object, s Sign) State {
		d, ok := table[o]
		if !ok {
			return None
		}
		return d.stateIn(s)
	}, nil
}

// DignityTable enumerates rule over every object and sign.
func DignityTable(rule DignityRule) map[Object][numSigns]State {
	if rule == nil {
		rule = DefaultDignity
	}
	out := make(map[Object][numSigns]State, numObjects)
	for o := Object(0); o.Valid(); o++ {
		var row [numSigns]State
		for s := Sign(0); s.Valid(); s++ {
			row[s] = rule(o, s)
		}
		out[o] = row
	}
	return out
}
