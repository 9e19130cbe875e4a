// Package hero defines the hero domain model: race identity, primary combat
// stats and the persistent hero aggregate that owns a skill roster.
package hero

import "fmt"

// Race identifies a playable faction. The zero value is RaceNone.
type Race uint8

const (
	RaceNone Race = iota
	Knight
	Barbarian
	Sorceress
	Warlock
	Wizard
	Necromancer
)

var raceKeys = map[Race]string{
	Knight:      "knight",
	Barbarian:   "barbarian",
	Sorceress:   "sorceress",
	Warlock:     "warlock",
	Wizard:      "wizard",
	Necromancer: "necromancer",
}

// String returns the race's display name.
func (r Race) String() string {
	switch r {
	case Knight:
		return "Knight"
	case Barbarian:
		return "Barbarian"
	case Sorceress:
		return "Sorceress"
	case Warlock:
		return "Warlock"
	case Wizard:
		return "Wizard"
	case Necromancer:
		return "Necromancer"
	default:
		return "None"
	}
}

// Key returns the data-file identifier for the race.
func (r Race) Key() string {
	if key, ok := raceKeys[r]; ok {
		return key
	}
	return "none"
}

// ParseRace resolves a data-file identifier to its Race.
//
// Postcondition: returns a real Race or a non-nil error; identifiers come
// from config and data files, never silently mapped to RaceNone.
func ParseRace(key string) (Race, error) {
	for race, k := range raceKeys {
		if k == key {
			return race, nil
		}
	}
	return RaceNone, fmt.Errorf("unknown race %q", key)
}

// IsValid reports whether r names a real faction.
func (r Race) IsValid() bool {
	return r >= Knight && r <= Necromancer
}
