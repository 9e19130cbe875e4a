// Package skill defines secondary-skill kinds, proficiency levels, the
// per-hero skill roster and the level-up progression planner.
package skill

import "fmt"

// Kind identifies a secondary skill. The zero value is Unknown, the
// empty-slot sentinel.
type Kind uint8

const (
	Unknown Kind = iota
	Pathfinding
	Archery
	Logistics
	Scouting
	Diplomacy
	Navigation
	Leadership
	Wisdom
	Mysticism
	Luck
	Ballistics
	EagleEye
	Necromancy
	Estates
	Offense
	AirMagic
	Armorer
	Artillery
	EarthMagic
	FireMagic
	FirstAid
	Intelligence
	Learning
	Resistance
	Scholar
	Sorcery
	Tactics
	WaterMagic
)

// KindCount is the number of real secondary skills (Unknown excluded).
const KindCount = 29 - 1

// allKinds lists every real kind in declaration order. The order is part of
// the planner's observable contract: candidates are pushed to the weighted
// queue in this order, so it decides ties.
var allKinds = [KindCount]Kind{
	Pathfinding, Archery, Logistics, Scouting, Diplomacy, Navigation, Leadership,
	Wisdom, Mysticism, Luck, Ballistics, EagleEye, Necromancy, Estates,
	Offense, AirMagic, Armorer, Artillery, EarthMagic, FireMagic, FirstAid,
	Intelligence, Learning, Resistance, Scholar, Sorcery, Tactics, WaterMagic,
}

// AllKinds returns every real secondary-skill kind in declaration order.
func AllKinds() [KindCount]Kind {
	return allKinds
}

var kindNames = map[Kind]string{
	Pathfinding:  "Pathfinding",
	Archery:      "Archery",
	Logistics:    "Logistics",
	Scouting:     "Scouting",
	Diplomacy:    "Diplomacy",
	Navigation:   "Navigation",
	Leadership:   "Leadership",
	Wisdom:       "Wisdom",
	Mysticism:    "Mysticism",
	Luck:         "Luck",
	Ballistics:   "Ballistics",
	EagleEye:     "Eagle Eye",
	Necromancy:   "Necromancy",
	Estates:      "Estates",
	Offense:      "Offense",
	AirMagic:     "Air Magic",
	Armorer:      "Armorer",
	Artillery:    "Artillery",
	EarthMagic:   "Earth Magic",
	FireMagic:    "Fire Magic",
	FirstAid:     "First Aid",
	Intelligence: "Intelligence",
	Learning:     "Learning",
	Resistance:   "Resistance",
	Scholar:      "Scholar",
	Sorcery:      "Sorcery",
	Tactics:      "Tactics",
	WaterMagic:   "Water Magic",
}

// String returns the display name for the kind, or "Unknown".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether k names a real secondary skill.
func (k Kind) IsValid() bool {
	return k >= Pathfinding && k <= WaterMagic
}

// parseKeys maps the lowercase data-file identifiers used by ruleset YAML.
var parseKeys = map[string]Kind{
	"pathfinding":  Pathfinding,
	"archery":      Archery,
	"logistics":    Logistics,
	"scouting":     Scouting,
	"diplomacy":    Diplomacy,
	"navigation":   Navigation,
	"leadership":   Leadership,
	"wisdom":       Wisdom,
	"mysticism":    Mysticism,
	"luck":         Luck,
	"ballistics":   Ballistics,
	"eagle_eye":    EagleEye,
	"necromancy":   Necromancy,
	"estates":      Estates,
	"offense":      Offense,
	"air_magic":    AirMagic,
	"armorer":      Armorer,
	"artillery":    Artillery,
	"earth_magic":  EarthMagic,
	"fire_magic":   FireMagic,
	"first_aid":    FirstAid,
	"intelligence": Intelligence,
	"learning":     Learning,
	"resistance":   Resistance,
	"scholar":      Scholar,
	"sorcery":      Sorcery,
	"tactics":      Tactics,
	"water_magic":  WaterMagic,
}

// ParseKind resolves a data-file identifier such as "eagle_eye" to its Kind.
//
// Postcondition: returns a valid Kind, or an error for unrecognised input —
// identifiers originate from untrusted data files, so this never silently
// maps to Unknown.
func ParseKind(key string) (Kind, error) {
	if k, ok := parseKeys[key]; ok {
		return k, nil
	}
	return Unknown, fmt.Errorf("%w: unknown skill kind %q", ErrInvalidData, key)
}

// Key returns the data-file identifier for the kind, the inverse of ParseKind.
func (k Kind) Key() string {
	for key, kind := range parseKeys {
		if kind == k {
			return key
		}
	}
	return "unknown"
}
