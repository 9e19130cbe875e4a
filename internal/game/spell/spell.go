// Package spell defines the spell identifier space, the immutable spell
// catalog, the classification predicates and the cost and strategic-value
// calculators consumed by rules enforcement and AI scoring.
package spell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidData marks spell values that arrived out of range from untrusted
// input such as persistence rows.
var ErrInvalidData = errors.New("invalid spell data")

// ID identifies a spell. The zero value is None. Declaration order matches
// the catalog table and is load-bearing for persistence compatibility.
type ID uint8

const (
	None ID = iota
	Fireball
	Fireblast
	LightningBolt
	ChainLightning
	Teleport
	Cure
	MassCure
	Resurrect
	ResurrectTrue
	Haste
	MassHaste
	Slow
	MassSlow
	Blind
	Bless
	MassBless
	Stoneskin
	Steelskin
	Curse
	MassCurse
	HolyWord
	HolyShout
	AntiMagic
	DispelMagic
	MassDispel
	MagicArrow
	Berserker
	Armageddon
	ElementalStorm
	MeteorShower
	Paralyze
	Hypnotize
	ColdRay
	ColdRing
	DisruptingRay
	DeathRipple
	DeathWave
	DragonSlayer
	BloodLust
	AnimateDead
	MirrorImage
	Shield
	MassShield
	SummonEarthElement
	SummonAirElement
	SummonFireElement
	SummonWaterElement
	Earthquake
	ViewMines
	ViewResources
	ViewArtifacts
	ViewTowns
	ViewHeroes
	ViewAll
	IdentifyHero
	SummonBoat
	DimensionDoor
	TownGate
	TownPortal
	Visions
	Haunt
	SetEarthGuardian
	SetAirGuardian
	SetFireGuardian
	SetWaterGuardian
	Random
	Random1
	Random2
	Random3
	Random4
	Random5
	Petrify
)

// Count is the total number of catalog rows, None and placeholders included.
const Count = int(Petrify) + 1

// School is one of the four elemental schools of magic, used for
// cost-discount and effect-modifier lookups.
type School uint8

const (
	SchoolNone School = iota
	SchoolFire
	SchoolAir
	SchoolWater
	SchoolEarth
)

// String returns the school's display name.
func (s School) String() string {
	switch s {
	case SchoolFire:
		return "Fire Magic"
	case SchoolAir:
		return "Air Magic"
	case SchoolWater:
		return "Water Magic"
	case SchoolEarth:
		return "Earth Magic"
	default:
		return "No School"
	}
}

// IsValid reports whether the id names an actual spell. None is not a
// spell.
func (id ID) IsValid() bool {
	return id != None && int(id) < Count
}

// Parse validates a raw persisted spell id.
//
// Postcondition: returns a catalog-backed ID or ErrInvalidData.
func Parse(raw uint8) (ID, error) {
	if int(raw) >= Count {
		return None, fmt.Errorf("%w: spell id %d out of range", ErrInvalidData, raw)
	}
	return ID(raw), nil
}

// ParseName resolves a display name to its spell id, case-insensitively.
//
// Postcondition: returns a real ID or a non-nil error; names come from data
// files, never silently mapped to None.
func ParseName(name string) (ID, error) {
	for raw := Fireball; int(raw) < Count; raw++ {
		if strings.EqualFold(catalog[raw].Name, name) {
			return raw, nil
		}
	}
	return None, fmt.Errorf("%w: unknown spell %q", ErrInvalidData, name)
}

// record returns the catalog row for the id. Out-of-range ids fall back to
// the None row.
func (id ID) record() *Record {
	if int(id) >= Count {
		return &catalog[None]
	}
	return &catalog[id]
}

// Name returns the spell's display-name key.
func (id ID) Name() string { return id.record().Name }

// Description returns the spell's description template key. Numeric
// substitution values come from ExtraValue and friends; rendering belongs to
// the text provider.
func (id ID) Description() string { return id.record().Description }

// SchoolOfMagic returns the school the spell belongs to.
func (id ID) SchoolOfMagic() School { return id.record().School }

// BaseCost returns the table casting cost with no caster applied.
func (id ID) BaseCost() uint32 { return uint32(id.record().Cost) }

// SchoolLevelModifiers returns the 4-entry effect-modifier schedule indexed
// by school mastery level.
func (id ID) SchoolLevelModifiers() [4]uint8 { return id.record().SchoolLevelMod }

// CostDiscounts returns the 4-entry flat-discount schedule indexed by school
// mastery level.
func (id ID) CostDiscounts() [4]uint8 { return id.record().Discounts }

// MovePoints returns the movement points consumed by casting; only the two
// travel spells carry a non-zero value.
func (id ID) MovePoints() uint32 { return uint32(id.record().MovePoints) }

// MinMovePoints returns the minimum movement points required to cast.
func (id ID) MinMovePoints() uint32 { return uint32(id.record().MinMovePoints) }

// SpriteIndex returns the spell's image identifier.
func (id ID) SpriteIndex() uint32 { return id.record().SpriteIndex }

// ExtraValue returns the spell-specific numeric value: damage amount, heal
// amount, resurrect count or summon-strength multiplier depending on the
// spell's classification.
func (id ID) ExtraValue() uint32 { return uint32(id.record().ExtraValue) }

// CalculateDimensionDoorDistance returns the maximum Dimension Door jump
// distance in tiles.
func CalculateDimensionDoorDistance() int32 {
	return 14
}
