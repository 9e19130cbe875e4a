package skill

import (
	"strconv"
	"strings"
)

// Description templates carry %{skill} and %{count} placeholders. This
// package only selects the template and supplies the substitution values;
// localized rendering beyond that belongs to the text provider.

// DescribeContext carries the external state a description render needs.
// The necromancy fields adjust the displayed count for shrine and artifact
// bonuses that live outside the roster.
type DescribeContext struct {
	Effects EffectProvider
	// NecromancyPercent is the hero-wide resurrection percent including
	// bonuses, as computed by NecromancyPercent.
	NecromancyPercent uint32
	// NecromancyValue is the hero's current raw Necromancy effect value.
	NecromancyValue uint32
	// NecromancyShrineBonus is the value computed by NecromancyBonus.
	NecromancyShrineBonus uint32
}

// RenderTemplate substitutes %{skill} and %{count} into a template.
func RenderTemplate(tmpl, skillName string, count uint32) string {
	out := strings.ReplaceAll(tmpl, "%{skill}", skillName)
	return strings.ReplaceAll(out, "%{count}", strconv.FormatUint(uint64(count), 10))
}

// Description renders the entry's effect description. For Necromancy the
// count is adjusted to the hero-wide percent: the raw effect value is
// replaced by value + (percent - heroValue), preserving the original
// arithmetic rather than a simplification (the two differ when the 100% cap
// bites).
func (s Secondary) Description(ctx DescribeContext) string {
	count := s.Effect(ctx.Effects)
	name := s.Name()

	if s.Kind == Necromancy {
		count += ctx.NecromancyPercent - ctx.NecromancyValue
		name = s.NameWithBonus(ctx.NecromancyShrineBonus)
	}

	return RenderTemplate(DescriptionTemplate(s.Kind, s.Level), name, count)
}

// DescriptionTemplate returns the template for the kind at the level, or
// "unknown" for unrecognised input.
func DescriptionTemplate(kind Kind, level Level) string {
	switch kind {
	case Pathfinding:
		if level == LevelExpert {
			return "%{skill} eliminates the movement penalty for rough terrain."
		}
		return "%{skill} reduces the movement penalty for rough terrain by %{count} percent."
	case Archery:
		return "%{skill} increases the damage done by range attacking creatures by %{count} percent."
	case Logistics:
		return "%{skill} increases your hero's movement points by %{count} percent."
	case Scouting:
		return "%{skill} increases your hero's viewable area by %{count} squares."
	case Diplomacy:
		if level == LevelExpert {
			return "%{skill} allows you to negotiate with monsters who are weaker than your group. All of the creatures may offer to join you."
		}
		return "%{skill} allows you to negotiate with monsters who are weaker than your group. Approximately %{count} percent of the creatures may offer to join you."
	case Navigation:
		return "%{skill} increases your hero's movement points over water by %{count} percent."
	case Leadership:
		return "%{skill} increases your hero's troops morale by %{count}."
	case Wisdom:
		switch level {
		case LevelAdvanced:
			return "%{skill} allows your hero to learn fourth level spells."
		case LevelExpert:
			return "%{skill} allows your hero to learn fifth level spells."
		default:
			return "%{skill} allows your hero to learn third level spells."
		}
	case Mysticism:
		return "%{skill} regenerates %{count} additional spell points per day to your hero."
	case Luck:
		return "%{skill} increases your hero's luck by %{count}."
	case Ballistics:
		switch level {
		case LevelAdvanced:
			return "%{skill} gives your hero's catapult an extra shot, and each shot has a greater chance to hit and do damage to castle walls."
		case LevelExpert:
			return "%{skill} gives your hero's catapult an extra shot, and each shot automatically destroys any wall, except a fortified wall in a Knight castle."
		default:
			return "%{skill} gives your hero's catapult shots a greater chance to hit and do damage to castle walls."
		}
	case EagleEye:
		switch level {
		case LevelAdvanced:
			return "%{skill} gives your hero a %{count} percent chance to learn any given 3rd level spell (or below) that was cast by an enemy during combat."
		case LevelExpert:
			return "%{skill} gives your hero a %{count} percent chance to learn any given 4th level spell (or below) that was cast by an enemy during combat."
		default:
			return "%{skill} gives your hero a %{count} percent chance to learn any given 1st or 2nd level spell that was cast by an enemy during combat."
		}
	case Necromancy:
		return "%{skill} allows %{count} percent of the creatures killed in combat to be brought back from the dead as Skeletons."
	case Estates:
		return "Your hero produces %{count} gold pieces per day as tax revenue from estates."
	case Offense:
		return "%{skill} increases all hand-to-hand damage inflicted by the hero's troops by %{count} percent."
	case AirMagic:
		return schoolMagicTemplate("air", level)
	case Armorer:
		return "%{skill} reduces all damage inflicted against the hero's troops by %{count} percent."
	case Artillery:
		switch level {
		case LevelAdvanced:
			return "%{skill} gives control of the ballista and defense towers to the hero. The ballista shoots twice with a 75% chance to inflict double damage."
		case LevelExpert:
			return "%{skill} gives control of the ballista and defense towers to the hero. The ballista inflicts double damage and shoots twice."
		default:
			return "%{skill} gives control of the ballista and defense towers to the hero. The ballista has 50% chance to inflict double damage."
		}
	case EarthMagic:
		return schoolMagicTemplate("earth", level)
	case FireMagic:
		return schoolMagicTemplate("fire", level)
	case FirstAid:
		switch level {
		case LevelAdvanced:
			return "%{skill} gives control of the first aid tent to the hero, healing 1-75 points of damage to the first unit of the selected stack."
		case LevelExpert:
			return "%{skill} gives control of the first aid tent to the hero, healing 1-100 points of damage to the first unit of the selected stack."
		default:
			return "%{skill} gives control of the first aid tent to the hero, healing 1-50 points of damage to the first unit of the selected stack."
		}
	case Intelligence:
		return "%{skill} increases a hero's normal maximum spell points by %{count} percent."
	case Learning:
		return "%{skill} increases a hero's earned experience by %{count} percent."
	case Resistance:
		return "%{skill} endows a hero's troops with %{count} percent magic resistance."
	case Scholar:
		switch level {
		case LevelAdvanced:
			return "%{skill} allows heroes to teach each other any spell up to 3rd level, effectively trading spells between spell books."
		case LevelExpert:
			return "%{skill} allows heroes to teach each other any spell up to 4th level, effectively trading spells between spell books."
		default:
			return "%{skill} allows heroes to teach each other 1st and 2nd level spells, effectively trading spells between spell books."
		}
	case Sorcery:
		return "%{skill} causes a hero's spells to inflict an additional %{count} percent damage in combat."
	case Tactics:
		return "%{skill} allows you to rearrange your troops just before combat, within %{count} hex rows of the commanding hero."
	case WaterMagic:
		return schoolMagicTemplate("water", level)
	default:
		return "unknown"
	}
}

func schoolMagicTemplate(school string, level Level) string {
	switch level {
	case LevelAdvanced:
		return "%{skill} allows your hero to cast " + school + " spells at reduced cost and increased effectiveness."
	case LevelExpert:
		return "%{skill} allows your hero to cast " + school + " spells at reduced cost and maximum effectiveness."
	default:
		return "%{skill} allows your hero to cast " + school + " spells at reduced cost."
	}
}

// ModifierLine returns the entry's effect value and, when non-zero, a
// display line of the form "Basic Luck +1". Used by the morale and luck
// summaries.
func (s Secondary) ModifierLine(p EffectProvider) (uint32, string) {
	value := s.Effect(p)
	if value == 0 {
		return 0, ""
	}
	return value, s.Name() + " +" + strconv.FormatUint(uint64(value), 10)
}
