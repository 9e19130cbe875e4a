package spell

import (
	"github.com/marchaven/crownspire/internal/game/hero"
	"github.com/marchaven/crownspire/internal/game/weighted"
)

// Rand draws a spell of the given level, deterministically from seed. When
// adventure is true only adventure-map spells are eligible, otherwise only
// combat spells. Returns None when no spell matches.
func Rand(level int, adventure bool, seed uint32) ID {
	var entries []weighted.Entry[ID]
	for raw := None; raw < Petrify; raw++ {
		if raw.Level() != level {
			continue
		}
		if adventure && !raw.IsAdventure() {
			continue
		}
		if !adventure && !raw.IsCombat() {
			continue
		}
		entries = append(entries, weighted.Entry[ID]{Item: raw, Weight: 1})
	}

	id, ok := weighted.Pick(seed, entries)
	if !ok {
		return None
	}
	return id
}

// RandCombat draws a combat spell of the given level.
func RandCombat(level int, seed uint32) ID {
	return Rand(level, false, seed)
}

// RandAdventure draws an adventure spell of the given level, falling back
// to a combat spell when the level has no adventure spells.
func RandAdventure(level int, seed uint32) ID {
	if id := Rand(level, true, seed); id.IsValid() {
		return id
	}
	return RandCombat(level, seed)
}

// AllSpellIDsForSpellbook lists every id a spellbook can hold, in id order.
// Pass a level in 1..5 to restrict the list, or any other value for all
// levels. None and the placeholder ids are never included.
func AllSpellIDsForSpellbook(spellLevel int) []ID {
	result := make([]ID, 0, Count)
	for raw := None; int(raw) < Count; raw++ {
		if raw == None || (raw >= Random && raw <= Petrify) {
			continue
		}
		if spellLevel > 0 && raw.Level() != spellLevel {
			continue
		}
		result = append(result, raw)
	}
	return result
}

// WeightForRace returns the selection weight of the spell when a mage guild
// or reward site rolls spells for a hero of the given race. A weight of 0
// excludes the spell.
func (id ID) WeightForRace(race hero.Race) uint32 {
	switch id {
	case HolyWord, HolyShout:
		if race == hero.Necromancer {
			return 0
		}
	case DeathRipple, DeathWave:
		if race != hero.Necromancer {
			return 0
		}
	case SummonEarthElement, SummonAirElement, SummonFireElement, SummonWaterElement,
		TownPortal, Visions, Haunt,
		SetEarthGuardian, SetAirGuardian, SetFireGuardian, SetWaterGuardian:
		return 0
	}
	return 10
}
