package spell

// Level reports the power tier of the spell, 1 (weakest) through 5
// (strongest). Ids outside the tier system (None, the random
// placeholders, Petrify) report 0.
func (id ID) Level() int {
	switch id {
	case Bless, BloodLust, Cure, Curse, DispelMagic, Haste, MagicArrow,
		Shield, Slow, Stoneskin,
		ViewMines, ViewResources:
		return 1
	case Blind, ColdRay, DeathRipple, DisruptingRay, DragonSlayer,
		LightningBolt, Steelskin,
		Haunt, SummonBoat, ViewArtifacts, Visions:
		return 2
	case AnimateDead, AntiMagic, ColdRing, DeathWave, Earthquake, Fireball,
		HolyWord, MassBless, MassCurse, MassDispel, MassHaste, Paralyze,
		Teleport,
		IdentifyHero, ViewHeroes, ViewTowns:
		return 3
	case Berserker, ChainLightning, ElementalStorm, Fireblast, HolyShout,
		MassCure, MassShield, MassSlow, MeteorShower, Resurrect,
		SetEarthGuardian, SetAirGuardian, SetFireGuardian, SetWaterGuardian,
		TownGate, ViewAll:
		return 4
	case Armageddon, Hypnotize, MirrorImage, ResurrectTrue,
		SummonEarthElement, SummonAirElement, SummonFireElement, SummonWaterElement,
		DimensionDoor, TownPortal:
		return 5
	default:
		return 0
	}
}

// IsCombat reports whether the spell is cast on the battlefield. None and
// every adventure-map spell report false.
func (id ID) IsCombat() bool {
	switch id {
	case None,
		ViewMines, ViewResources, ViewArtifacts, ViewTowns, ViewHeroes, ViewAll,
		IdentifyHero, SummonBoat, DimensionDoor, TownGate, TownPortal,
		Visions, Haunt,
		SetEarthGuardian, SetAirGuardian, SetFireGuardian, SetWaterGuardian:
		return false
	default:
		return true
	}
}

// IsAdventure reports whether the spell is cast from the adventure map.
// None is neither a combat nor an adventure spell.
func (id ID) IsAdventure() bool {
	return id != None && !id.IsCombat()
}

// IsGuardianType reports whether the spell plants guardians on a mine.
func (id ID) IsGuardianType() bool {
	switch id {
	case Haunt, SetEarthGuardian, SetAirGuardian, SetFireGuardian, SetWaterGuardian:
		return true
	default:
		return false
	}
}

// Damage returns the per-power-point damage of a direct-damage spell, or 0
// for spells that deal no direct damage.
func (id ID) Damage() uint32 {
	if !id.IsDamage() {
		return 0
	}
	return id.ExtraValue()
}

// IsDamage reports whether the spell deals direct damage.
func (id ID) IsDamage() bool {
	switch id {
	case MagicArrow, Fireball, Fireblast, LightningBolt, ColdRing, DeathWave,
		HolyWord, ChainLightning, Armageddon, ElementalStorm, MeteorShower,
		ColdRay, HolyShout, DeathRipple:
		return true
	default:
		return false
	}
}

// IsMindInfluence reports whether the spell attacks the target's mind.
// Mindless troops are immune to these.
func (id ID) IsMindInfluence() bool {
	switch id {
	case Blind, Paralyze, Berserker, Hypnotize:
		return true
	default:
		return false
	}
}

// Restore returns the hit points healed per power point, or 0 for spells
// that do not heal.
func (id ID) Restore() uint32 {
	switch id {
	case Cure, MassCure:
		return id.ExtraValue()
	default:
		return 0
	}
}

// Resurrect returns the hit points revived per power point, or 0 for spells
// that do not raise troops.
func (id ID) Resurrect() uint32 {
	if !id.IsResurrect() {
		return 0
	}
	return id.ExtraValue()
}

// IsResurrect reports whether the spell raises fallen troops.
func (id ID) IsResurrect() bool {
	switch id {
	case AnimateDead, Resurrect, ResurrectTrue:
		return true
	default:
		return false
	}
}

// IsSummon reports whether the spell summons an elemental unit.
func (id ID) IsSummon() bool {
	switch id {
	case SummonEarthElement, SummonAirElement, SummonFireElement, SummonWaterElement:
		return true
	default:
		return false
	}
}

// IsUndeadOnly reports whether the spell only affects undead troops.
func (id ID) IsUndeadOnly() bool {
	switch id {
	case AnimateDead, HolyWord, HolyShout:
		return true
	default:
		return false
	}
}

// IsAliveOnly reports whether the spell only affects living troops.
func (id ID) IsAliveOnly() bool {
	switch id {
	case Bless, MassBless, Curse, MassCurse, DeathRipple, DeathWave,
		Resurrect, ResurrectTrue:
		return true
	default:
		return false
	}
}

// IsSingleTarget reports whether the spell affects exactly one unit.
func (id ID) IsSingleTarget() bool {
	switch id {
	case LightningBolt, Teleport, Cure, Resurrect, ResurrectTrue, Haste,
		Slow, Blind, Bless, Stoneskin, Steelskin, Curse, AntiMagic,
		DispelMagic, MagicArrow, Berserker, Paralyze, Hypnotize, ColdRay,
		DisruptingRay, DragonSlayer, BloodLust, AnimateDead, MirrorImage,
		Shield:
		return true
	default:
		return false
	}
}

// IsApplyWithoutFocusObject reports whether the spell is cast without
// selecting a target unit.
func (id ID) IsApplyWithoutFocusObject() bool {
	if id.IsMassActions() || id.IsSummon() {
		return true
	}
	switch id {
	case DeathRipple, DeathWave, Earthquake, HolyWord, HolyShout,
		Armageddon, ElementalStorm:
		return true
	default:
		return false
	}
}

// IsEffectDispel reports whether the spell strips active effects from its
// targets.
func (id ID) IsEffectDispel() bool {
	switch id {
	case Cure, MassCure, DispelMagic, MassDispel:
		return true
	default:
		return false
	}
}

// IsApplyToAnyTroops reports whether the spell may target friend or foe.
func (id ID) IsApplyToAnyTroops() bool {
	switch id {
	case DispelMagic, MassDispel:
		return true
	default:
		return false
	}
}

// IsApplyToFriends reports whether the spell targets the caster's own
// troops.
func (id ID) IsApplyToFriends() bool {
	switch id {
	case Bless, BloodLust, Cure, Haste, Shield, Stoneskin, DragonSlayer,
		Steelskin, AnimateDead, AntiMagic, Teleport, Resurrect, MirrorImage,
		ResurrectTrue,
		MassBless, MassCure, MassHaste, MassShield:
		return true
	default:
		return false
	}
}

// IsMassActions reports whether the spell affects a whole side at once.
func (id ID) IsMassActions() bool {
	switch id {
	case MassCure, MassHaste, MassSlow, MassBless, MassCurse, MassDispel,
		MassShield:
		return true
	default:
		return false
	}
}

// IsApplyToEnemies reports whether the spell targets opposing troops.
func (id ID) IsApplyToEnemies() bool {
	switch id {
	case MassSlow, MassCurse,
		Curse, MagicArrow, Slow, Blind, ColdRay, DisruptingRay,
		LightningBolt, ChainLightning, Paralyze, Berserker, Hypnotize:
		return true
	default:
		return false
	}
}
