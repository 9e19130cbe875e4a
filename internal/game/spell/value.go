package spell

// MonsterStrengthEstimator rates the battlefield strength of the unit a
// summoning spell produces.
type MonsterStrengthEstimator interface {
	// SummonedStrength returns the strength of one summoned creature for
	// the spell. Ids that summon nothing return 0.
	SummonedStrength(id ID) float64
}

// Valuator scores spells for strategic planning.
type Valuator struct {
	monsters MonsterStrengthEstimator
}

// NewValuator builds a Valuator.
//
// Precondition: monsters is not nil.
func NewValuator(monsters MonsterStrengthEstimator) *Valuator {
	if monsters == nil {
		panic("spell: nil monster strength estimator")
	}
	return &Valuator{monsters: monsters}
}

// StrategicValue estimates how much the spell is worth to a hero with the
// given army strength, current mana pool, spell power and school damage
// modifier. Higher is better; spells the hero cannot meaningfully use score
// 0.
func (v *Valuator) StrategicValue(id ID, armyStrength float64, currentSpellPoints uint32, spellPower int, schoolSpellModifier int) float64 {
	cost := id.Cost(nil)
	var casts uint32
	if cost > 0 {
		casts = currentSpellPoints / cost
		if casts > 10 {
			casts = 10
		}
	}

	// Quadratic falloff diminishes returns from repeat casts, topping out
	// near x5 at ten uses.
	amountModifier := float64(casts) - 0.05*float64(casts)*float64(casts)
	if casts == 1 {
		amountModifier = 1
	}

	if id.IsAdventure() {
		switch id {
		case DimensionDoor:
			return 500 * amountModifier
		case TownGate, TownPortal:
			return 250 * amountModifier
		case ViewAll:
			return 500
		default:
			return 0
		}
	}

	if id.IsDamage() {
		return amountModifier * (float64(id.Damage())*float64(spellPower) + float64(schoolSpellModifier))
	}

	// Battle-turning effects are valued against the whole army.
	if id.IsResurrect() || id.IsMassActions() || id == Blind || id == Paralyze {
		return armyStrength * 0.1 * amountModifier
	}

	if id.IsSummon() {
		// A summoned stack rarely survives the turn it appears, so repeat
		// casts earn no extra credit.
		return v.monsters.SummonedStrength(id) * float64(id.ExtraValue()) * float64(spellPower)
	}

	return armyStrength * 0.04 * amountModifier
}
