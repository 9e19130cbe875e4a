package spell

import (
	"github.com/marchaven/crownspire/internal/game/skill"
)

// BonusCategory names a class of cost-reduction artifact effects. A spell
// maps to at most one category.
type BonusCategory uint8

const (
	BonusNone BonusCategory = iota
	BonusBlessCost
	BonusSummonCost
	BonusCurseCost
	BonusMindCost
)

// Caster supplies the caster-dependent inputs to spell cost: mastery in the
// four magic schools and the percent reductions granted by carried
// artifacts.
type Caster interface {
	// SchoolMastery returns the caster's level in the given school,
	// LevelNone when untrained.
	SchoolMastery(s School) skill.Level

	// CostReductionPercents returns the artifact reduction percents for the
	// category, each in [0, 100]. Order matters: the reductions compound.
	CostReductionPercents(c BonusCategory) []int
}

// costCategory maps a spell to its artifact reduction category.
func (id ID) costCategory() BonusCategory {
	switch id {
	case Bless, MassBless:
		return BonusBlessCost
	case SummonEarthElement, SummonAirElement, SummonFireElement, SummonWaterElement:
		return BonusSummonCost
	case Curse, MassCurse:
		return BonusCurseCost
	default:
		if id.IsMindInfluence() {
			return BonusMindCost
		}
		return BonusNone
	}
}

// Cost returns the mana cost of the spell for the given caster. A nil
// caster yields the base cost. The school discount for the caster's mastery
// is subtracted first, then each artifact percent is applied in turn, and
// the result never drops below 1.
//
// Precondition: every percent returned by CostReductionPercents is in
// [0, 100].
func (id ID) Cost(c Caster) uint32 {
	base := int32(id.BaseCost())
	if c == nil {
		return uint32(base)
	}

	mastery := c.SchoolMastery(id.SchoolOfMagic())
	cost := base - int32(id.CostDiscounts()[mastery])

	if cat := id.costCategory(); cat != BonusNone {
		for _, pct := range c.CostReductionPercents(cat) {
			if pct < 0 || pct > 100 {
				panic("spell: cost reduction percent out of range")
			}
			cost = cost * int32(100-pct) / 100
		}
	}

	if cost < 1 {
		return 1
	}
	return uint32(cost)
}
