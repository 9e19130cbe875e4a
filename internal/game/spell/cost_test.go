package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/marchaven/crownspire/internal/game/skill"
)

type stubCaster struct {
	mastery  map[School]skill.Level
	percents map[BonusCategory][]int
}

func (c *stubCaster) SchoolMastery(s School) skill.Level {
	return c.mastery[s]
}

func (c *stubCaster) CostReductionPercents(cat BonusCategory) []int {
	return c.percents[cat]
}

func TestCostNilCasterIsBaseCost(t *testing.T) {
	assert.Equal(t, uint32(9), Fireball.Cost(nil))
	assert.Equal(t, uint32(24), ChainLightning.Cost(nil))
	assert.Equal(t, uint32(1), ViewMines.Cost(nil))
}

func TestCostSchoolMasteryDiscount(t *testing.T) {
	caster := &stubCaster{mastery: map[School]skill.Level{SchoolFire: skill.LevelExpert}}

	assert.Equal(t, uint32(7), Fireball.Cost(caster))

	// An untrained school gets no discount.
	assert.Equal(t, uint32(10), LightningBolt.Cost(caster))
}

func TestCostArtifactReduction(t *testing.T) {
	caster := &stubCaster{
		mastery:  map[School]skill.Level{SchoolWater: skill.LevelBasic},
		percents: map[BonusCategory][]int{BonusBlessCost: {50}},
	}

	// Bless: 5 base, -1 for basic water mastery, then halved.
	assert.Equal(t, uint32(2), Bless.Cost(caster))
}

func TestCostArtifactReductionsCompound(t *testing.T) {
	caster := &stubCaster{percents: map[BonusCategory][]int{BonusMindCost: {50, 50}}}

	// Blind: 10 base, halved twice.
	assert.Equal(t, uint32(2), Blind.Cost(caster))
}

func TestCostNeverBelowOne(t *testing.T) {
	// View Mines costs 1 and the earth discount takes it to 0 before the
	// floor applies.
	caster := &stubCaster{mastery: map[School]skill.Level{SchoolEarth: skill.LevelBasic}}
	assert.Equal(t, uint32(1), ViewMines.Cost(caster))

	full := &stubCaster{
		mastery:  map[School]skill.Level{SchoolWater: skill.LevelExpert},
		percents: map[BonusCategory][]int{BonusBlessCost: {100}},
	}
	assert.Equal(t, uint32(1), Bless.Cost(full))
}

func TestCostCategories(t *testing.T) {
	assert.Equal(t, BonusBlessCost, MassBless.costCategory())
	assert.Equal(t, BonusSummonCost, SummonEarthElement.costCategory())
	assert.Equal(t, BonusCurseCost, Curse.costCategory())
	assert.Equal(t, BonusMindCost, Hypnotize.costCategory())
	assert.Equal(t, BonusNone, Fireball.costCategory())
}

func TestCostFloorProperty(t *testing.T) {
	ids := AllSpellIDsForSpellbook(0)

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.SampledFrom(ids).Draw(t, "id")
		mastery := skill.Level(rapid.IntRange(0, 3).Draw(t, "mastery"))
		pct := rapid.IntRange(0, 100).Draw(t, "pct")

		caster := &stubCaster{
			mastery: map[School]skill.Level{id.SchoolOfMagic(): mastery},
			percents: map[BonusCategory][]int{
				BonusBlessCost:  {pct},
				BonusSummonCost: {pct},
				BonusCurseCost:  {pct},
				BonusMindCost:   {pct},
			},
		}

		cost := id.Cost(caster)
		if cost < 1 {
			t.Fatalf("cost of %s dropped to %d", id.Name(), cost)
		}
		if cost > id.BaseCost() {
			t.Fatalf("discounts raised cost of %s to %d", id.Name(), cost)
		}
	})
}
