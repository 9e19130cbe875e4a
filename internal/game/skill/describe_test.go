package skill_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchaven/crownspire/internal/game/skill"
)

// effectTable is a test EffectProvider keyed by kind and level.
type effectTable map[skill.Kind][3]uint32

func (e effectTable) SkillEffect(kind skill.Kind, level skill.Level) uint32 {
	if level == skill.LevelNone {
		return 0
	}
	return e[kind][level-1]
}

func TestSecondary_Name(t *testing.T) {
	s := skill.Secondary{Kind: skill.EagleEye, Level: skill.LevelAdvanced}
	assert.Equal(t, "Advanced Eagle Eye", s.Name())
	assert.Equal(t, "unknown", skill.Secondary{}.Name())
}

func TestSecondary_String(t *testing.T) {
	var s fmt.Stringer = skill.Secondary{Kind: skill.Archery, Level: skill.LevelAdvanced}
	assert.Equal(t, "Advanced Archery", s.String())
	assert.Equal(t, "unknown", skill.Secondary{}.String())
}

func TestSecondary_NameWithBonus(t *testing.T) {
	necro := skill.Secondary{Kind: skill.Necromancy, Level: skill.LevelExpert}
	assert.Equal(t, "Expert Necromancy (+2)", necro.NameWithBonus(2))
	assert.Equal(t, "Expert Necromancy", necro.NameWithBonus(0))

	other := skill.Secondary{Kind: skill.Luck, Level: skill.LevelBasic}
	assert.Equal(t, "Basic Luck", other.NameWithBonus(3), "bonus only renders for Necromancy")
}

func TestLevel_StringWithBonus(t *testing.T) {
	assert.Equal(t, "Expert+3", skill.LevelExpert.StringWithBonus(skill.Necromancy, 3))
	assert.Equal(t, "Expert", skill.LevelExpert.StringWithBonus(skill.Archery, 3))
}

func TestRenderTemplate(t *testing.T) {
	out := skill.RenderTemplate("%{skill} grants %{count} percent.", "Basic Archery", 10)
	assert.Equal(t, "Basic Archery grants 10 percent.", out)
}

func TestSecondary_Description(t *testing.T) {
	effects := effectTable{skill.Archery: {10, 25, 50}}
	s := skill.Secondary{Kind: skill.Archery, Level: skill.LevelAdvanced}

	out := s.Description(skill.DescribeContext{Effects: effects})
	assert.Equal(t, "Advanced Archery increases the damage done by range attacking creatures by 25 percent.", out)
}

func TestSecondary_Description_NecromancyCountAdjustment(t *testing.T) {
	effects := effectTable{skill.Necromancy: {10, 20, 30}}
	s := skill.Secondary{Kind: skill.Necromancy, Level: skill.LevelAdvanced}

	// Hero value 20, shrine bonus 3 → percent 50; displayed count is
	// value + (percent - heroValue) = 20 + 30 = 50.
	percent := skill.NecromancyPercent(20, 3)
	require.Equal(t, uint32(50), percent)

	out := s.Description(skill.DescribeContext{
		Effects:               effects,
		NecromancyPercent:     percent,
		NecromancyValue:       20,
		NecromancyShrineBonus: 3,
	})
	assert.Contains(t, out, "50 percent")
	assert.Contains(t, out, "Advanced Necromancy (+3)")
}

func TestDescriptionTemplate_LevelVariants(t *testing.T) {
	basic := skill.DescriptionTemplate(skill.Pathfinding, skill.LevelBasic)
	expert := skill.DescriptionTemplate(skill.Pathfinding, skill.LevelExpert)
	assert.Contains(t, basic, "%{count}")
	assert.NotContains(t, expert, "%{count}", "Expert Pathfinding eliminates the penalty outright")

	assert.Equal(t, "unknown", skill.DescriptionTemplate(skill.Unknown, skill.LevelBasic))
}

func TestNecromancyBonus(t *testing.T) {
	assert.Equal(t, uint32(0), skill.NecromancyBonus(0, false))
	assert.Equal(t, uint32(1), skill.NecromancyBonus(0, true))
	assert.Equal(t, uint32(4), skill.NecromancyBonus(3, true))
	assert.Equal(t, uint32(7), skill.NecromancyBonus(9, true), "bonus caps at 7")
}

func TestNecromancyPercent(t *testing.T) {
	assert.Equal(t, uint32(30), skill.NecromancyPercent(10, 2))
	assert.Equal(t, uint32(100), skill.NecromancyPercent(95, 7), "percent caps at 100")
}

func TestSecondary_ModifierLine(t *testing.T) {
	effects := effectTable{skill.Luck: {1, 2, 3}}

	value, line := skill.Secondary{Kind: skill.Luck, Level: skill.LevelAdvanced}.ModifierLine(effects)
	assert.Equal(t, uint32(2), value)
	assert.Equal(t, "Advanced Luck +2", line)

	value, line = skill.Secondary{Kind: skill.Leadership, Level: skill.LevelBasic}.ModifierLine(effects)
	assert.Equal(t, uint32(0), value)
	assert.Empty(t, line)
}
