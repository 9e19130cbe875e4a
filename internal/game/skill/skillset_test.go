package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/marchaven/crownspire/internal/game/skill"
)

func TestSecondary_IsValid(t *testing.T) {
	assert.False(t, skill.Secondary{}.IsValid(), "zero value is the empty-slot sentinel")
	assert.False(t, skill.Secondary{Kind: skill.Archery}.IsValid(), "LevelNone is not learned")
	assert.False(t, skill.Secondary{Level: skill.LevelBasic}.IsValid(), "Unknown kind is not valid")
	assert.True(t, skill.Secondary{Kind: skill.Archery, Level: skill.LevelBasic}.IsValid())
}

// TestLevel_NextSaturates verifies repeated NextLevel() calls reach Expert
// and stay there.
func TestLevel_NextSaturates(t *testing.T) {
	s := skill.Secondary{Kind: skill.Luck, Level: skill.LevelBasic}
	s.NextLevel()
	assert.Equal(t, skill.LevelAdvanced, s.Level)
	s.NextLevel()
	assert.Equal(t, skill.LevelExpert, s.Level)
	for i := 0; i < 5; i++ {
		s.NextLevel()
	}
	assert.Equal(t, skill.LevelExpert, s.Level, "Expert must saturate")
}

func TestSkillSet_GetLevel(t *testing.T) {
	ss := skill.NewSkillSet()
	assert.Equal(t, skill.LevelNone, ss.GetLevel(skill.Wisdom))

	require.True(t, ss.AddSkill(skill.Secondary{Kind: skill.Wisdom, Level: skill.LevelAdvanced}))
	assert.Equal(t, skill.LevelAdvanced, ss.GetLevel(skill.Wisdom))
	assert.Equal(t, skill.LevelNone, ss.GetLevel(skill.Luck))
}

func TestSkillSet_AddSkill_OverwritesExistingKind(t *testing.T) {
	ss := skill.NewSkillSet()
	require.True(t, ss.AddSkill(skill.Secondary{Kind: skill.Archery, Level: skill.LevelBasic}))
	require.True(t, ss.AddSkill(skill.Secondary{Kind: skill.Archery, Level: skill.LevelExpert}))

	assert.Equal(t, 1, ss.Count(), "overwrite must not create a duplicate")
	assert.Equal(t, skill.LevelExpert, ss.GetLevel(skill.Archery))
}

func TestSkillSet_AddSkill_InvalidIsIgnored(t *testing.T) {
	ss := skill.NewSkillSet()
	assert.False(t, ss.AddSkill(skill.Secondary{}))
	assert.False(t, ss.AddSkill(skill.Secondary{Kind: skill.Luck}))
	assert.Equal(t, 0, ss.Count())
}

func TestSkillSet_AddSkill_CapacityCeiling(t *testing.T) {
	ss := skill.NewSkillSet()
	kinds := skill.AllKinds()
	for i := 0; i < skill.MaxSlots; i++ {
		require.True(t, ss.AddSkill(skill.Secondary{Kind: kinds[i], Level: skill.LevelBasic}))
	}
	require.Equal(t, skill.MaxSlots, ss.Count())

	applied := ss.AddSkill(skill.Secondary{Kind: kinds[skill.MaxSlots], Level: skill.LevelBasic})
	assert.False(t, applied, "ninth distinct kind must be reported as not applied")
	assert.Equal(t, skill.MaxSlots, ss.Count())

	// Improving an already-held kind still works at capacity.
	assert.True(t, ss.AddSkill(skill.Secondary{Kind: kinds[0], Level: skill.LevelExpert}))
	assert.Equal(t, skill.LevelExpert, ss.GetLevel(kinds[0]))
}

func TestSkillSet_AddSkill_ReusesEmptySlot(t *testing.T) {
	ss := skill.NewSkillSet()
	require.True(t, ss.AddSkill(skill.Secondary{Kind: skill.Luck, Level: skill.LevelBasic}))

	entry := ss.FindSkill(skill.Luck)
	require.NotNil(t, entry)
	entry.Reset()
	require.Equal(t, 0, ss.Count())

	require.True(t, ss.AddSkill(skill.Secondary{Kind: skill.Tactics, Level: skill.LevelBasic}))
	assert.Equal(t, 1, ss.Count())
	assert.Len(t, ss.Slots(), 1, "the emptied slot must be reused, not appended past")
}

// TestSkillSet_Invariants_Property drives arbitrary AddSkill sequences and
// checks the two structural invariants: Count() <= MaxSlots and no two valid
// entries share a kind.
func TestSkillSet_Invariants_Property(t *testing.T) {
	kinds := skill.AllKinds()
	rapid.Check(t, func(rt *rapid.T) {
		ss := skill.NewSkillSet()
		n := rapid.IntRange(0, 40).Draw(rt, "ops")
		for i := 0; i < n; i++ {
			kind := kinds[rapid.IntRange(0, skill.KindCount-1).Draw(rt, "kind")]
			level := skill.Level(rapid.IntRange(0, 3).Draw(rt, "level"))
			ss.AddSkill(skill.Secondary{Kind: kind, Level: level})

			assert.LessOrEqual(rt, ss.Count(), skill.MaxSlots)
			seen := map[skill.Kind]bool{}
			for _, slot := range ss.Slots() {
				if !slot.IsValid() {
					continue
				}
				assert.False(rt, seen[slot.Kind], "duplicate kind %v", slot.Kind)
				seen[slot.Kind] = true
			}
		}
	})
}

func TestSkillSet_TotalLevel(t *testing.T) {
	ss := skill.NewSkillSet()
	ss.AddSkill(skill.Secondary{Kind: skill.Archery, Level: skill.LevelExpert})
	ss.AddSkill(skill.Secondary{Kind: skill.Luck, Level: skill.LevelBasic})
	ss.AddSkill(skill.Secondary{Kind: skill.Wisdom, Level: skill.LevelAdvanced})
	assert.Equal(t, 6, ss.TotalLevel())
}

func TestSkillSet_FillMax(t *testing.T) {
	ss := skill.NewSkillSet()
	ss.AddSkill(skill.Secondary{Kind: skill.Necromancy, Level: skill.LevelBasic})
	ss.FillMax(skill.Secondary{})

	assert.Len(t, ss.Slots(), skill.MaxSlots)
	assert.Equal(t, 1, ss.Count(), "padding with the sentinel adds no valid entries")
}

func TestNewSkillSetFromSlots_TruncatesToCapacity(t *testing.T) {
	kinds := skill.AllKinds()
	slots := make([]skill.Secondary, 0, 12)
	for i := 0; i < 12; i++ {
		slots = append(slots, skill.Secondary{Kind: kinds[i], Level: skill.LevelBasic})
	}

	ss := skill.NewSkillSetFromSlots(slots)
	assert.Len(t, ss.Slots(), skill.MaxSlots, "persisted sequences longer than capacity must truncate")
	assert.Equal(t, skill.MaxSlots, ss.Count())
	assert.Equal(t, skill.LevelNone, ss.GetLevel(kinds[8]), "truncated entries must be gone")
}

func TestParseLevel(t *testing.T) {
	lvl, err := skill.ParseLevel(2)
	require.NoError(t, err)
	assert.Equal(t, skill.LevelAdvanced, lvl)

	_, err = skill.ParseLevel(4)
	require.Error(t, err)
	assert.ErrorIs(t, err, skill.ErrInvalidData)
}

func TestParseKind(t *testing.T) {
	k, err := skill.ParseKind("eagle_eye")
	require.NoError(t, err)
	assert.Equal(t, skill.EagleEye, k)
	assert.Equal(t, "eagle_eye", k.Key())

	_, err = skill.ParseKind("basket_weaving")
	assert.ErrorIs(t, err, skill.ErrInvalidData)
}
