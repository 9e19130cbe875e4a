package skill

import "fmt"

// Secondary is one (kind, proficiency) pair. The zero value is the empty-slot
// sentinel: Unknown kind at LevelNone.
type Secondary struct {
	Kind  Kind
	Level Level
}

// IsValid reports whether the entry holds a learned skill: a real kind at a
// non-None level.
func (s Secondary) IsValid() bool {
	return s.Kind.IsValid() && s.Level != LevelNone
}

// NextLevel advances the entry one proficiency step, saturating at Expert.
func (s *Secondary) NextLevel() {
	s.Level = s.Level.Next()
}

// Reset returns the entry to the empty-slot sentinel.
func (s *Secondary) Reset() {
	s.Kind = Unknown
	s.Level = LevelNone
}

// EffectProvider supplies the per-skill, per-level numeric effect values held
// by the static race/skill data tables.
type EffectProvider interface {
	// SkillEffect returns the numeric effect for the kind at the level,
	// or 0 when no value is configured.
	SkillEffect(kind Kind, level Level) uint32
}

// Effect returns the entry's numeric effect value from the static tables.
// Invalid entries have no effect.
func (s Secondary) Effect(p EffectProvider) uint32 {
	if !s.IsValid() {
		return 0
	}
	return p.SkillEffect(s.Kind, s.Level)
}

// Name returns the qualified display name, e.g. "Advanced Archery", or
// "unknown" for invalid entries.
func (s Secondary) Name() string {
	if !s.IsValid() {
		return "unknown"
	}
	return s.Level.String() + " " + s.Kind.String()
}

// String implements fmt.Stringer for log output, delegating to Name.
func (s Secondary) String() string {
	return s.Name()
}

// NameWithBonus renders the qualified name, appending the necromancy bonus
// when applicable, e.g. "Expert Necromancy (+2)".
func (s Secondary) NameWithBonus(bonus uint32) string {
	if s.Kind == Necromancy && bonus > 0 {
		return fmt.Sprintf("%s (+%d)", s.Name(), bonus)
	}
	return s.Name()
}
