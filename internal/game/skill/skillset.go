package skill

import "strings"

// MaxSlots is the hard ceiling on simultaneously held secondary skills.
const MaxSlots = 8

// SkillSet is the per-hero roster of up to MaxSlots secondary-skill slots.
//
// Invariants: no two valid entries share a kind; the slot count never
// exceeds MaxSlots. Insertion order is preserved but carries no meaning —
// lookups scan by kind, an O(slots) cost acceptable under the ≤8 bound.
//
// A SkillSet is exclusively owned by its hero and is not safe for concurrent
// mutation.
type SkillSet struct {
	slots []Secondary
}

// NewSkillSet returns an empty roster with capacity reserved.
func NewSkillSet() *SkillSet {
	return &SkillSet{slots: make([]Secondary, 0, MaxSlots)}
}

// NewSkillSetFromSlots restores a roster from persisted slots.
//
// Postcondition: sequences longer than MaxSlots are truncated to MaxSlots —
// a required compatibility behavior for old save data, not an error.
func NewSkillSetFromSlots(slots []Secondary) *SkillSet {
	if len(slots) > MaxSlots {
		slots = slots[:MaxSlots]
	}
	ss := NewSkillSet()
	ss.slots = append(ss.slots, slots...)
	return ss
}

// Slots returns a copy of the underlying slot sequence, empty slots included.
func (ss *SkillSet) Slots() []Secondary {
	out := make([]Secondary, len(ss.slots))
	copy(out, ss.slots)
	return out
}

// GetLevel returns the hero's proficiency in the kind, LevelNone if absent.
func (ss *SkillSet) GetLevel(kind Kind) Level {
	for i := range ss.slots {
		if ss.slots[i].Kind == kind {
			return ss.slots[i].Level
		}
	}
	return LevelNone
}

// Effect returns the numeric effect value for the kind at the hero's current
// proficiency, 0 if the skill is absent.
func (ss *SkillSet) Effect(kind Kind, p EffectProvider) uint32 {
	for i := range ss.slots {
		if ss.slots[i].Kind == kind {
			return ss.slots[i].Effect(p)
		}
	}
	return 0
}

// Count returns the number of valid (non-empty) entries.
func (ss *SkillSet) Count() int {
	n := 0
	for i := range ss.slots {
		if ss.slots[i].IsValid() {
			n++
		}
	}
	return n
}

// TotalLevel sums the proficiency levels of all valid entries, a coarse
// measure of overall skill investment.
func (ss *SkillSet) TotalLevel() int {
	total := 0
	for i := range ss.slots {
		if ss.slots[i].IsValid() {
			total += int(ss.slots[i].Level)
		}
	}
	return total
}

// AddSkill applies the entry to the roster and reports whether it was
// applied.
//
// An invalid entry is ignored. If the kind is already present its level is
// overwritten — a duplicate is never created. Otherwise the entry occupies
// the first empty slot, or appends while under capacity. At capacity the
// skill is simply not learned; callers that care can check the result.
func (ss *SkillSet) AddSkill(entry Secondary) bool {
	if !entry.IsValid() {
		return false
	}
	for i := range ss.slots {
		if ss.slots[i].Kind == entry.Kind {
			ss.slots[i].Level = entry.Level
			return true
		}
	}
	for i := range ss.slots {
		if !ss.slots[i].IsValid() {
			ss.slots[i] = entry
			return true
		}
	}
	if len(ss.slots) < MaxSlots {
		ss.slots = append(ss.slots, entry)
		return true
	}
	return false
}

// FindSkill returns a mutable reference to the entry holding the kind, or
// nil if absent.
func (ss *SkillSet) FindSkill(kind Kind) *Secondary {
	for i := range ss.slots {
		if ss.slots[i].Kind == kind {
			return &ss.slots[i]
		}
	}
	return nil
}

// FillMax pads the roster up to capacity by repeating the entry into every
// remaining slot. Used only by scripted events and debug setups.
func (ss *SkillSet) FillMax(entry Secondary) {
	for len(ss.slots) < MaxSlots {
		ss.slots = append(ss.slots, entry)
	}
}

// String renders the roster as a comma-separated list of qualified names.
func (ss *SkillSet) String() string {
	var b strings.Builder
	for i := range ss.slots {
		b.WriteString(ss.slots[i].Name())
		b.WriteString(", ")
	}
	return b.String()
}
