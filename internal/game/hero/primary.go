package hero

import "github.com/marchaven/crownspire/internal/game/weighted"

// PrimarySkill identifies one of the four primary stats. The zero value is
// PrimaryUnknown, the "nothing advanced" sentinel.
type PrimarySkill uint8

const (
	PrimaryUnknown PrimarySkill = iota
	Attack
	Defense
	Power
	Knowledge
)

// String returns the display name for the primary skill.
func (p PrimarySkill) String() string {
	switch p {
	case Attack:
		return "Attack Skill"
	case Defense:
		return "Defense Skill"
	case Power:
		return "Spell Power"
	case Knowledge:
		return "Knowledge"
	default:
		return "Unknown"
	}
}

// PrimaryStats holds the four primary counters. Each is non-negative and
// advances by exactly one per level-up event.
type PrimaryStats struct {
	Attack    int
	Defense   int
	Power     int
	Knowledge int
}

// PrimaryWeights is a per-race weight table for the primary level-up draw.
type PrimaryWeights struct {
	Attack    uint32
	Defense   uint32
	Power     uint32
	Knowledge uint32
}

// LevelUp draws one primary skill from the weight table and increments it.
//
// Postcondition: exactly one counter advances by one and the drawn skill is
// returned; with an all-zero table nothing advances and PrimaryUnknown is
// returned. Deterministic for a fixed seed and table.
func (s *PrimaryStats) LevelUp(w PrimaryWeights, seed uint32) PrimarySkill {
	q := weighted.NewQueue[PrimarySkill](4)
	q.Push(Attack, w.Attack)
	q.Push(Defense, w.Defense)
	q.Push(Power, w.Power)
	q.Push(Knowledge, w.Knowledge)

	result, ok := q.Pick(seed)
	if !ok {
		return PrimaryUnknown
	}

	switch result {
	case Attack:
		s.Attack++
	case Defense:
		s.Defense++
	case Power:
		s.Power++
	case Knowledge:
		s.Knowledge++
	}
	return result
}
