package skill

import (
	"errors"
	"fmt"
)

// ErrInvalidData marks values that arrived out of range from untrusted input
// such as data files or persistence rows.
var ErrInvalidData = errors.New("invalid skill data")

// Level is a secondary-skill proficiency. The zero value LevelNone means
// "not learned".
type Level uint8

const (
	LevelNone Level = iota
	LevelBasic
	LevelAdvanced
	LevelExpert
)

// Next returns the level one step up, saturating at LevelExpert.
func (l Level) Next() Level {
	switch l {
	case LevelNone:
		return LevelBasic
	case LevelBasic:
		return LevelAdvanced
	case LevelAdvanced:
		return LevelExpert
	default:
		return LevelExpert
	}
}

// String returns the display name for the level, or "None".
func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "Basic"
	case LevelAdvanced:
		return "Advanced"
	case LevelExpert:
		return "Expert"
	default:
		return "None"
	}
}

// StringWithBonus renders the level, appending the necromancy shrine/artifact
// bonus when the skill is Necromancy and a bonus is present, e.g. "Expert+3".
func (l Level) StringWithBonus(kind Kind, bonus uint32) string {
	if kind == Necromancy && bonus > 0 {
		return fmt.Sprintf("%s+%d", l.String(), bonus)
	}
	return l.String()
}

// ParseLevelKey resolves a data-file level identifier.
//
// Postcondition: returns a real Level or a non-nil error; identifiers come
// from data files, never silently mapped to LevelNone.
func ParseLevelKey(key string) (Level, error) {
	switch key {
	case "none":
		return LevelNone, nil
	case "basic":
		return LevelBasic, nil
	case "advanced":
		return LevelAdvanced, nil
	case "expert":
		return LevelExpert, nil
	default:
		return LevelNone, fmt.Errorf("%w: unknown level %q", ErrInvalidData, key)
	}
}

// ParseLevel validates a raw persisted level value.
//
// Postcondition: returns a Level in [LevelNone, LevelExpert] or ErrInvalidData.
func ParseLevel(raw uint8) (Level, error) {
	if raw > uint8(LevelExpert) {
		return LevelNone, fmt.Errorf("%w: level %d out of range", ErrInvalidData, raw)
	}
	return Level(raw), nil
}
