package hero

import (
	"time"

	"github.com/marchaven/crownspire/internal/game/skill"
)

// Hero is a player character's persistent progression state.
//
// ID is set by the persistence layer; a zero value indicates an unsaved hero.
// A Hero and its Skills roster are exclusively owned by one caller; no
// internal locking is provided.
type Hero struct {
	ID int64

	Name  string
	Race  Race
	Level int

	Primary PrimaryStats
	Skills  *skill.SkillSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a level-1 hero with an empty skill roster.
func New(name string, race Race) *Hero {
	return &Hero{
		Name:   name,
		Race:   race,
		Level:  1,
		Skills: skill.NewSkillSet(),
	}
}
