package ruleset

import (
	"fmt"
	"path/filepath"

	"github.com/marchaven/crownspire/internal/game/hero"
	"github.com/marchaven/crownspire/internal/game/skill"
	"github.com/marchaven/crownspire/internal/game/spell"
)

// Registry provides fast lookup of validated race and skill data. It is the
// effect and weight provider for the progression engine.
type Registry struct {
	races  map[hero.Race]*raceEntry
	values map[skill.Kind]SkillValue
	witch  []skill.Kind
}

type raceEntry struct {
	stats   *RaceStats
	initial []skill.Secondary
	spell   spell.ID
	weights map[skill.Kind]uint32
}

// NewRegistry loads and validates the full static data set under dataDir:
// race files in dataDir/races, per-level effects in dataDir/skills.yaml and
// the witch's hut roster in dataDir/witchs_hut.yaml.
//
// Postcondition: Returns a registry with every identifier resolved, or a
// non-nil error naming the offending file entry.
func NewRegistry(dataDir string) (*Registry, error) {
	loaded, err := LoadRaceStats(filepath.Join(dataDir, "races"))
	if err != nil {
		return nil, err
	}

	r := &Registry{
		races:  make(map[hero.Race]*raceEntry, len(loaded)),
		values: make(map[skill.Kind]SkillValue),
	}

	for _, stats := range loaded {
		race, err := hero.ParseRace(stats.Race)
		if err != nil {
			return nil, fmt.Errorf("race file: %w", err)
		}
		entry := &raceEntry{stats: stats, weights: make(map[skill.Kind]uint32, len(stats.MatureSecondary))}

		for _, grant := range stats.InitialSecondary {
			kind, err := skill.ParseKind(grant.Skill)
			if err != nil {
				return nil, fmt.Errorf("race %s initial secondary: %w", stats.Race, err)
			}
			level, err := skill.ParseLevelKey(grant.Level)
			if err != nil {
				return nil, fmt.Errorf("race %s initial secondary %s: %w", stats.Race, grant.Skill, err)
			}
			entry.initial = append(entry.initial, skill.Secondary{Kind: kind, Level: level})
		}

		for key, weight := range stats.MatureSecondary {
			kind, err := skill.ParseKind(key)
			if err != nil {
				return nil, fmt.Errorf("race %s mature secondary: %w", stats.Race, err)
			}
			entry.weights[kind] = weight
		}

		if stats.InitialSpell != "" {
			id, err := spell.ParseName(stats.InitialSpell)
			if err != nil {
				return nil, fmt.Errorf("race %s: %w", stats.Race, err)
			}
			entry.spell = id
		}

		r.races[race] = entry
	}

	values, err := LoadSkillValues(filepath.Join(dataDir, "skills.yaml"))
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		kind, err := skill.ParseKind(v.Skill)
		if err != nil {
			return nil, fmt.Errorf("skill values: %w", err)
		}
		r.values[kind] = v
	}

	witch, err := LoadWitchsHutSkills(filepath.Join(dataDir, "witchs_hut.yaml"))
	if err != nil {
		return nil, err
	}
	for _, key := range witch {
		kind, err := skill.ParseKind(key)
		if err != nil {
			return nil, fmt.Errorf("witch's hut roster: %w", err)
		}
		r.witch = append(r.witch, kind)
	}

	return r, nil
}

// Races lists the loaded factions.
func (r *Registry) Races() []hero.Race {
	races := make([]hero.Race, 0, len(r.races))
	for race := range r.races {
		races = append(races, race)
	}
	return races
}

// StatsFor returns the raw race file for the given faction, if loaded.
func (r *Registry) StatsFor(race hero.Race) (*RaceStats, bool) {
	entry, ok := r.races[race]
	if !ok {
		return nil, false
	}
	return entry.stats, true
}

// SkillEffect returns the numeric effect of a skill at a level, 0 when the
// skill is not in the value table or the level is LevelNone.
func (r *Registry) SkillEffect(kind skill.Kind, level skill.Level) uint32 {
	v, ok := r.values[kind]
	if !ok {
		return 0
	}
	switch level {
	case skill.LevelBasic:
		return v.Basic
	case skill.LevelAdvanced:
		return v.Advanced
	case skill.LevelExpert:
		return v.Expert
	default:
		return 0
	}
}

// raceWeights adapts one faction's mature secondary table to the planner.
type raceWeights struct {
	weights map[skill.Kind]uint32
}

func (w raceWeights) SkillWeight(kind skill.Kind) uint32 {
	return w.weights[kind]
}

// Weights returns the level-up weight provider for a faction. Unknown races
// yield an all-zero provider, which draws nothing.
func (r *Registry) Weights(race hero.Race) skill.WeightProvider {
	entry, ok := r.races[race]
	if !ok {
		return raceWeights{}
	}
	return raceWeights{weights: entry.weights}
}

// InitialPrimary returns a faction's starting primary stats, for a hero or
// for a castle captain.
func (r *Registry) InitialPrimary(race hero.Race, captain bool) hero.PrimaryStats {
	entry, ok := r.races[race]
	if !ok {
		return hero.PrimaryStats{}
	}
	if captain {
		return entry.stats.CaptainPrimary
	}
	return entry.stats.InitialPrimary
}

// PrimaryWeights returns the primary-draw table for a hero of the given
// level: the under-maturity table while level is strictly below the race's
// over_level, the over table from then on.
func (r *Registry) PrimaryWeights(race hero.Race, level int) hero.PrimaryWeights {
	entry, ok := r.races[race]
	if !ok {
		return hero.PrimaryWeights{}
	}
	if entry.stats.OverLevel > level {
		return entry.stats.MaturePrimaryUnder
	}
	return entry.stats.MaturePrimaryOver
}

// InitialSecondaries returns a faction's starting secondary skills.
func (r *Registry) InitialSecondaries(race hero.Race) []skill.Secondary {
	entry, ok := r.races[race]
	if !ok {
		return nil
	}
	out := make([]skill.Secondary, len(entry.initial))
	copy(out, entry.initial)
	return out
}

// InitialSpell returns a faction's starting spell, None for factions that
// start without one.
func (r *Registry) InitialSpell(race hero.Race) spell.ID {
	entry, ok := r.races[race]
	if !ok {
		return spell.None
	}
	return entry.spell
}

// WitchsHutKinds returns the skills a witch's hut may teach.
func (r *Registry) WitchsHutKinds() []skill.Kind {
	out := make([]skill.Kind, len(r.witch))
	copy(out, r.witch)
	return out
}

// RandomWitchsHutSkill draws one teachable skill, deterministically from
// seed.
func (r *Registry) RandomWitchsHutSkill(seed uint32) skill.Kind {
	return skill.RandForWitchsHut(r.witch, seed)
}

// NewHero builds a level-1 hero of the given race with its faction's
// starting primary stats and secondary skills applied.
//
// Precondition: race must be loaded in the registry.
func (r *Registry) NewHero(name string, race hero.Race) *hero.Hero {
	entry, ok := r.races[race]
	if !ok {
		panic(fmt.Sprintf("ruleset: race %s not loaded", race))
	}
	h := hero.New(name, race)
	h.Primary = entry.stats.InitialPrimary
	for _, sec := range entry.initial {
		h.Skills.AddSkill(sec)
	}
	return h
}
