// Package ruleset loads the static race and skill data that parameterizes
// hero progression: initial stats, level-up weight tables and per-level
// skill effect values.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marchaven/crownspire/internal/game/hero"
)

// SecondaryGrant is one starting secondary skill in a race file.
type SecondaryGrant struct {
	Skill string `yaml:"skill"`
	Level string `yaml:"level"`
}

// RaceStats defines a faction's progression parameters for hero creation
// and level-up draws.
//
// Precondition: Race must name a real faction after loading; skill and
// level identifiers in the file must parse.
type RaceStats struct {
	Race string `yaml:"race"`

	InitialPrimary hero.PrimaryStats `yaml:"initial_primary"`
	CaptainPrimary hero.PrimaryStats `yaml:"captain_primary"`
	InitialSpell   string            `yaml:"initial_spell"`

	// OverLevel splits the primary draw tables: heroes strictly below it
	// use MaturePrimaryUnder, the rest MaturePrimaryOver.
	OverLevel          int                 `yaml:"over_level"`
	MaturePrimaryUnder hero.PrimaryWeights `yaml:"mature_primary_under"`
	MaturePrimaryOver  hero.PrimaryWeights `yaml:"mature_primary_over"`

	InitialSecondary []SecondaryGrant  `yaml:"initial_secondary"`
	MatureSecondary  map[string]uint32 `yaml:"mature_secondary"`
}

// LoadRaceStats reads all .yaml files in dir and parses each as a RaceStats.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed race files (may be empty slice) or a non-nil error.
func LoadRaceStats(dir string) ([]*RaceStats, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	stats := make([]*RaceStats, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var s RaceStats
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing race file %s: %w", path, err)
		}
		stats = append(stats, &s)
	}
	return stats, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
