package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillValue holds the per-level numeric effect of one secondary skill.
type SkillValue struct {
	Skill    string `yaml:"skill"`
	Basic    uint32 `yaml:"basic"`
	Advanced uint32 `yaml:"advanced"`
	Expert   uint32 `yaml:"expert"`
}

type skillValuesFile struct {
	Skills []SkillValue `yaml:"skills"`
}

// LoadSkillValues reads the per-level effect table from a single YAML file.
//
// Precondition: path must be a readable file.
// Postcondition: Returns all parsed values (may be empty slice) or a non-nil error.
func LoadSkillValues(path string) ([]SkillValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f skillValuesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing skill values file %s: %w", path, err)
	}
	return f.Skills, nil
}

type witchsHutFile struct {
	Skills []string `yaml:"skills"`
}

// LoadWitchsHutSkills reads the identifiers of skills a witch's hut may
// teach.
//
// Precondition: path must be a readable file.
// Postcondition: Returns the parsed identifiers or a non-nil error.
func LoadWitchsHutSkills(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f witchsHutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing witch's hut file %s: %w", path, err)
	}
	return f.Skills, nil
}
