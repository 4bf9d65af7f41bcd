package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the reviewer-team mapping loaded from the settings file.
// Keyed by organization, then repository.
type Settings struct {
	ReviewerTeams map[string]map[string]TeamNames `yaml:"reviewer_teams"`
}

// TeamNames names the tier1/tier2 review teams configured for a repository.
type TeamNames struct {
	Tier1 string `yaml:"tier1"`
	Tier2 string `yaml:"tier2"`
}

// LoadSettings reads and parses the yaml settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	return &s, nil
}

// TeamNames returns the configured tier team names for an org/repo pair.
// The second return is false when no mapping exists.
func (s Settings) TeamNames(org, repo string) (TeamNames, bool) {
	repos, ok := s.ReviewerTeams[org]
	if !ok {
		return TeamNames{}, false
	}
	names, ok := repos[repo]
	if !ok || names.Tier1 == "" || names.Tier2 == "" {
		return TeamNames{}, false
	}
	return names, true
}
