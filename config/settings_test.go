package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSettings = `reviewer_teams:
  acme:
    widgets:
      tier1: t1-team
      tier2: t2-team
`

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSettings), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	names, ok := s.TeamNames("acme", "widgets")
	require.True(t, ok)
	require.Equal(t, "t1-team", names.Tier1)
	require.Equal(t, "t2-team", names.Tier2)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reviewer_teams: ["), 0o600))

	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestTeamNamesLookup(t *testing.T) {
	s := Settings{ReviewerTeams: map[string]map[string]TeamNames{
		"acme": {
			"widgets": {Tier1: "t1-team", Tier2: "t2-team"},
			"partial": {Tier1: "t1-team"},
		},
	}}

	_, ok := s.TeamNames("other-org", "widgets")
	require.False(t, ok)

	_, ok = s.TeamNames("acme", "gadgets")
	require.False(t, ok)

	// a mapping with either tier blank is treated as unconfigured
	_, ok = s.TeamNames("acme", "partial")
	require.False(t, ok)

	names, ok := s.TeamNames("acme", "widgets")
	require.True(t, ok)
	require.Equal(t, TeamNames{Tier1: "t1-team", Tier2: "t2-team"}, names)
}
