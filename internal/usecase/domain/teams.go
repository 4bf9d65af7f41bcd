package domain

import (
	"context"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// ReviewerTeams resolves the tier1/tier2 reviewer teams for the configured
// repository by matching the settings-file team names against the teams on
// the organization. The result is cached; resolution failure is a typed
// configuration error and deciding to terminate on it belongs to the caller.
func (u *Usecase) ReviewerTeams(ctx context.Context) (entities.ReviewerTeams, error) {
	u.teamsMu.Lock()
	defer u.teamsMu.Unlock()

	if u.teams != nil {
		return *u.teams, nil
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	org := u.cfg.Analysis.Organization
	repo := u.cfg.Analysis.Repository

	orgTeams, err := u.repo.OrgTeams(ctx, org)
	if err != nil {
		return entities.ReviewerTeams{}, err
	}

	available := make([]string, 0, len(orgTeams))
	for _, t := range orgTeams {
		available = append(available, t.Name)
	}

	names, ok := u.cfg.Settings.TeamNames(org, repo)
	if !ok {
		return entities.ReviewerTeams{}, &entities.TeamConfigError{
			Organization:   org,
			Repository:     repo,
			AvailableTeams: available,
		}
	}

	var teams entities.ReviewerTeams
	var tier1Found, tier2Found bool
	for _, t := range orgTeams {
		switch t.Name {
		case names.Tier1:
			teams.Tier1 = t.Members
			tier1Found = true
		case names.Tier2:
			teams.Tier2 = t.Members
			tier2Found = true
		}
	}
	if !tier1Found || !tier2Found {
		return entities.ReviewerTeams{}, &entities.TeamConfigError{
			Organization:   org,
			Repository:     repo,
			AvailableTeams: available,
		}
	}

	u.teams = &teams
	u.log.Infow("reviewer teams resolved",
		"org", org,
		"repo", repo,
		"tier1", names.Tier1,
		"tier2", names.Tier2,
	)
	return teams, nil
}
