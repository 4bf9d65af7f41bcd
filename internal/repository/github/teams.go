package github

import (
	"context"
	"fmt"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
	"github.com/shubhamsg199/repo-metrics/internal/ghschema"
)

// OrgTeams lists teams on the organization with their member logins.
func (g *GitHub) OrgTeams(ctx context.Context, org string) ([]entities.OrgTeam, error) {
	vars := map[string]any{"organization": org}

	var resp ghschema.OrgTeamsResponse
	if err := g.execute(ctx, ghschema.OrgTeamsQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("fetch teams for %s: %w", org, err)
	}

	teams := make([]entities.OrgTeam, 0, len(resp.Organization.Teams.Nodes))
	for _, node := range resp.Organization.Teams.Nodes {
		members := make([]string, 0, len(node.Members.Nodes))
		for _, m := range node.Members.Nodes {
			members = append(members, m.Login)
		}
		teams = append(teams, entities.OrgTeam{Name: node.Name, Members: members})
	}
	return teams, nil
}

// TeamMembers returns the member logins of one named team.
func (g *GitHub) TeamMembers(ctx context.Context, org, team string) ([]string, error) {
	vars := map[string]any{"organization": org, "team": team}

	var resp ghschema.TeamMembersResponse
	if err := g.execute(ctx, ghschema.TeamMembersQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("fetch members of %s/%s: %w", org, team, err)
	}

	members := make([]string, 0, len(resp.Organization.Team.Members.Nodes))
	for _, m := range resp.Organization.Team.Members.Nodes {
		members = append(members, m.Login)
	}
	return members, nil
}
