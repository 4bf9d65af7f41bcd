package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
	"github.com/shubhamsg199/repo-metrics/internal/ghschema"
)

const contributionKindSuffix = "ContributionsByRepository"

// UserContributions returns a user's contribution counts flattened to
// {shortKind: {repo: count}}. Zero from/to default to one week ago and now.
func (g *GitHub) UserContributions(ctx context.Context, login string, from, to time.Time) (entities.ContributionCounts, error) {
	now := time.Now().UTC()
	if from.IsZero() {
		from = now.Add(-7 * 24 * time.Hour)
	}
	if to.IsZero() {
		to = now
	}

	vars := map[string]any{
		"user":      login,
		"from_date": from.Format(time.RFC3339),
		"to_date":   to.Format(time.RFC3339),
	}

	var resp ghschema.ContributionsResponse
	if err := g.execute(ctx, ghschema.ContributionsQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("fetch contributions for %s: %w", login, err)
	}

	// Flatten each bucket to repo-name keys, shortening the kind by
	// stripping the shared suffix. Empty buckets stay as empty maps so
	// downstream reporting never special-cases missing kinds.
	counts := make(entities.ContributionCounts, len(resp.User.ContributionsCollection))
	for kind, repoContributions := range resp.User.ContributionsCollection {
		shortKind := strings.TrimSuffix(kind, contributionKindSuffix)
		counts[shortKind] = make(map[string]int, len(repoContributions))
		for _, rc := range repoContributions {
			counts[shortKind][rc.Repository.Name] = rc.Contributions.TotalCount
		}
	}
	return counts, nil
}
