// Package repository contains interfaces for remote data sources.
package repository

import (
	"context"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// PullRequestInterface exposes paged PR retrieval.
type PullRequestInterface interface {
	// PullRequests returns normalized PRs keyed by number. count is the
	// total requested; blockCount is the page size per call. Totals are
	// approximate: the loop advances by the requested block size, so the
	// final block may over- or undershoot the true remaining count.
	PullRequests(ctx context.Context, org, repo string, count, blockCount int) (map[int]entities.PullRequest, error)
}

// TeamInterface exposes organization team lookups.
type TeamInterface interface {
	OrgTeams(ctx context.Context, org string) ([]entities.OrgTeam, error)
	TeamMembers(ctx context.Context, org, team string) ([]string, error)
}

// ContributionInterface exposes per-user contribution counts.
type ContributionInterface interface {
	// UserContributions returns flattened contribution counts for the date
	// range. Zero from/to default to one week ago and now respectively.
	UserContributions(ctx context.Context, login string, from, to time.Time) (entities.ContributionCounts, error)
}
