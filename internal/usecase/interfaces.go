package usecase

import (
	"context"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// MetricsUsecaseInterface abstracts review-latency reporting.
type MetricsUsecaseInterface interface {
	ReviewMetrics(ctx context.Context) ([]entities.PRMetrics, error)
}

// TeamUsecaseInterface abstracts reviewer-team operations.
type TeamUsecaseInterface interface {
	ReviewerTeams(ctx context.Context) (entities.ReviewerTeams, error)
	TeamActions(ctx context.Context) (entities.TeamActions, error)
}

// ContributionUsecaseInterface abstracts contribution reporting.
type ContributionUsecaseInterface interface {
	Contributions(ctx context.Context, login string, from, to time.Time) (entities.ContributionCounts, error)
}
