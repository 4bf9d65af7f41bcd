package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// Contributions returns flattened contribution counts for a user. Zero
// from/to fall back to the source defaults of one week ago and now.
func (u *Usecase) Contributions(ctx context.Context, login string, from, to time.Time) (entities.ContributionCounts, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if login == "" {
		return nil, fmt.Errorf("%w: login is required", entities.ErrInvalidArgument)
	}
	return u.repo.UserContributions(ctx, login, from, to)
}
