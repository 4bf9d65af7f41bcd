// Package domain contains application services deriving review metrics.
package domain

import (
	"context"
	"sync"
	"time"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/entities"
	"github.com/shubhamsg199/repo-metrics/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Source
	cfg     *config.Config
	timeout time.Duration

	// teams caches the resolved reviewer teams for the configured
	// repository; resolution happens once per process lifetime. teamsMu
	// guards it: handlers share one Usecase across concurrent requests.
	teamsMu sync.Mutex
	teams   *entities.ReviewerTeams
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Source,
	cfg *config.Config,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		cfg:     cfg,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
