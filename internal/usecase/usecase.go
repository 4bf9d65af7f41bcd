package usecase

import (
	"context"
	"time"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/repository"
	"github.com/shubhamsg199/repo-metrics/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	MetricsUsecaseInterface
	TeamUsecaseInterface
	ContributionUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Source, cfg *config.Config, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, cfg, timeout)
}
