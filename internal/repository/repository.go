// Package repository provides factory for remote data sources.
package repository

import (
	"context"
	"fmt"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/repository/github"

	"go.uber.org/zap"
)

// Source aggregates all remote-source interfaces.
type Source interface {
	PullRequestInterface
	TeamInterface
	ContributionInterface
}

// New constructs a source backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Source, error) {
	switch name {
	case "github":
		return github.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown source backend: %s", name)
	}
}
