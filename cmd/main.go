// Package main wires the review-metrics CLI and HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/repository"
	"github.com/shubhamsg199/repo-metrics/internal/transport/http/middleware"
	handlers_fiber "github.com/shubhamsg199/repo-metrics/internal/transport/http/server/handlers-fiber"
	"github.com/shubhamsg199/repo-metrics/internal/usecase"
	"github.com/shubhamsg199/repo-metrics/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// newApp loads configuration and wires the usecase layer. Configuration
// errors, including a missing reviewer-team mapping, surface here and turn
// into a non-zero exit in main.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(ctx, "github", log, cfg)
	if err != nil {
		log.Errorw("source initialization error", "error", err)
		return nil, err
	}

	uc := usecase.New(log, ctx, repo, cfg, cfg.HTTP.RequestTimeout)
	return &app{cfg: cfg, log: log, uc: uc}, nil
}

func newRootCmd(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "repo-metrics",
		Short:         "PR review latency metrics for a GitHub repository",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(ctx))
	root.AddCommand(newAnalyzeCmd(ctx))
	root.AddCommand(newTeamActionsCmd(ctx))
	root.AddCommand(newContributionsCmd(ctx))
	return root
}

func newAnalyzeCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Fetch PRs and print per-PR review latency metrics as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			metrics, err := a.uc.ReviewMetrics(ctx)
			if err != nil {
				a.log.Errorw("analysis failed", "error", err)
				return err
			}
			return printJSON(cmd, metrics)
		},
	}
}

func newTeamActionsCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "team-actions",
		Short: "Print reviewer actions grouped by tier and member as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			actions, err := a.uc.TeamActions(ctx)
			if err != nil {
				a.log.Errorw("team action collection failed", "error", err)
				return err
			}
			return printJSON(cmd, actions)
		},
	}
}

func newContributionsCmd(ctx context.Context) *cobra.Command {
	var fromFlag, toFlag string
	cmd := &cobra.Command{
		Use:   "contributions <login>",
		Short: "Print a user's contribution counts by kind and repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			from, to, err := parseRange(fromFlag, toFlag)
			if err != nil {
				return err
			}
			counts, err := a.uc.Contributions(ctx, args[0], from, to)
			if err != nil {
				a.log.Errorw("contribution fetch failed", "login", args[0], "error", err)
				return err
			}
			return printJSON(cmd, counts)
		},
	}
	cmd.Flags().StringVar(&fromFlag, "from", "", "range start, RFC3339 (default one week ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "range end, RFC3339 (default now)")
	return cmd
}

func newServeCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the computed reports over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  a.cfg.HTTP.RequestTimeout,
		WriteTimeout: a.cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(a.log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(a.log, a.uc)
	h.RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(a.cfg.ServerAddr()); err != nil {
			a.log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		a.log.Warnw("server shutdown timeout", "timeout", a.cfg.Server.ShutdownTimeout)
	}
	return nil
}

func parseRange(fromFlag, toFlag string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromFlag != "" {
		if from, err = time.Parse(time.RFC3339, fromFlag); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --from: %w", err)
		}
	}
	if toFlag != "" {
		if to, err = time.Parse(time.RFC3339, toFlag); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --to: %w", err)
		}
	}
	return from, to, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
