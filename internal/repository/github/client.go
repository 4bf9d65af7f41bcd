// Package github implements the data source against the GitHub GraphQL API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/mapper"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// GitHub wraps an authenticated GraphQL client and configuration.
type GitHub struct {
	log        *zap.SugaredLogger
	url        string
	httpClient *http.Client
	excl       mapper.Exclusions
}

// New creates a GitHub source instance authenticated with a static token.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *GitHub {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.GitHub.RequestTimeout

	return &GitHub{
		log:        log.Named("source.github"),
		url:        cfg.GitHub.GraphQLURL,
		httpClient: httpClient,
		excl: mapper.Exclusions{
			DependencyBot: cfg.Analysis.DependencyBot,
			CoverageBot:   cfg.Analysis.CoverageBot,
		},
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// execute posts one GraphQL query and decodes the data payload into out.
// Failures are not retried; they abort the whole operation.
func (g *GitHub) execute(ctx context.Context, query string, vars map[string]any, out any) error {
	payload, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("query returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope gqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("query failed: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
