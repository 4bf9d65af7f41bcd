package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shubhamsg199/repo-metrics/config"
	"github.com/shubhamsg199/repo-metrics/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestSource(t *testing.T, handler http.HandlerFunc) *GitHub {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GitHub: config.GitHubConfig{
			GraphQLURL:     server.URL,
			Token:          "test-token",
			RequestTimeout: 5 * time.Second,
		},
		Analysis: config.AnalysisConfig{
			Organization:  "acme",
			Repository:    "widgets",
			DependencyBot: "pyup-bot",
			CoverageBot:   "codecov",
		},
	}
	return New(context.Background(), zap.NewNop().Sugar(), cfg)
}

func prPage(cursor string, urls ...string) string {
	var resp struct {
		Repository struct {
			PullRequests struct {
				PageInfo struct {
					EndCursor   string `json:"endCursor"`
					HasNextPage bool   `json:"hasNextPage"`
				} `json:"pageInfo"`
				Nodes []map[string]any `json:"nodes"`
			} `json:"pullRequests"`
		} `json:"repository"`
	}
	resp.Repository.PullRequests.PageInfo.EndCursor = cursor
	resp.Repository.PullRequests.PageInfo.HasNextPage = cursor != ""
	for _, u := range urls {
		resp.Repository.PullRequests.Nodes = append(resp.Repository.PullRequests.Nodes, map[string]any{
			"url":       u,
			"author":    map[string]any{"login": "dev"},
			"createdAt": "2024-01-01T00:00:00Z",
			"state":     "OPEN",
		})
	}
	out, _ := json.Marshal(map[string]any{"data": resp})
	return string(out)
}

func TestPullRequestsPagination(t *testing.T) {
	var requests []capturedRequest
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		page := prPage("c1", "https://github.com/acme/widgets/pull/1", "https://github.com/acme/widgets/pull/2")
		if len(requests) > 1 {
			page = prPage("", "https://github.com/acme/widgets/pull/3", "https://github.com/acme/widgets/pull/4")
		}
		_, _ = w.Write([]byte(page))
	})

	prs, err := src.PullRequests(context.Background(), "acme", "widgets", 4, 2)
	require.NoError(t, err)
	require.Len(t, prs, 4)

	require.Len(t, requests, 2)
	_, hasCursor := requests[0].Variables["prCursor"]
	require.False(t, hasCursor)
	require.Equal(t, "c1", requests[1].Variables["prCursor"])
	require.Equal(t, float64(2), requests[0].Variables["blockCount"])
}

func TestPullRequestsUnderfilledPageAdvancesByBlockSize(t *testing.T) {
	// the running total advances by the requested block size, not by nodes
	// actually returned, so short pages never extend the loop
	var requests int
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		requests++
		page := prPage("c1", "https://github.com/acme/widgets/pull/1")
		if requests > 1 {
			page = prPage("", "https://github.com/acme/widgets/pull/2")
		}
		_, _ = w.Write([]byte(page))
	})

	prs, err := src.PullRequests(context.Background(), "acme", "widgets", 4, 2)
	require.NoError(t, err)
	require.Equal(t, 2, requests)
	require.Len(t, prs, 2)
}

func TestPullRequestsClampsBlockCount(t *testing.T) {
	var requests []capturedRequest
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)
		_, _ = w.Write([]byte(prPage("", "https://github.com/acme/widgets/pull/1")))
	})

	_, err := src.PullRequests(context.Background(), "acme", "widgets", 1, 50)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.Equal(t, float64(1), requests[0].Variables["blockCount"])
}

func TestPullRequestsInvalidCounts(t *testing.T) {
	src := newTestSource(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})

	_, err := src.PullRequests(context.Background(), "acme", "widgets", 0, 10)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestPullRequestsSkipsDependencyBot(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		page := map[string]any{
			"data": map[string]any{
				"repository": map[string]any{
					"pullRequests": map[string]any{
						"pageInfo": map[string]any{"endCursor": "", "hasNextPage": false},
						"nodes": []map[string]any{
							{
								"url":       "https://github.com/acme/widgets/pull/1",
								"author":    map[string]any{"login": "pyup-bot"},
								"createdAt": "2024-01-01T00:00:00Z",
								"state":     "OPEN",
							},
							{
								"url":       "https://github.com/acme/widgets/pull/2",
								"author":    map[string]any{"login": "dev"},
								"createdAt": "2024-01-01T00:00:00Z",
								"state":     "OPEN",
							},
						},
					},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	})

	prs, err := src.PullRequests(context.Background(), "acme", "widgets", 2, 2)
	require.NoError(t, err)
	require.Len(t, prs, 1)
	require.Contains(t, prs, 2)
}

func TestExecuteHTTPError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})

	_, err := src.PullRequests(context.Background(), "acme", "widgets", 1, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestExecuteGraphQLErrors(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "bad credentials"}]}`))
	})

	_, err := src.PullRequests(context.Background(), "acme", "widgets", 1, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad credentials")
}

func TestExecuteSendsBearerToken(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(prPage("")))
	})

	_, err := src.PullRequests(context.Background(), "acme", "widgets", 1, 1)
	require.NoError(t, err)
}

func TestOrgTeams(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"organization": {"teams": {"nodes": [
			{"name": "t1-team", "members": {"nodes": [{"login": "alice"}, {"login": "eve"}]}},
			{"name": "t2-team", "members": {"nodes": [{"login": "bob"}]}}
		]}}}}`))
	})

	teams, err := src.OrgTeams(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, []entities.OrgTeam{
		{Name: "t1-team", Members: []string{"alice", "eve"}},
		{Name: "t2-team", Members: []string{"bob"}},
	}, teams)
}

func TestTeamMembers(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "t1-team", req.Variables["team"])
		_, _ = w.Write([]byte(`{"data": {"organization": {"team": {"members": {"nodes": [{"login": "alice"}]}}}}}`))
	})

	members, err := src.TeamMembers(context.Background(), "acme", "t1-team")
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, members)
}

func TestUserContributionsFlattened(t *testing.T) {
	var req capturedRequest
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = w.Write([]byte(`{"data": {"user": {"contributionsCollection": {
			"commitContributionsByRepository": [
				{"repository": {"name": "widgets"}, "contributions": {"totalCount": 12}}
			],
			"pullRequestReviewContributionsByRepository": []
		}}}}`))
	})

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	counts, err := src.UserContributions(context.Background(), "alice", from, to)
	require.NoError(t, err)

	require.Equal(t, "alice", req.Variables["user"])
	require.Equal(t, from.Format(time.RFC3339), req.Variables["from_date"])
	require.Equal(t, to.Format(time.RFC3339), req.Variables["to_date"])

	require.Equal(t, entities.ContributionCounts{
		"commit":            {"widgets": 12},
		"pullRequestReview": {},
	}, counts)
}
