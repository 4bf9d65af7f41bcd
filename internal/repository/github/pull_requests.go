package github

import (
	"context"
	"fmt"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
	"github.com/shubhamsg199/repo-metrics/internal/ghschema"
	"github.com/shubhamsg199/repo-metrics/internal/mapper"
)

// PullRequests fetches up to count PRs in blocks of blockCount, normalizing
// each record. blockCount is clamped to count. The running total advances by
// the requested block size rather than by nodes actually returned, so the
// final block may over- or undershoot the true remaining count; callers
// accept approximate totals.
func (g *GitHub) PullRequests(ctx context.Context, org, repo string, count, blockCount int) (map[int]entities.PullRequest, error) {
	if count <= 0 || blockCount <= 0 {
		return nil, fmt.Errorf("%w: count and blockCount must be positive", entities.ErrInvalidArgument)
	}
	if blockCount > count {
		blockCount = count
	}

	var nodes []ghschema.PullRequestNode
	var cursor string
	fetched := 0
	for fetched < count {
		vars := map[string]any{
			"owner":      org,
			"name":       repo,
			"blockCount": blockCount,
		}
		if cursor != "" {
			vars["prCursor"] = cursor
		}

		var resp ghschema.PullRequestsResponse
		if err := g.execute(ctx, ghschema.PullRequestsQuery, vars, &resp); err != nil {
			return nil, fmt.Errorf("fetch pull requests for %s/%s: %w", org, repo, err)
		}

		cursor = resp.Repository.PullRequests.PageInfo.EndCursor
		nodes = append(nodes, resp.Repository.PullRequests.Nodes...)
		fetched += blockCount
	}

	prs := make(map[int]entities.PullRequest, len(nodes))
	for _, node := range nodes {
		pr, ok, err := mapper.ToPullRequest(node, g.excl)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		prs[pr.Number] = *pr
	}

	g.log.Infow("pull requests fetched", "org", org, "repo", repo, "requested", count, "kept", len(prs))
	return prs, nil
}
