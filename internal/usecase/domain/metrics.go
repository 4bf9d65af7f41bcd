package domain

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

const hoursPrecision = 10 // one decimal

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*hoursPrecision) / hoursPrecision
}

// comparisonDate is the reference point latency is measured from. When the
// first review arrived after the earliest ready episode, the episode is the
// reference; when a review/comment predates the recorded ready event, fall
// back to PR creation, since reviewers engaged before the formal signal.
// Only meaningful when at least one review/comment exists.
func (t *Timeline) comparisonDate() time.Time {
	first := t.ReviewsAndComments()[0]
	ready := t.ReadyEpisodes()[0]
	if first.EventTime().After(ready.CreatedAt) {
		return ready.CreatedAt
	}
	return t.pr.CreatedAt
}

// HoursToFirstReview measures ready-to-first-review latency. Nil without
// reviews, and nil for a PR still in draft: an in-progress draft has no
// meaningful latency yet.
func (t *Timeline) HoursToFirstReview() *float64 {
	first, ok := t.FirstReview()
	if !ok || t.pr.IsDraft {
		return nil
	}
	h := roundHours(first.EventTime().Sub(t.comparisonDate()))
	return &h
}

// HoursToTier1 measures latency to the earliest tier1 review/comment.
func (t *Timeline) HoursToTier1() *float64 {
	return t.hoursToTier(entities.TierFirst)
}

// HoursToTier2 measures latency to the earliest tier2 review/comment.
func (t *Timeline) HoursToTier2() *float64 {
	return t.hoursToTier(entities.TierSecond)
}

func (t *Timeline) hoursToTier(tier entities.Tier) *float64 {
	items := t.TierItems(tier)
	if len(items) == 0 {
		return nil
	}
	h := roundHours(items[0].EventTime().Sub(t.comparisonDate()))
	return &h
}

// HoursFromTier1ToTier2 measures the gap from the earliest approving tier1
// review to the earliest tier2 item. Nil without both; negative when tier2
// engaged before tier1 approval, never clamped.
func (t *Timeline) HoursFromTier1ToTier2() *float64 {
	var approved *entities.Review
	for _, ev := range t.TierItems(entities.TierFirst) {
		if rv, ok := ev.(entities.Review); ok && rv.State == entities.ReviewApproved {
			approved = &rv
			break
		}
	}
	tier2 := t.TierItems(entities.TierSecond)
	if approved == nil || len(tier2) == 0 {
		return nil
	}
	h := roundHours(tier2[0].EventTime().Sub(approved.CreatedAt))
	return &h
}

// Metrics derives the full latency record for the PR.
func (t *Timeline) Metrics() entities.PRMetrics {
	nonTier := t.NonTierReviewers()
	if nonTier == nil {
		nonTier = []string{}
	}
	return entities.PRMetrics{
		Number:                t.pr.Number,
		URL:                   t.pr.URL,
		Author:                t.pr.Author,
		CreatedAt:             t.pr.CreatedAt,
		State:                 t.pr.State,
		IsDraft:               t.pr.IsDraft,
		MergedBy:              t.pr.MergedBy,
		MergedAt:              t.pr.MergedAt,
		ChangedFiles:          t.pr.ChangedFiles,
		Additions:             t.pr.Additions,
		Deletions:             t.pr.Deletions,
		HoursToFirstReview:    t.HoursToFirstReview(),
		HoursToTier1:          t.HoursToTier1(),
		HoursToTier2:          t.HoursToTier2(),
		HoursFromTier1ToTier2: t.HoursFromTier1ToTier2(),
		NonTierReviewers:      nonTier,
	}
}

// ReviewMetrics fetches the configured PR window and derives per-PR latency
// metrics, ordered by PR number.
func (u *Usecase) ReviewMetrics(ctx context.Context) ([]entities.PRMetrics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.ReviewerTeams(ctx)
	if err != nil {
		return nil, err
	}

	prs, err := u.repo.PullRequests(
		ctx,
		u.cfg.Analysis.Organization,
		u.cfg.Analysis.Repository,
		u.cfg.Analysis.PRCount,
		u.cfg.Analysis.BlockCount,
	)
	if err != nil {
		return nil, err
	}

	metrics := make([]entities.PRMetrics, 0, len(prs))
	for _, pr := range prs {
		metrics = append(metrics, NewTimeline(pr, teams).Metrics())
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Number < metrics[j].Number })

	u.log.Infow("review metrics derived", "pull_requests", len(metrics))
	return metrics, nil
}
