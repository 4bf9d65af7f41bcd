package domain

import (
	"sort"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// Timeline owns one PR's ordered events and the views derived from them.
// Derivation is lazy and memoized; the underlying PR snapshot is immutable,
// so recomputation would yield an identical result.
type Timeline struct {
	pr    entities.PullRequest
	teams entities.ReviewerTeams

	derived            bool
	reviewsAndComments []entities.Event
	readyEpisodes      []entities.ReadyTransition
	tierItems          map[entities.Tier][]entities.Event
	nonTier            []string
}

// NewTimeline wraps a PR snapshot with the reviewer teams of its repository.
func NewTimeline(pr entities.PullRequest, teams entities.ReviewerTeams) *Timeline {
	return &Timeline{pr: pr, teams: teams}
}

// PR returns the underlying snapshot.
func (t *Timeline) PR() entities.PullRequest { return t.pr }

// ReviewsAndComments returns review and comment events not authored by the
// PR author, oldest first.
func (t *Timeline) ReviewsAndComments() []entities.Event {
	t.ensureDerived()
	return t.reviewsAndComments
}

// ReadyEpisodes returns ready-for-review transitions, oldest first. A PR
// with no recorded transition was implicitly ready from creation, so a
// single synthetic episode at the creation time is substituted.
func (t *Timeline) ReadyEpisodes() []entities.ReadyTransition {
	t.ensureDerived()
	return t.readyEpisodes
}

// TierItems returns the reviews/comments authored by members of the tier,
// oldest first.
func (t *Timeline) TierItems(tier entities.Tier) []entities.Event {
	t.ensureDerived()
	return t.tierItems[tier]
}

// NonTierReviewers returns the engaged logins belonging to neither tier,
// sorted for stable output.
func (t *Timeline) NonTierReviewers() []string {
	t.ensureDerived()
	return t.nonTier
}

// FirstReview returns the earliest review/comment not by the PR author.
func (t *Timeline) FirstReview() (entities.Event, bool) {
	t.ensureDerived()
	if len(t.reviewsAndComments) == 0 {
		return nil, false
	}
	return t.reviewsAndComments[0], true
}

func (t *Timeline) ensureDerived() {
	if t.derived {
		return
	}

	var items []entities.Event
	var ready []entities.ReadyTransition
	for _, ev := range t.pr.TimelineEvents {
		switch e := ev.(type) {
		case entities.Comment, entities.Review:
			if ev.EventAuthor() != t.pr.Author {
				items = append(items, ev)
			}
		case entities.ReadyTransition:
			ready = append(ready, e)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EventTime().Before(items[j].EventTime())
	})
	sort.SliceStable(ready, func(i, j int) bool {
		return ready[i].CreatedAt.Before(ready[j].CreatedAt)
	})
	if len(ready) == 0 {
		ready = []entities.ReadyTransition{{Author: t.pr.Author, CreatedAt: t.pr.CreatedAt}}
	}

	tierItems := map[entities.Tier][]entities.Event{}
	seenNonTier := map[string]bool{}
	var nonTier []string
	for _, ev := range items {
		tier, ok := t.teams.TierOf(ev.EventAuthor())
		if !ok {
			if !seenNonTier[ev.EventAuthor()] {
				seenNonTier[ev.EventAuthor()] = true
				nonTier = append(nonTier, ev.EventAuthor())
			}
			continue
		}
		tierItems[tier] = append(tierItems[tier], ev)
	}
	sort.Strings(nonTier)

	t.reviewsAndComments = items
	t.readyEpisodes = ready
	t.tierItems = tierItems
	t.nonTier = nonTier
	t.derived = true
}
