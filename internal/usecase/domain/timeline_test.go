package domain

import (
	"testing"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"

	"github.com/stretchr/testify/require"
)

var (
	t0        = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testTeams = entities.ReviewerTeams{
		Tier1: []string{"alice", "eve"},
		Tier2: []string{"bob"},
	}
)

func hoursAfter(h float64) time.Time {
	return t0.Add(time.Duration(h * float64(time.Hour)))
}

func testPR(events ...entities.Event) entities.PullRequest {
	return entities.PullRequest{
		Number:         1,
		URL:            "https://github.com/acme/widgets/pull/1",
		Author:         "dev",
		CreatedAt:      t0,
		State:          "OPEN",
		TimelineEvents: events,
	}
}

func TestReviewsAndCommentsExcludeAuthorAndSortOldestFirst(t *testing.T) {
	pr := testPR(
		entities.Comment{Author: "bob", CreatedAt: hoursAfter(4)},
		entities.Review{Author: "alice", CreatedAt: hoursAfter(2), State: entities.ReviewApproved},
		entities.Comment{Author: "dev", CreatedAt: hoursAfter(1)},
	)
	tl := NewTimeline(pr, testTeams)

	items := tl.ReviewsAndComments()
	require.Len(t, items, 2)
	require.Equal(t, "alice", items[0].EventAuthor())
	require.Equal(t, "bob", items[1].EventAuthor())

	first, ok := tl.FirstReview()
	require.True(t, ok)
	require.Equal(t, "alice", first.EventAuthor())
}

func TestReadyEpisodesSyntheticWhenNoneRecorded(t *testing.T) {
	tl := NewTimeline(testPR(), testTeams)

	episodes := tl.ReadyEpisodes()
	require.Len(t, episodes, 1)
	require.Equal(t, entities.ReadyTransition{Author: "dev", CreatedAt: t0}, episodes[0])
}

func TestReadyEpisodesSortedOldestFirst(t *testing.T) {
	pr := testPR(
		entities.ReadyTransition{Author: "dev", CreatedAt: hoursAfter(8)},
		entities.DraftTransition{Author: "dev", CreatedAt: hoursAfter(6)},
		entities.ReadyTransition{Author: "dev", CreatedAt: hoursAfter(2)},
	)
	tl := NewTimeline(pr, testTeams)

	episodes := tl.ReadyEpisodes()
	require.Len(t, episodes, 2)
	require.Equal(t, hoursAfter(2), episodes[0].CreatedAt)
	require.Equal(t, hoursAfter(8), episodes[1].CreatedAt)
}

func TestTierClassification(t *testing.T) {
	pr := testPR(
		entities.Review{Author: "alice", CreatedAt: hoursAfter(1), State: entities.ReviewCommented},
		entities.Review{Author: "bob", CreatedAt: hoursAfter(2), State: entities.ReviewApproved},
		entities.Comment{Author: "mallory", CreatedAt: hoursAfter(3)},
		entities.Comment{Author: "mallory", CreatedAt: hoursAfter(4)},
	)
	tl := NewTimeline(pr, testTeams)

	require.Len(t, tl.TierItems(entities.TierFirst), 1)
	require.Len(t, tl.TierItems(entities.TierSecond), 1)
	require.Equal(t, []string{"mallory"}, tl.NonTierReviewers())
}

func TestTierPrecedenceBothTeamsResolvesToTier1(t *testing.T) {
	teams := entities.ReviewerTeams{
		Tier1: []string{"alice"},
		Tier2: []string{"alice", "bob"},
	}
	pr := testPR(
		entities.Review{Author: "alice", CreatedAt: hoursAfter(1), State: entities.ReviewApproved},
	)
	tl := NewTimeline(pr, teams)

	require.Len(t, tl.TierItems(entities.TierFirst), 1)
	require.Empty(t, tl.TierItems(entities.TierSecond))
}

func TestDerivedViewsAreStableAcrossAccesses(t *testing.T) {
	pr := testPR(
		entities.Review{Author: "alice", CreatedAt: hoursAfter(1), State: entities.ReviewApproved},
	)
	tl := NewTimeline(pr, testTeams)

	first := tl.ReviewsAndComments()
	second := tl.ReviewsAndComments()
	require.Equal(t, first, second)
	require.Equal(t, tl.ReadyEpisodes(), tl.ReadyEpisodes())
}
