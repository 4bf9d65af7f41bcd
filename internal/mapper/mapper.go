// Package mapper normalizes raw GraphQL records into domain entities.
package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
	"github.com/shubhamsg199/repo-metrics/internal/ghschema"
)

// Raw timeline type discriminators recognized by the normalizer. Anything
// outside this set fails hard; silent drops are reserved for the configured
// noise accounts below.
const (
	typeIssueComment      = "IssueComment"
	typePullRequestReview = "PullRequestReview"
	typeConvertToDraft    = "ConvertToDraftEvent"
	typeReadyForReview    = "ReadyForReviewEvent"
)

// Exclusions names automated accounts whose activity is not reviewer
// activity. DependencyBot-authored PRs are skipped entirely; CoverageBot
// comments are dropped from timelines.
type Exclusions struct {
	DependencyBot string
	CoverageBot   string
}

// ToEvent normalizes one raw timeline node into an Event. The second return
// is false when the node is configured noise and must be silently dropped.
// Unknown discriminators and malformed timestamps are errors.
func ToEvent(node ghschema.TimelineItem, excl Exclusions) (entities.Event, bool, error) {
	if node.Author != nil && node.Author.Login == excl.CoverageBot {
		return nil, false, nil
	}

	author, err := eventAuthor(node)
	if err != nil {
		return nil, false, err
	}

	createdAt, err := time.Parse(ghschema.TimestampLayout, node.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q on %s event", entities.ErrMalformedTimestamp, node.CreatedAt, node.TypeName)
	}

	switch node.TypeName {
	case typeIssueComment:
		return entities.Comment{Author: author, CreatedAt: createdAt}, true, nil
	case typePullRequestReview:
		commentCount := 0
		if node.Comments != nil {
			commentCount = node.Comments.TotalCount
		}
		return entities.Review{
			Author:       author,
			CreatedAt:    createdAt,
			State:        entities.ReviewState(node.State),
			CommentCount: commentCount,
		}, true, nil
	case typeConvertToDraft:
		return entities.DraftTransition{Author: author, CreatedAt: createdAt}, true, nil
	case typeReadyForReview:
		return entities.ReadyTransition{Author: author, CreatedAt: createdAt}, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", entities.ErrUnrecognizedEvent, node.TypeName)
	}
}

// eventAuthor standardizes the acting login, preferring "author" over
// "actor" when both are present.
func eventAuthor(node ghschema.TimelineItem) (string, error) {
	if node.Author != nil && node.Author.Login != "" {
		return node.Author.Login, nil
	}
	if node.Actor != nil && node.Actor.Login != "" {
		return node.Actor.Login, nil
	}
	return "", fmt.Errorf("%w: %s event without author or actor", entities.ErrUnrecognizedEvent, node.TypeName)
}

// ToPullRequest normalizes one raw PR node. The second return is false when
// the PR is authored by the dependency bot and must be skipped.
func ToPullRequest(node ghschema.PullRequestNode, excl Exclusions) (*entities.PullRequest, bool, error) {
	if node.Author == nil || node.Author.Login == "" {
		return nil, false, fmt.Errorf("%w: pull request %s without author", entities.ErrUnrecognizedEvent, node.URL)
	}
	if node.Author.Login == excl.DependencyBot {
		return nil, false, nil
	}

	number, err := numberFromURL(node.URL)
	if err != nil {
		return nil, false, err
	}

	createdAt, err := time.Parse(ghschema.TimestampLayout, node.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q on pull request #%d", entities.ErrMalformedTimestamp, node.CreatedAt, number)
	}

	var mergedAt *time.Time
	if node.MergedAt != "" {
		t, err := time.Parse(ghschema.TimestampLayout, node.MergedAt)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %q on pull request #%d", entities.ErrMalformedTimestamp, node.MergedAt, number)
		}
		mergedAt = &t
	}

	mergedBy := ""
	if node.MergedBy != nil {
		mergedBy = node.MergedBy.Login
	}

	events := make([]entities.Event, 0, len(node.TimelineItems.Nodes))
	for _, item := range node.TimelineItems.Nodes {
		ev, ok, err := ToEvent(item, excl)
		if err != nil {
			return nil, false, fmt.Errorf("pull request #%d: %w", number, err)
		}
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	return &entities.PullRequest{
		Number:         number,
		URL:            node.URL,
		Author:         node.Author.Login,
		CreatedAt:      createdAt,
		IsDraft:        node.IsDraft,
		State:          node.State,
		MergedBy:       mergedBy,
		MergedAt:       mergedAt,
		ChangedFiles:   node.ChangedFiles,
		Additions:      node.Additions,
		Deletions:      node.Deletions,
		TimelineEvents: events,
	}, true, nil
}

// numberFromURL derives the PR number from the trailing path segment.
func numberFromURL(url string) (int, error) {
	segments := strings.Split(url, "/")
	number, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: pull request url %q has no number", entities.ErrInvalidArgument, url)
	}
	return number, nil
}
