// Package entities contains core business entities.
package entities

import "time"

// ReviewState enumerates GitHub review verdicts.
type ReviewState string

const (
	// ReviewApproved marks an approving review.
	ReviewApproved ReviewState = "APPROVED"
	// ReviewChangesRequested marks a blocking review.
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	// ReviewCommented marks a neutral review.
	ReviewCommented ReviewState = "COMMENTED"
	// ReviewDismissed marks a dismissed review.
	ReviewDismissed ReviewState = "DISMISSED"
	// ReviewPending marks a not-yet-submitted review.
	ReviewPending ReviewState = "PENDING"
)

// Event is one normalized PR timeline entry. Raw timeline records carry the
// acting login under either "author" or "actor" depending on shape; the
// normalizer standardizes both into EventAuthor before anything downstream
// sees the event.
type Event interface {
	EventAuthor() string
	EventTime() time.Time
}

// Comment is an issue comment on a PR.
type Comment struct {
	Author    string
	CreatedAt time.Time
}

// EventAuthor returns the commenting login.
func (c Comment) EventAuthor() string { return c.Author }

// EventTime returns the comment creation time.
func (c Comment) EventTime() time.Time { return c.CreatedAt }

// Review is a submitted PR review.
type Review struct {
	Author       string
	CreatedAt    time.Time
	State        ReviewState
	CommentCount int
}

// EventAuthor returns the reviewing login.
func (r Review) EventAuthor() string { return r.Author }

// EventTime returns the review submission time.
func (r Review) EventTime() time.Time { return r.CreatedAt }

// DraftTransition records a PR being converted back to draft.
type DraftTransition struct {
	Author    string
	CreatedAt time.Time
}

// EventAuthor returns the acting login.
func (d DraftTransition) EventAuthor() string { return d.Author }

// EventTime returns the transition time.
func (d DraftTransition) EventTime() time.Time { return d.CreatedAt }

// ReadyTransition records a PR being marked ready for review.
type ReadyTransition struct {
	Author    string
	CreatedAt time.Time
}

// EventAuthor returns the acting login.
func (r ReadyTransition) EventAuthor() string { return r.Author }

// EventTime returns the transition time.
func (r ReadyTransition) EventTime() time.Time { return r.CreatedAt }
