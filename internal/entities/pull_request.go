// Package entities contains core business entities.
package entities

import "time"

// PullRequest is an immutable snapshot of one PR and its normalized
// timeline. Constructed once per fetch cycle; never mutated afterwards.
type PullRequest struct {
	Number         int
	URL            string
	Author         string
	CreatedAt      time.Time
	IsDraft        bool
	State          string
	MergedBy       string
	MergedAt       *time.Time
	ChangedFiles   int
	Additions      int
	Deletions      int
	TimelineEvents []Event
}
