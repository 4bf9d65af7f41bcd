// Package entities contains core business entities.
package entities

import "time"

// PRMetrics holds derived review-latency metrics for one PR. The hour
// fields are nil when their precondition is not met; values are rounded to
// one decimal.
type PRMetrics struct {
	Number       int        `json:"number"`
	URL          string     `json:"url"`
	Author       string     `json:"author"`
	CreatedAt    time.Time  `json:"created_at"`
	State        string     `json:"state"`
	IsDraft      bool       `json:"is_draft"`
	MergedBy     string     `json:"merged_by,omitempty"`
	MergedAt     *time.Time `json:"merged_at,omitempty"`
	ChangedFiles int        `json:"changed_files"`
	Additions    int        `json:"additions"`
	Deletions    int        `json:"deletions"`

	HoursToFirstReview    *float64 `json:"hours_to_first_review"`
	HoursToTier1          *float64 `json:"hours_to_tier1"`
	HoursToTier2          *float64 `json:"hours_to_tier2"`
	HoursFromTier1ToTier2 *float64 `json:"hours_from_tier1_to_tier2"`

	// NonTierReviewers lists engaged logins belonging to neither tier.
	// Tracked for visibility, excluded from the tier latency metrics.
	NonTierReviewers []string `json:"non_tier_reviewers"`
}

// MemberAction is one timestamped reviewer action.
type MemberAction struct {
	At     time.Time `json:"at"`
	Action string    `json:"action"`
}

// TeamActions groups member actions by tier then login. Every configured
// member has an entry even with no recorded actions. The synthetic "opened"
// bucket under tier1 records every PR's creation; the synthetic "merged"
// bucket under tier2 records every merge.
type TeamActions map[Tier]map[string][]MemberAction

// ContributionCounts maps a shortened contribution kind to per-repository
// totals. Kinds with no contributions map to an empty, non-nil map.
type ContributionCounts map[string]map[string]int
