// Package entities contains core business entities.
package entities

// Tier identifies a configured review team.
type Tier string

const (
	// TierFirst is the primary review team.
	TierFirst Tier = "tier1"
	// TierSecond is the secondary review team.
	TierSecond Tier = "tier2"
)

// OrgTeam is a team as returned by the organization, with member logins.
type OrgTeam struct {
	Name    string
	Members []string
}

// ReviewerTeams maps the two configured tiers to member logins for one
// repository. Immutable once resolved.
type ReviewerTeams struct {
	Tier1 []string
	Tier2 []string
}

// TierOf classifies a login. Tier1 membership is checked first: a login
// present in both teams deliberately resolves to tier1. The second return
// is false for logins in neither team.
func (t ReviewerTeams) TierOf(login string) (Tier, bool) {
	for _, m := range t.Tier1 {
		if m == login {
			return TierFirst, true
		}
	}
	for _, m := range t.Tier2 {
		if m == login {
			return TierSecond, true
		}
	}
	return "", false
}

// Members returns the member logins of the given tier.
func (t ReviewerTeams) Members(tier Tier) []string {
	if tier == TierFirst {
		return t.Tier1
	}
	return t.Tier2
}
