package ghschema

// Actor is a login-bearing node.
type Actor struct {
	Login string `json:"login"`
}

// PageInfo carries the continuation cursor for a paged collection.
type PageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

// TotalCount wraps a totalCount field.
type TotalCount struct {
	TotalCount int `json:"totalCount"`
}

// TimelineItem is one raw timeline node. Comment/review shapes carry the
// login under "author"; transition shapes carry it under "actor". State and
// Comments are populated for reviews only.
type TimelineItem struct {
	TypeName  string      `json:"__typename"`
	Author    *Actor      `json:"author"`
	Actor     *Actor      `json:"actor"`
	CreatedAt string      `json:"createdAt"`
	State     string      `json:"state"`
	Comments  *TotalCount `json:"comments"`
}

// PullRequestNode is one raw PR record with its nested timeline page.
type PullRequestNode struct {
	URL          string `json:"url"`
	Author       *Actor `json:"author"`
	CreatedAt    string `json:"createdAt"`
	IsDraft      bool   `json:"isDraft"`
	State        string `json:"state"`
	MergedBy     *Actor `json:"mergedBy"`
	MergedAt     string `json:"mergedAt"`
	ChangedFiles int    `json:"changedFiles"`
	Additions    int    `json:"additions"`
	Deletions    int    `json:"deletions"`

	TimelineItems struct {
		Nodes []TimelineItem `json:"nodes"`
	} `json:"timelineItems"`
}

// PullRequestsResponse is the data payload of PullRequestsQuery.
type PullRequestsResponse struct {
	Repository struct {
		PullRequests struct {
			PageInfo PageInfo          `json:"pageInfo"`
			Nodes    []PullRequestNode `json:"nodes"`
		} `json:"pullRequests"`
	} `json:"repository"`
}

// TeamNode is one organization team with members.
type TeamNode struct {
	Name    string `json:"name"`
	Members struct {
		Nodes []Actor `json:"nodes"`
	} `json:"members"`
}

// OrgTeamsResponse is the data payload of OrgTeamsQuery.
type OrgTeamsResponse struct {
	Organization struct {
		Teams struct {
			Nodes []TeamNode `json:"nodes"`
		} `json:"teams"`
	} `json:"organization"`
}

// TeamMembersResponse is the data payload of TeamMembersQuery.
type TeamMembersResponse struct {
	Organization struct {
		Team struct {
			Members struct {
				Nodes []Actor `json:"nodes"`
			} `json:"members"`
		} `json:"team"`
	} `json:"organization"`
}

// RepoContribution is a per-repository contribution total.
type RepoContribution struct {
	Repository struct {
		Name string `json:"name"`
	} `json:"repository"`
	Contributions TotalCount `json:"contributions"`
}

// ContributionsResponse is the data payload of ContributionsQuery. The
// collection decodes as a map because every bucket shares the
// *ContributionsByRepository shape.
type ContributionsResponse struct {
	User struct {
		ContributionsCollection map[string][]RepoContribution `json:"contributionsCollection"`
	} `json:"user"`
}
