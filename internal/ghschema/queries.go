// Package ghschema holds the GitHub GraphQL queries and the raw response
// shapes they produce.
package ghschema

// TimestampLayout is the fixed UTC timestamp format used by the GraphQL API.
const TimestampLayout = "2006-01-02T15:04:05Z"

// PullRequestsQuery pages through PRs with their review timeline items.
const PullRequestsQuery = `
query ($owner: String!, $name: String!, $blockCount: Int!, $prCursor: String) {
  repository(owner: $owner, name: $name) {
    pullRequests(first: $blockCount, after: $prCursor, orderBy: {field: CREATED_AT, direction: DESC}) {
      pageInfo {
        endCursor
        hasNextPage
      }
      nodes {
        url
        author { login }
        createdAt
        isDraft
        state
        mergedBy { login }
        mergedAt
        changedFiles
        additions
        deletions
        timelineItems(last: 100, itemTypes: [ISSUE_COMMENT, PULL_REQUEST_REVIEW, CONVERT_TO_DRAFT_EVENT, READY_FOR_REVIEW_EVENT]) {
          nodes {
            __typename
            ... on IssueComment {
              author { login }
              createdAt
            }
            ... on PullRequestReview {
              author { login }
              createdAt
              state
              comments { totalCount }
            }
            ... on ConvertToDraftEvent {
              actor { login }
              createdAt
            }
            ... on ReadyForReviewEvent {
              actor { login }
              createdAt
            }
          }
        }
      }
    }
  }
}`

// OrgTeamsQuery lists teams on an organization with their members.
const OrgTeamsQuery = `
query ($organization: String!) {
  organization(login: $organization) {
    teams(first: 100) {
      nodes {
        name
        members(first: 100) {
          nodes { login }
        }
      }
    }
  }
}`

// TeamMembersQuery lists member logins of one named team.
const TeamMembersQuery = `
query ($organization: String!, $team: String!) {
  organization(login: $organization) {
    team(slug: $team) {
      members(first: 100) {
        nodes { login }
      }
    }
  }
}`

// ContributionsQuery returns a user's contribution counts bucketed by
// contribution kind and repository for a date range.
const ContributionsQuery = `
query ($user: String!, $from_date: DateTime!, $to_date: DateTime!) {
  user(login: $user) {
    contributionsCollection(from: $from_date, to: $to_date) {
      pullRequestContributionsByRepository {
        repository { name }
        contributions { totalCount }
      }
      pullRequestReviewContributionsByRepository {
        repository { name }
        contributions { totalCount }
      }
      issueContributionsByRepository {
        repository { name }
        contributions { totalCount }
      }
      commitContributionsByRepository {
        repository { name }
        contributions { totalCount }
      }
    }
  }
}`
