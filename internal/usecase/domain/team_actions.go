package domain

import (
	"context"
	"sort"

	"github.com/shubhamsg199/repo-metrics/internal/entities"
)

// Buckets for synthetic activity recorded alongside member actions.
const (
	openedBucket = "opened"
	mergedBucket = "merged"
)

// TeamActions collects reviewer actions from the configured PR window,
// grouped by tier and member login. Every configured member keeps an entry
// even with no recorded actions. Review submissions count as actions;
// comments do not. PR openings land in a synthetic "opened" bucket under
// tier1 and merges in a "merged" bucket under tier2.
func (u *Usecase) TeamActions(ctx context.Context) (entities.TeamActions, error) {
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

	actions := entities.TeamActions{
		entities.TierFirst:  {},
		entities.TierSecond: {},
	}
	for _, tier := range []entities.Tier{entities.TierFirst, entities.TierSecond} {
		for _, member := range teams.Members(tier) {
			actions[tier][member] = []entities.MemberAction{}
		}
	}
	actions[entities.TierFirst][openedBucket] = []entities.MemberAction{}
	actions[entities.TierSecond][mergedBucket] = []entities.MemberAction{}

	numbers := make([]int, 0, len(prs))
	for n := range prs {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		pr := prs[n]
		tl := NewTimeline(pr, teams)

		for _, ev := range tl.TierItems(entities.TierFirst) {
			if rv, ok := ev.(entities.Review); ok {
				actions[entities.TierFirst][rv.Author] = append(
					actions[entities.TierFirst][rv.Author],
					entities.MemberAction{At: rv.CreatedAt, Action: string(rv.State)},
				)
			}
		}
		actions[entities.TierFirst][openedBucket] = append(
			actions[entities.TierFirst][openedBucket],
			entities.MemberAction{At: pr.CreatedAt, Action: "ready"},
		)

		for _, ev := range tl.TierItems(entities.TierSecond) {
			if rv, ok := ev.(entities.Review); ok {
				actions[entities.TierSecond][rv.Author] = append(
					actions[entities.TierSecond][rv.Author],
					entities.MemberAction{At: rv.CreatedAt, Action: string(rv.State)},
				)
			}
		}
		if pr.MergedAt != nil {
			actions[entities.TierSecond][mergedBucket] = append(
				actions[entities.TierSecond][mergedBucket],
				entities.MemberAction{At: *pr.MergedAt, Action: "merged"},
			)
		}
	}

	return actions, nil
}
