package cards

import "slices"

// MinMeldSize is the smallest number of cards that form a set or a run
const MinMeldSize = 3

// groupBy buckets cards by key, preserving the order cards appear in
func groupBy[K comparable](cards []Card, key func(Card) K) map[K][]Card {
	groups := make(map[K][]Card)
	for _, c := range cards {
		k := key(c)
		groups[k] = append(groups[k], c)
	}
	return groups
}

// retain drops every group that keep rejects
func retain[K comparable](groups map[K][]Card, keep func([]Card) bool) map[K][]Card {
	for k, group := range groups {
		if !keep(group) {
			delete(groups, k)
		}
	}
	return groups
}

func meldSized(group []Card) bool {
	return len(group) >= MinMeldSize
}

// findSets returns the groups of three or four cards sharing a rank
func findSets(cards []Card) map[Rank][]Card {
	byRank := groupBy(cards, func(c Card) Rank { return c.Rank })
	return retain(byRank, meldSized)
}

// findRuns returns, per suit, the concatenated cards of every run of three
// or more consecutive ranks
func findRuns(cards []Card) map[Suit][]Card {
	bySuit := groupBy(cards, func(c Card) Suit { return c.Suit })

	runs := make(map[Suit][]Card)
	for suit, group := range bySuit {
		sorted := slices.Clone(group)
		slices.SortStableFunc(sorted, func(a, b Card) int {
			return a.Rank.Value() - b.Rank.Value()
		})

		var current []Card
		commit := func() {
			if meldSized(current) {
				runs[suit] = append(runs[suit], current...)
			}
		}

		for _, c := range sorted {
			if len(current) > 0 && c.Rank.Follows(current[len(current)-1].Rank) {
				current = append(current, c)
				continue
			}
			commit()
			current = []Card{c}
		}
		// a run that reaches the highest card of the suit still counts
		commit()
	}

	return runs
}
