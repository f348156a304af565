// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "sort"

type ChoiceResult struct {
	Choice
	Share float64 `json:"share"` // percent of all votes on the question
	Rank  int     `json:"rank"`  // dense, 1 = most votes
}

type Results struct {
	Question   Question       `json:"question"`
	Choices    []ChoiceResult `json:"choices"`
	TotalVotes int            `json:"total_votes"`
}

// Tally computes shares and dense ranks for choices, keeping their order.
func Tally(choices []Choice) ([]ChoiceResult, int) {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	// Distinct counts, highest first
	seen := make(map[int]bool)
	var counts []int
	for _, c := range choices {
		if !seen[c.Votes] {
			seen[c.Votes] = true
			counts = append(counts, c.Votes)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	rankOf := make(map[int]int, len(counts))
	for i, n := range counts {
		rankOf[n] = i + 1
	}

	results := make([]ChoiceResult, len(choices))
	for i, c := range choices {
		share := 0.0
		if total > 0 {
			share = float64(c.Votes) * 100 / float64(total)
		}
		results[i] = ChoiceResult{Choice: c, Share: share, Rank: rankOf[c.Votes]}
	}
	return results, total
}
