package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatch returns the index of the label that best matches query, or -1.
// Exact matches win over prefixes, prefixes over substrings and substrings
// over fuzzy matches. Ties go to the label closest to from, searching forward
// and wrapping, so repeating a query cycles through equal candidates.
func BestMatch(labels []string, query string, from int) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	tiers := []func(string) bool{
		func(label string) bool { return strings.EqualFold(label, trimmed) },
		func(label string) bool { return strings.HasPrefix(strings.ToLower(label), lower) },
		func(label string) bool { return strings.Contains(strings.ToLower(label), lower) },
	}
	for _, match := range tiers {
		if idx := firstFrom(labels, from, match); idx >= 0 {
			return idx
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && distance(from, rank.OriginalIndex, len(labels)) < distance(from, best.OriginalIndex, len(labels)) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}

func firstFrom(labels []string, from int, match func(string) bool) int {
	n := len(labels)
	if from < 0 || from >= n {
		from = 0
	}
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if match(labels[idx]) {
			return idx
		}
	}
	return -1
}

func distance(from, idx, n int) int {
	if from < 0 || from >= n {
		from = 0
	}
	return (idx - from + n) % n
}
