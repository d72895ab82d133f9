package scheduler

import "sort"

// CanonicalSort orders scored candidates deterministically:
// 1. Priority: higher first
// 2. Word: lexical ascending
func CanonicalSort(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Input.Word < b.Input.Word
	})
}
