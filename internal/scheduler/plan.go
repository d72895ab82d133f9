package scheduler

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// BuildPlan scores every entry and returns the top target candidates in
// priority order. Entries are only read.
func BuildPlan(entries []*domain.VocabEntry, target int, today time.Time) []ScoredCandidate {
	if target <= 0 || len(entries) == 0 {
		return nil
	}

	scored := make([]ScoredCandidate, 0, len(entries))
	for _, e := range entries {
		scored = append(scored, ScoreEntry(InputFromEntry(e, today)))
	}
	CanonicalSort(scored)

	if target < len(scored) {
		scored = scored[:target]
	}
	return scored
}

// PlanWords extracts the ordered words from a plan.
func PlanWords(plan []ScoredCandidate) []string {
	words := make([]string, len(plan))
	for i, c := range plan {
		words[i] = c.Input.Word
	}
	return words
}
