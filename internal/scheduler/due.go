package scheduler

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

const (
	MinDailyTarget = 5
	MaxDailyTarget = 20
)

// DueWords returns the words whose next review is on or before today, in
// the order the entries were given.
func DueWords(entries []*domain.VocabEntry, today time.Time) []string {
	var due []string
	for _, e := range entries {
		if e.IsDue(today) {
			due = append(due, e.Word)
		}
	}
	return due
}

// DueCount returns the number of due entries.
func DueCount(entries []*domain.VocabEntry, today time.Time) int {
	n := 0
	for _, e := range entries {
		if e.IsDue(today) {
			n++
		}
	}
	return n
}

// SuggestedDailyTarget clamps the due count into [MinDailyTarget, MaxDailyTarget].
func SuggestedDailyTarget(dueCount int) int {
	if dueCount < MinDailyTarget {
		return MinDailyTarget
	}
	if dueCount > MaxDailyTarget {
		return MaxDailyTarget
	}
	return dueCount
}
