// Package stats derives read-only accuracy, difficulty and distribution
// views from a snapshot of vocabulary entries.
package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// MinReviewsForDifficulty is how many reviews an entry needs before it is
// ranked by error rate.
const MinReviewsForDifficulty = 3

// DefaultHeatmapDays is twelve weeks of activity.
const DefaultHeatmapDays = 84

// DifficultWord pairs a word with its lifetime error rate in [0,1].
type DifficultWord struct {
	Word      string
	ErrorRate float64
	Reviewed  int
}

// WordAccuracy returns the entry's accuracy as a percentage.
func WordAccuracy(e *domain.VocabEntry) float64 {
	return e.Accuracy() * 100
}

// OverallAccuracy returns total correct over total reviewed across all
// entries, as a percentage. Zero when nothing was reviewed.
func OverallAccuracy(entries []*domain.VocabEntry) float64 {
	var reviewed, correct int
	for _, e := range entries {
		reviewed += e.TimesReviewed
		correct += e.TimesCorrect
	}
	if reviewed == 0 {
		return 0
	}
	return float64(correct) / float64(reviewed) * 100
}

// DifficultWords ranks entries with enough reviews by error rate,
// highest first, ties by word. limit <= 0 returns every ranked entry.
func DifficultWords(entries []*domain.VocabEntry, limit int) []DifficultWord {
	var ranked []DifficultWord
	for _, e := range entries {
		if e.TimesReviewed < MinReviewsForDifficulty {
			continue
		}
		ranked = append(ranked, DifficultWord{
			Word:      e.Word,
			ErrorRate: float64(e.TimesReviewed-e.TimesCorrect) / float64(e.TimesReviewed),
			Reviewed:  e.TimesReviewed,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ErrorRate != ranked[j].ErrorRate {
			return ranked[i].ErrorRate > ranked[j].ErrorRate
		}
		return ranked[i].Word < ranked[j].Word
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// BoxDistribution counts entries per memory box. Every box 1..5 is present.
func BoxDistribution(entries []*domain.VocabEntry) map[int]int {
	dist := make(map[int]int, domain.MaxBox)
	for b := domain.MinBox; b <= domain.MaxBox; b++ {
		dist[b] = 0
	}
	for _, e := range entries {
		dist[e.Box]++
	}
	return dist
}

// Summary bundles the dashboard numbers shown by the stats command.
type Summary struct {
	TotalWords      int
	DueToday        int
	TotalReviews    int
	OverallAccuracy float64
	Boxes           map[int]int
	Difficult       []DifficultWord
}

// Summarize computes every view in one pass over the snapshot.
func Summarize(entries []*domain.VocabEntry, today time.Time, difficultLimit int) Summary {
	s := Summary{
		TotalWords:      len(entries),
		OverallAccuracy: OverallAccuracy(entries),
		Boxes:           BoxDistribution(entries),
		Difficult:       DifficultWords(entries, difficultLimit),
	}
	for _, e := range entries {
		s.TotalReviews += e.TimesReviewed
		if e.IsDue(today) {
			s.DueToday++
		}
	}
	return s
}
