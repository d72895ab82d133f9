package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func entry(word string, box, reviewed, correct int) *domain.VocabEntry {
	return &domain.VocabEntry{
		Word:          word,
		Box:           box,
		Ease:          2.5,
		TimesReviewed: reviewed,
		TimesCorrect:  correct,
		NextReview:    testToday,
	}
}

func TestWordAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, WordAccuracy(entry("new", 1, 0, 0)))
	assert.InDelta(t, 75.0, WordAccuracy(entry("w", 1, 4, 3)), 1e-9)
}

func TestOverallAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, OverallAccuracy(nil))
	assert.Equal(t, 0.0, OverallAccuracy([]*domain.VocabEntry{entry("a", 1, 0, 0)}))

	entries := []*domain.VocabEntry{entry("a", 1, 10, 9), entry("b", 1, 10, 1), entry("c", 1, 0, 0)}
	assert.InDelta(t, 50.0, OverallAccuracy(entries), 1e-9, "pooled, not averaged per word")
}

func TestDifficultWords(t *testing.T) {
	entries := []*domain.VocabEntry{
		entry("rare", 1, 2, 0),
		entry("ok", 1, 4, 3),
		entry("bad", 1, 5, 1),
		entry("also-bad", 1, 5, 1),
		entry("perfect", 1, 3, 3),
	}

	got := DifficultWords(entries, 0)
	require.Len(t, got, 4, "entries under three reviews are excluded")
	assert.Equal(t, "also-bad", got[0].Word)
	assert.Equal(t, "bad", got[1].Word)
	assert.InDelta(t, 0.8, got[0].ErrorRate, 1e-9)
	assert.Equal(t, "ok", got[2].Word)
	assert.Equal(t, "perfect", got[3].Word)
	assert.Equal(t, 0.0, got[3].ErrorRate)

	assert.Len(t, DifficultWords(entries, 2), 2)
}

func TestBoxDistribution(t *testing.T) {
	dist := BoxDistribution([]*domain.VocabEntry{entry("a", 1, 0, 0), entry("b", 3, 0, 0), entry("c", 3, 0, 0)})
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 2, 4: 0, 5: 0}, dist)

	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, BoxDistribution(nil))
}

func TestSummarize(t *testing.T) {
	later := entry("later", 2, 4, 2)
	later.NextReview = testToday.AddDate(0, 0, 4)
	entries := []*domain.VocabEntry{entry("now", 1, 4, 4), later}

	s := Summarize(entries, testToday, 5)
	assert.Equal(t, 2, s.TotalWords)
	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 8, s.TotalReviews)
	assert.InDelta(t, 75.0, s.OverallAccuracy, 1e-9)
	assert.Len(t, s.Difficult, 2)
}

func TestActivity(t *testing.T) {
	history := map[string]int{
		"2025-06-15": 12,
		"2025-06-13": 3,
		"2025-03-01": 99,
	}

	cells := Activity(history, testToday, 7)
	require.Len(t, cells, 7)
	assert.Equal(t, testToday.AddDate(0, 0, -6), cells[0].Date)
	assert.Equal(t, testToday, cells[6].Date)
	assert.Equal(t, 12, cells[6].Reviews)
	assert.Equal(t, 3, cells[4].Reviews)
	assert.Equal(t, 2, ActiveDays(cells))

	assert.Len(t, Activity(history, testToday, DefaultHeatmapDays), 84)
	assert.Nil(t, Activity(history, testToday, 0))
}
