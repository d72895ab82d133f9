package scheduler

import (
	"testing"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/stretchr/testify/assert"
)

func factorByCode(c ScoredCandidate, code FactorCode) (PriorityFactor, bool) {
	for _, f := range c.Factors {
		if f.Code == code {
			return f, true
		}
	}
	return PriorityFactor{}, false
}

func TestScoreEntry_NewWordNotDue(t *testing.T) {
	result := ScoreEntry(ScoringInput{
		Word:       "fresh",
		NextReview: testToday.AddDate(0, 0, 10),
		Ease:       2.5,
		Today:      testToday,
	})

	// 1 × (3.5/2.5) × 2.5 × 1.8 × 1
	assert.InDelta(t, 6.3, result.Priority, 1e-9)
	assert.Len(t, result.Factors, 5)

	nw, ok := factorByCode(result, FactorNewWord)
	assert.True(t, ok)
	assert.Equal(t, 1.8, nw.Value)
	assert.Equal(t, "New word", nw.Message)
}

func TestScoreEntry_OverdueCompoundsPerDay(t *testing.T) {
	result := ScoreEntry(ScoringInput{
		Word:          "late",
		NextReview:    testToday.AddDate(0, 0, -10),
		Ease:          3.5,
		TimesReviewed: 4,
		TimesCorrect:  4,
		Today:         testToday,
	})

	overdue, ok := factorByCode(result, FactorOverdue)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, overdue.Value, 1e-9)
	assert.Equal(t, "10 days overdue", overdue.Message)
	assert.InDelta(t, 2.5, result.Priority, 1e-9)
}

func TestScoreEntry_FutureDueIsNeutral(t *testing.T) {
	result := ScoreEntry(ScoringInput{
		Word:          "later",
		NextReview:    testToday.AddDate(1, 0, 0),
		Ease:          3.5,
		TimesReviewed: 1,
		TimesCorrect:  1,
		Today:         testToday,
	})
	assert.InDelta(t, 1.0, result.Priority, 1e-9)
}

func TestScoreEntry_RecentErrorsOnlyLastFive(t *testing.T) {
	e := &domain.VocabEntry{
		Word:          "shaky",
		NextReview:    testToday,
		Ease:          3.5,
		TimesReviewed: 7,
		TimesCorrect:  7,
	}
	// Two old misses fall outside the window; two recent misses count.
	for _, correct := range []bool{false, false, true, false, true, false, true} {
		e.History = append(e.History, domain.ReviewRecord{Date: testToday, Correct: correct})
	}

	result := ScoreEntry(InputFromEntry(e, testToday))

	boost, ok := factorByCode(result, FactorRecentError)
	assert.True(t, ok)
	assert.InDelta(t, 1.6, boost.Value, 1e-9)
	assert.Equal(t, "2 of last 5 answers missed", boost.Message)
	assert.Len(t, e.History, 7, "scoring never trims history")
}

func TestScoreEntry_LowEaseRanksHigher(t *testing.T) {
	hard := ScoreEntry(ScoringInput{Word: "a", NextReview: testToday, Ease: 1.3, TimesReviewed: 2, TimesCorrect: 1, Today: testToday})
	easy := ScoreEntry(ScoringInput{Word: "b", NextReview: testToday, Ease: 2.8, TimesReviewed: 2, TimesCorrect: 1, Today: testToday})
	assert.Greater(t, hard.Priority, easy.Priority)
}

func TestScoreEntry_AccuracyFactor(t *testing.T) {
	result := ScoreEntry(ScoringInput{
		Word:          "w",
		NextReview:    testToday,
		Ease:          3.5,
		TimesReviewed: 10,
		TimesCorrect:  2,
		Today:         testToday,
	})
	acc, ok := factorByCode(result, FactorAccuracy)
	assert.True(t, ok)
	assert.InDelta(t, 2.2, acc.Value, 1e-9)
	assert.Equal(t, "20% accuracy over 10 reviews", acc.Message)
}
