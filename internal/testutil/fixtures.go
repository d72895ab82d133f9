package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/google/uuid"
)

// Entry options
type EntryOption func(*domain.VocabEntry)

func WithSentence(s string) EntryOption {
	return func(e *domain.VocabEntry) {
		e.Sentence = s
	}
}

func WithNote(n string) EntryOption {
	return func(e *domain.VocabEntry) {
		e.Note = n
	}
}

func WithBox(b int) EntryOption {
	return func(e *domain.VocabEntry) {
		e.Box = b
	}
}

func WithEase(f float64) EntryOption {
	return func(e *domain.VocabEntry) {
		e.Ease = f
	}
}

func WithInterval(days int) EntryOption {
	return func(e *domain.VocabEntry) {
		e.Interval = days
	}
}

func WithNextReview(d time.Time) EntryOption {
	return func(e *domain.VocabEntry) {
		e.NextReview = domain.Day(d)
	}
}

func WithLastReviewed(d time.Time) EntryOption {
	return func(e *domain.VocabEntry) {
		day := domain.Day(d)
		e.LastReviewed = &day
	}
}

// WithReviews sets the counters without writing history.
func WithReviews(reviewed, correct int) EntryOption {
	return func(e *domain.VocabEntry) {
		e.TimesReviewed = reviewed
		e.TimesCorrect = correct
	}
}

// WithHistory appends one record per outcome on consecutive days ending
// the day before the entry's next review, and bumps the counters to match.
func WithHistory(outcomes ...bool) EntryOption {
	return func(e *domain.VocabEntry) {
		start := domain.AddDays(e.NextReview, -len(outcomes))
		for i, ok := range outcomes {
			e.RecordAnswer(ok, domain.AddDays(start, i))
		}
	}
}

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.VocabEntry) {
		e.CreatedAt = t.UTC()
	}
}

// NewTestEntry builds a default entry due today whose sentence contains word.
func NewTestEntry(word string, opts ...EntryOption) *domain.VocabEntry {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.VocabEntry{
		Word:       word,
		Sentence:   fmt.Sprintf("This sentence uses %s in context.", word),
		Box:        domain.DefaultBox,
		Ease:       domain.DefaultEase,
		Interval:   domain.DefaultInterval,
		NextReview: domain.Today(),
		History:    []domain.ReviewRecord{},
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session options
type SessionOption func(*domain.StudySession)

func WithSessionDate(d time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.Date = domain.Day(d)
	}
}

func WithXP(xp int) SessionOption {
	return func(s *domain.StudySession) {
		s.XPEarned = xp
	}
}

func NewTestStudySession(reviewed, correct int, opts ...SessionOption) *domain.StudySession {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.StudySession{
		ID:        uuid.New().String(),
		Date:      domain.Today(),
		Reviewed:  reviewed,
		Correct:   correct,
		XPEarned:  correct * domain.XPPerCorrect,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
