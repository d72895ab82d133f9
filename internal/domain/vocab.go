package domain

import (
	"fmt"
	"strings"
	"time"
)

// Scheduling defaults for a freshly added entry.
const (
	DefaultBox      = 1
	DefaultEase     = 2.5
	DefaultInterval = 1

	MinBox  = 1
	MaxBox  = 5
	MinEase = 1.3

	// RecentHistoryLen is how many trailing reviews the plan scorer reads.
	RecentHistoryLen = 5
)

// ReviewRecord is one answered prompt in an entry's history log.
type ReviewRecord struct {
	Date    time.Time
	Correct bool
}

type VocabEntry struct {
	Word     string
	Sentence string
	Note     string

	// Scheduling
	Box          int
	Ease         float64
	Interval     int
	LastReviewed *time.Time
	NextReview   time.Time

	// Performance
	TimesReviewed int
	TimesCorrect  int
	History       []ReviewRecord

	CreatedAt time.Time
}

// NewVocabEntry builds an entry with default scheduling fields, due on today.
// Inputs are trimmed and validated.
func NewVocabEntry(word, sentence, note string, today time.Time, now time.Time) (*VocabEntry, error) {
	e := &VocabEntry{
		Word:       strings.TrimSpace(word),
		Sentence:   strings.TrimSpace(sentence),
		Note:       strings.TrimSpace(note),
		Box:        DefaultBox,
		Ease:       DefaultEase,
		Interval:   DefaultInterval,
		NextReview: Day(today),
		History:    []ReviewRecord{},
		CreatedAt:  now,
	}
	if err := e.ValidateText(); err != nil {
		return nil, err
	}
	return e, nil
}

// ValidateText checks the learner-supplied fields.
func (e *VocabEntry) ValidateText() error {
	if e.Word == "" {
		return fmt.Errorf("word is required: %w", ErrValidation)
	}
	if e.Sentence == "" {
		return fmt.Errorf("sentence is required: %w", ErrValidation)
	}
	if !strings.Contains(strings.ToLower(e.Sentence), strings.ToLower(e.Word)) {
		return fmt.Errorf("sentence must contain %q: %w", e.Word, ErrValidation)
	}
	return nil
}

// SetText replaces sentence and note. Scheduling fields are never touched.
func (e *VocabEntry) SetText(sentence, note string) error {
	next := *e
	next.Sentence = strings.TrimSpace(sentence)
	next.Note = strings.TrimSpace(note)
	if err := next.ValidateText(); err != nil {
		return err
	}
	e.Sentence = next.Sentence
	e.Note = next.Note
	return nil
}

// RecordAnswer logs one answered prompt on the given day.
func (e *VocabEntry) RecordAnswer(correct bool, today time.Time) {
	e.TimesReviewed++
	if correct {
		e.TimesCorrect++
	}
	e.History = append(e.History, ReviewRecord{Date: Day(today), Correct: correct})
}

// RecentHistory returns a copy of the last n records, oldest first. The log
// itself is never trimmed.
func (e *VocabEntry) RecentHistory(n int) []ReviewRecord {
	if n <= 0 {
		return nil
	}
	start := max(len(e.History)-n, 0)
	out := make([]ReviewRecord, len(e.History)-start)
	copy(out, e.History[start:])
	return out
}

// Accuracy returns the fraction of correct reviews, 0 when never reviewed.
func (e *VocabEntry) Accuracy() float64 {
	if e.TimesReviewed == 0 {
		return 0
	}
	return float64(e.TimesCorrect) / float64(e.TimesReviewed)
}

// IsNew reports whether the entry has never been reviewed.
func (e *VocabEntry) IsNew() bool {
	return e.TimesReviewed == 0
}

// IsDue reports whether the entry's next review is on or before today.
func (e *VocabEntry) IsDue(today time.Time) bool {
	return !Day(e.NextReview).After(Day(today))
}

// Clone returns a deep copy so callers can hold snapshots safely.
func (e *VocabEntry) Clone() *VocabEntry {
	c := *e
	if e.LastReviewed != nil {
		lr := *e.LastReviewed
		c.LastReviewed = &lr
	}
	if e.History != nil {
		c.History = make([]ReviewRecord, len(e.History))
		copy(c.History, e.History)
	}
	return &c
}

// WordKey folds a word to the key that identifies it ignoring case.
func WordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// SameWord reports whether two words are equal ignoring case.
func SameWord(a, b string) bool {
	return WordKey(a) == WordKey(b)
}
