package domain

import (
	"math"
	"time"
)

// RawEntry is a vocabulary record as read from storage, where any field may
// be missing. Nil means the field was absent.
type RawEntry struct {
	Word          string
	Sentence      *string
	Note          *string
	Box           *int
	Ease          *float64
	Interval      *int
	LastReviewed  *time.Time
	NextReview    *time.Time
	TimesReviewed *int
	TimesCorrect  *int
	History       []ReviewRecord
	HasHistory    bool
	CreatedAt     *time.Time
}

// HealEntry turns a raw record into a complete VocabEntry, filling every
// missing field with its default and pulling out-of-range scheduling values
// back into range. It returns the names of the fields it repaired; a record
// that already conforms comes back unchanged with no repairs.
//
// today is the default due date for a record without one.
func HealEntry(raw RawEntry, today time.Time) (*VocabEntry, []string) {
	var healed []string
	mark := func(missing bool, name string) {
		if missing {
			healed = append(healed, name)
		}
	}

	mark(raw.Sentence == nil, "sentence")
	mark(raw.Note == nil, "note")
	mark(raw.Box == nil, "box")
	mark(raw.Ease == nil, "ease")
	mark(raw.Interval == nil, "interval")
	mark(raw.NextReview == nil, "next_review")
	mark(raw.TimesReviewed == nil, "times_reviewed")
	mark(raw.TimesCorrect == nil, "times_correct")
	mark(!raw.HasHistory, "history")

	e := &VocabEntry{
		Word:          raw.Word,
		Sentence:      StrFromPtrWithDefault("", raw.Sentence),
		Note:          StrFromPtrWithDefault("", raw.Note),
		Box:           IntFromPtrWithDefault(DefaultBox, raw.Box),
		Ease:          Float64FromPtrWithDefault(DefaultEase, raw.Ease),
		Interval:      IntFromPtrWithDefault(DefaultInterval, raw.Interval),
		NextReview:    Day(TimeFromPtrWithDefault(today, raw.NextReview)),
		TimesReviewed: IntFromPtrWithDefault(0, raw.TimesReviewed),
		TimesCorrect:  IntFromPtrWithDefault(0, raw.TimesCorrect),
		History:       raw.History,
		CreatedAt:     TimeFromPtrWithDefault(today, raw.CreatedAt),
	}
	if raw.LastReviewed != nil {
		lr := Day(*raw.LastReviewed)
		e.LastReviewed = &lr
	}
	if e.History == nil {
		e.History = []ReviewRecord{}
	}

	if e.Box < MinBox || e.Box > MaxBox {
		e.Box = clampInt(e.Box, MinBox, MaxBox)
		healed = append(healed, "box")
	}
	if math.IsNaN(e.Ease) || math.IsInf(e.Ease, 0) {
		e.Ease = DefaultEase
		healed = append(healed, "ease")
	} else if e.Ease < MinEase {
		e.Ease = MinEase
		healed = append(healed, "ease")
	}
	if e.Interval < 1 {
		e.Interval = DefaultInterval
		healed = append(healed, "interval")
	}
	if e.TimesReviewed < 0 {
		e.TimesReviewed = 0
		healed = append(healed, "times_reviewed")
	}
	if e.TimesCorrect < 0 {
		e.TimesCorrect = 0
		healed = append(healed, "times_correct")
	}
	if e.TimesCorrect > e.TimesReviewed {
		e.TimesCorrect = e.TimesReviewed
		healed = append(healed, "times_correct")
	}
	return e, healed
}

// RawFromEntry is the inverse of HealEntry for a complete entry.
func RawFromEntry(e *VocabEntry) RawEntry {
	c := e.Clone()
	created := c.CreatedAt
	next := c.NextReview
	return RawEntry{
		Word:          c.Word,
		Sentence:      &c.Sentence,
		Note:          &c.Note,
		Box:           &c.Box,
		Ease:          &c.Ease,
		Interval:      &c.Interval,
		LastReviewed:  c.LastReviewed,
		NextReview:    &next,
		TimesReviewed: &c.TimesReviewed,
		TimesCorrect:  &c.TimesCorrect,
		History:       c.History,
		HasHistory:    true,
		CreatedAt:     &created,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
