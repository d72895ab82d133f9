package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// ToRawEntry maps a legacy record onto the healing input. Dates that do not
// parse are treated as missing, and history rows with a bad date are dropped.
func ToRawEntry(ne NamedEntry) domain.RawEntry {
	e := ne.Entry
	raw := domain.RawEntry{
		Word:          strings.TrimSpace(ne.Word),
		Sentence:      e.Sentence,
		Note:          e.Note,
		Box:           e.Box,
		Ease:          e.Ease,
		Interval:      e.Interval,
		LastReviewed:  parseOptionalDate(e.LastReviewed),
		NextReview:    parseOptionalDate(e.NextReview),
		TimesReviewed: e.TimesReviewed,
		TimesCorrect:  e.TimesCorrect,
	}
	if e.History != nil {
		raw.HasHistory = true
		raw.History = make([]domain.ReviewRecord, 0, len(*e.History))
		for _, h := range *e.History {
			d, err := domain.ParseDate(h.Date)
			if err != nil {
				continue
			}
			raw.History = append(raw.History, domain.ReviewRecord{Date: d, Correct: h.Correct})
		}
	}
	return raw
}

// FromEntry renders an entry in the legacy layout.
func FromEntry(e *domain.VocabEntry) NamedEntry {
	c := e.Clone()
	history := make([]LegacyReview, 0, len(c.History))
	for _, h := range c.History {
		history = append(history, LegacyReview{Date: domain.FormatDate(h.Date), Correct: h.Correct})
	}
	next := domain.FormatDate(c.NextReview)
	return NamedEntry{
		Word: c.Word,
		Entry: LegacyEntry{
			Sentence:      &c.Sentence,
			Note:          &c.Note,
			Box:           &c.Box,
			TimesReviewed: &c.TimesReviewed,
			TimesCorrect:  &c.TimesCorrect,
			Ease:          &c.Ease,
			History:       &history,
			LastReviewed:  formatOptionalDate(c.LastReviewed),
			NextReview:    &next,
			Interval:      &c.Interval,
		},
	}
}

// ToProgress converts a validated legacy progress record.
func ToProgress(lp *LegacyProgress) *domain.ProgressState {
	p := domain.NewProgressState()
	p.CurrentStreak = lp.CurrentStreak
	p.LongestStreak = max(lp.LongestStreak, lp.CurrentStreak)
	p.LastStudyDate = parseOptionalDate(lp.LastStudyDate)
	p.StudiedToday = lp.StudiedToday
	p.XP = lp.XP
	p.TotalReviews = lp.TotalReviews
	for _, id := range lp.Achievements {
		if !p.HasAchievement(id) {
			p.Achievements = append(p.Achievements, id)
		}
	}
	for day, n := range lp.History {
		p.History[day] = n
	}
	return p
}

func FromProgress(p *domain.ProgressState) *LegacyProgress {
	lp := &LegacyProgress{
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		LastStudyDate: formatOptionalDate(p.LastStudyDate),
		StudiedToday:  p.StudiedToday,
		XP:            p.XP,
		Achievements:  append([]string{}, p.Achievements...),
		TotalReviews:  p.TotalReviews,
		History:       make(map[string]int, len(p.History)),
	}
	for day, n := range p.History {
		lp.History[day] = n
	}
	return lp
}

func ToStats(ls *LegacyStats) *domain.StatsState {
	return &domain.StatsState{
		WordsAdded:   ls.WordsAdded,
		WordsRemoved: ls.WordsRemoved,
		QuizAttempts: ls.QuizAttempts,
		QuizCorrect:  ls.QuizCorrect,
	}
}

func FromStats(s *domain.StatsState) *LegacyStats {
	return &LegacyStats{
		WordsAdded:   s.WordsAdded,
		WordsRemoved: s.WordsRemoved,
		QuizAttempts: s.QuizAttempts,
		QuizCorrect:  s.QuizCorrect,
	}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := domain.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}
