package domain

import (
	"fmt"
	"time"
)

// XPPerCorrect is the experience awarded for each correct answer.
const XPPerCorrect = 5

// ProgressState is the learner-wide streak, XP and achievement record.
type ProgressState struct {
	CurrentStreak int
	LongestStreak int
	LastStudyDate *time.Time
	StudiedToday  int
	XP            int
	Achievements  []string
	TotalReviews  int

	// History maps YYYY-MM-DD to the number of reviews completed that day.
	History map[string]int
}

// NewProgressState returns the zero state for a learner who never studied.
func NewProgressState() *ProgressState {
	return &ProgressState{
		Achievements: []string{},
		History:      map[string]int{},
	}
}

// UpdateStreak advances the streak for a study session on today.
// Calling it again on the same day changes nothing.
func (p *ProgressState) UpdateStreak(today time.Time) {
	today = Day(today)
	if p.LastStudyDate != nil {
		last := Day(*p.LastStudyDate)
		switch {
		case last.Equal(today):
			return
		case AddDays(last, 1).Equal(today):
			p.CurrentStreak++
		default:
			p.CurrentStreak = 1
		}
	} else {
		p.CurrentStreak = 1
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.StudiedToday = 0
	p.LastStudyDate = &today
}

// RecordSession folds one finished session into the counters.
func (p *ProgressState) RecordSession(reviewed, correct int, today time.Time) error {
	if reviewed < 0 || correct < 0 {
		return fmt.Errorf("session counts must be non-negative: %w", ErrValidation)
	}
	if correct > reviewed {
		return fmt.Errorf("correct (%d) exceeds reviewed (%d): %w", correct, reviewed, ErrValidation)
	}
	if p.History == nil {
		p.History = map[string]int{}
	}
	p.StudiedToday += reviewed
	p.TotalReviews += reviewed
	p.XP += correct * XPPerCorrect
	p.History[FormatDate(today)] += reviewed
	return nil
}

// HasAchievement reports whether id is already unlocked.
func (p *ProgressState) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// CheckAchievements unlocks every table entry whose threshold is met and
// that is not yet unlocked. The result preserves table order.
func (p *ProgressState) CheckAchievements(wordCount int) []Achievement {
	var unlocked []Achievement
	for _, a := range AchievementTable {
		if p.HasAchievement(a.ID) {
			continue
		}
		if p.metric(a.Metric, wordCount) >= a.Threshold {
			p.Achievements = append(p.Achievements, a.ID)
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

func (p *ProgressState) metric(m AchievementMetric, wordCount int) int {
	switch m {
	case MetricXP:
		return p.XP
	case MetricStreak:
		return p.CurrentStreak
	case MetricReviews:
		return p.TotalReviews
	case MetricWords:
		return wordCount
	default:
		return 0
	}
}

// ReviewsOn returns the review count recorded for a calendar day.
func (p *ProgressState) ReviewsOn(day time.Time) int {
	return p.History[FormatDate(day)]
}
