package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// Priority weights. Each factor is a multiplier; 1.0 is neutral.
const (
	overduePerDay      = 0.15
	difficultyBaseline = 3.5
	inaccuracyWeight   = 1.5
	newWordBoost       = 1.8
	recentErrorWeight  = 0.3
)

type FactorCode string

const (
	FactorOverdue     FactorCode = "OVERDUE"
	FactorDifficulty  FactorCode = "DIFFICULTY"
	FactorAccuracy    FactorCode = "ACCURACY"
	FactorNewWord     FactorCode = "NEW_WORD"
	FactorRecentError FactorCode = "RECENT_ERRORS"
)

// PriorityFactor explains one multiplier that went into a priority score.
type PriorityFactor struct {
	Code    FactorCode
	Value   float64
	Message string
}

type ScoringInput struct {
	Word          string
	NextReview    time.Time
	Ease          float64
	TimesReviewed int
	TimesCorrect  int
	Recent        []domain.ReviewRecord
	Today         time.Time
}

// InputFromEntry builds the scoring input for an entry as of today.
func InputFromEntry(e *domain.VocabEntry, today time.Time) ScoringInput {
	return ScoringInput{
		Word:          e.Word,
		NextReview:    e.NextReview,
		Ease:          e.Ease,
		TimesReviewed: e.TimesReviewed,
		TimesCorrect:  e.TimesCorrect,
		Recent:        e.RecentHistory(domain.RecentHistoryLen),
		Today:         today,
	}
}

type ScoredCandidate struct {
	Input    ScoringInput
	Priority float64
	Factors  []PriorityFactor
}

// ScoreEntry computes the composite priority of one entry. Higher is more
// urgent.
func ScoreEntry(input ScoringInput) ScoredCandidate {
	result := ScoredCandidate{Input: input}

	priority := 1.0
	factors := []func(ScoringInput) PriorityFactor{
		scoreOverdue,
		scoreDifficulty,
		scoreAccuracy,
		scoreNewWord,
		scoreRecentErrors,
	}
	for _, f := range factors {
		factor := f(input)
		priority *= factor.Value
		result.Factors = append(result.Factors, factor)
	}

	result.Priority = priority
	return result
}

func scoreOverdue(input ScoringInput) PriorityFactor {
	days := domain.DaysBetween(input.NextReview, input.Today)
	if days < 0 {
		days = 0
	}
	return PriorityFactor{
		Code:    FactorOverdue,
		Value:   1 + float64(days)*overduePerDay,
		Message: formatOverdueMessage(days),
	}
}

func scoreDifficulty(input ScoringInput) PriorityFactor {
	ease := input.Ease
	if ease < domain.MinEase {
		ease = domain.MinEase
	}
	return PriorityFactor{
		Code:    FactorDifficulty,
		Value:   difficultyBaseline / ease,
		Message: fmt.Sprintf("Ease %.2f", input.Ease),
	}
}

func scoreAccuracy(input ScoringInput) PriorityFactor {
	var accuracy float64
	if input.TimesReviewed > 0 {
		accuracy = float64(input.TimesCorrect) / float64(input.TimesReviewed)
	}
	msg := "Never reviewed"
	if input.TimesReviewed > 0 {
		msg = fmt.Sprintf("%.0f%% accuracy over %d reviews", accuracy*100, input.TimesReviewed)
	}
	return PriorityFactor{
		Code:    FactorAccuracy,
		Value:   1 + (1-accuracy)*inaccuracyWeight,
		Message: msg,
	}
}

func scoreNewWord(input ScoringInput) PriorityFactor {
	if input.TimesReviewed == 0 {
		return PriorityFactor{Code: FactorNewWord, Value: newWordBoost, Message: "New word"}
	}
	return PriorityFactor{Code: FactorNewWord, Value: 1, Message: "Seen before"}
}

func scoreRecentErrors(input ScoringInput) PriorityFactor {
	errors := 0
	for _, h := range input.Recent {
		if !h.Correct {
			errors++
		}
	}
	msg := "No recent misses"
	if errors > 0 {
		msg = fmt.Sprintf("%d of last %d answers missed", errors, len(input.Recent))
	}
	return PriorityFactor{
		Code:    FactorRecentError,
		Value:   1 + float64(errors)*recentErrorWeight,
		Message: msg,
	}
}

func formatOverdueMessage(days int) string {
	switch {
	case days <= 0:
		return "Not overdue"
	case days == 1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", days)
	}
}
