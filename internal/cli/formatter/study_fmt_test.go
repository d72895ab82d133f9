package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/lexibox/internal/contract"
	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestBlankSentence(t *testing.T) {
	tests := []struct {
		name, sentence, word, want string
	}{
		{"single", "The sky is azure.", "azure", "The sky is [_____]."},
		{"every occurrence ignoring case", "Run! run, RUN.", "run", "[___]! [___], [___]."},
		{"inside longer word", "Cats scatter.", "cat", "[___]s s[___]ter."},
		{"regex characters are literal", "Use C++ daily.", "C++", "Use [___] daily."},
		{"absent word", "Nothing here.", "word", "Nothing here."},
		{"empty word", "Keep as is.", "", "Keep as is."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlankSentence(tt.sentence, tt.word))
		})
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, "•••••", Hint("azure", 0))
	assert.Equal(t, "a••••", Hint("azure", 1))
	assert.Equal(t, "azu••", Hint("azure", 3))
	assert.Equal(t, "azure", Hint("azure", 9))
	assert.Equal(t, "•••••", Hint("azure", -2))
	assert.Equal(t, "ca••", Hint("café", 2))
}

func TestFormatPlan(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	resp := &contract.PlanResponse{
		Date:       today,
		TotalWords: 4,
		DueCount:   2,
		Target:     5,
		Items: []contract.PlanItem{
			{Word: "zeal", Box: 1, NextReview: today.AddDate(0, 0, -3), Priority: 4.2,
				Reasons: []scheduler.PriorityFactor{{Code: scheduler.FactorOverdue, Value: 1.45, Message: "3 days overdue"}}},
			{Word: "apt", Box: 2, NextReview: today, Priority: 2.1},
		},
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "zeal")
	assert.Contains(t, out, "3 days overdue")
	assert.Contains(t, out, "×1.45")
	assert.Contains(t, out, "Planned: 2")
	assert.Contains(t, out, "Due: 2 of 4 words, target 5")
}

func TestFormatPlan_Empty(t *testing.T) {
	out := FormatPlan(&contract.PlanResponse{Date: time.Now()})
	assert.Contains(t, out, "vocabulary is empty")
}

func TestFormatPrompt_HidesTheWord(t *testing.T) {
	item := contract.PlanItem{Word: "terse", Sentence: "Keep it terse.", Note: "brief", Box: 2}
	out := FormatPrompt(item, 0, 3)
	assert.Contains(t, out, "Word 1 of 3")
	assert.Contains(t, out, "Keep it [_____].")
	assert.Contains(t, out, "brief")
	assert.NotContains(t, out, "terse")
}

func TestFormatSessionSummary(t *testing.T) {
	out := FormatSessionSummary(&contract.SessionSummary{
		Reviewed: 4, Correct: 3, XPEarned: 15, TotalXP: 115,
		CurrentStreak: 3, LongestStreak: 5,
		Unlocked: []domain.Achievement{domain.AchievementTable[0]},
	})
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "+15")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "best 5")
	assert.Contains(t, out, "Earned 100 XP")
}

func TestFormatAnswerFeedback(t *testing.T) {
	assert.Contains(t, FormatAnswerFeedback(true, "zeal"), "Correct")
	wrong := FormatAnswerFeedback(false, "zeal")
	assert.Contains(t, wrong, "Not quite")
	assert.Contains(t, wrong, "zeal")
}
