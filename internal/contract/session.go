package contract

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// SessionRequest reports a finished study session.
type SessionRequest struct {
	Reviewed int
	Correct  int
	Now      *time.Time
}

func NewSessionRequest(reviewed, correct int) SessionRequest {
	return SessionRequest{Reviewed: reviewed, Correct: correct}
}

// SessionSummary is what the learner sees after finishing a session.
type SessionSummary struct {
	SessionID     string
	Date          time.Time
	Reviewed      int
	Correct       int
	XPEarned      int
	TotalXP       int
	CurrentStreak int
	LongestStreak int
	Unlocked      []domain.Achievement
}

// Accuracy returns the session's success percentage, 0 when empty.
func (s *SessionSummary) Accuracy() float64 {
	if s.Reviewed == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Reviewed) * 100
}
