package domain

// StatsState holds lifetime counters that are not derivable from entries.
type StatsState struct {
	WordsAdded   int
	WordsRemoved int
	QuizAttempts int
	QuizCorrect  int
}

// QuizAccuracy returns the quiz success percentage, 0 without attempts.
func (s StatsState) QuizAccuracy() float64 {
	if s.QuizAttempts == 0 {
		return 0
	}
	return float64(s.QuizCorrect) / float64(s.QuizAttempts) * 100
}
