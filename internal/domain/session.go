package domain

import "time"

// StudySession is the log row written when a session is finished.
type StudySession struct {
	ID        string
	Date      time.Time
	Reviewed  int
	Correct   int
	XPEarned  int
	CreatedAt time.Time
}
