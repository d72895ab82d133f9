// Package remind periodically reports how many words are due for review.
package remind

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// DueCounter reports the number of words due today.
type DueCounter interface {
	DueCount(ctx context.Context) (int, error)
}

type Reminder struct {
	due    DueCounter
	out    io.Writer
	every  time.Duration
	clock  func() time.Time
	logger *slog.Logger
}

// New returns a reminder that writes to out every interval.
func New(due DueCounter, out io.Writer, every time.Duration, logger *slog.Logger) *Reminder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reminder{
		due:    due,
		out:    out,
		every:  every,
		clock:  time.Now,
		logger: logger,
	}
}

// Check writes one reminder line and returns the due count.
func (r *Reminder) Check(ctx context.Context) (int, error) {
	n, err := r.due.DueCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting due words: %w", err)
	}
	fmt.Fprintln(r.out, Message(r.clock(), n))
	return n, nil
}

// Message renders the reminder text for a due count.
func Message(at time.Time, due int) string {
	stamp := at.Format("15:04")
	switch due {
	case 0:
		return fmt.Sprintf("[%s] Nothing due. Add a word or come back tomorrow.", stamp)
	case 1:
		return fmt.Sprintf("[%s] 1 word is due for review.", stamp)
	default:
		return fmt.Sprintf("[%s] %d words are due for review.", stamp, due)
	}
}

// Run checks immediately and then on every interval until ctx is done.
// Failed checks are logged and do not stop the loop.
func (r *Reminder) Run(ctx context.Context) error {
	s := gocron.NewScheduler(time.Local)
	_, err := s.Every(r.every).Do(func() {
		if _, err := r.Check(ctx); err != nil {
			r.logger.ErrorContext(ctx, "reminder_check_failed", "error", err.Error())
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling reminder every %s: %w", r.every, err)
	}

	s.StartAsync()
	<-ctx.Done()
	s.Stop()
	return nil
}
