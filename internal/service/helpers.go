package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// Clock supplies the current time to services. Calendar days are taken in
// the clock's own location, so the system clock yields local dates.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

// today resolves an optional request time against the service clock.
func today(clock Clock, now *time.Time) time.Time {
	if now != nil {
		return domain.Day(*now)
	}
	return domain.Day(clock())
}

// observeUseCase reports one finished use case. Call it from a defer with
// the named error result.
func observeUseCase(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
