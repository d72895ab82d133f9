package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// NextEase applies the continuous ease update for rating q, floored at
// domain.MinEase.
func NextEase(ease float64, q domain.Rating) float64 {
	miss := 5 - float64(q)
	next := ease + (0.1 - miss*(0.08+miss*0.02))
	return math.Max(domain.MinEase, next)
}

// NextInterval returns the interval in days after a review. Any rating below
// Good collapses it to one day; the first passing review jumps to three days,
// later ones compound by the new ease.
func NextInterval(interval int, ease float64, q domain.Rating) int {
	if !q.Passed() {
		return 1
	}
	if interval <= 1 {
		return 3
	}
	return int(math.Round(float64(interval) * ease))
}

// NextBox moves the memory box one level up on a pass and one down on a miss.
func NextBox(box int, q domain.Rating) int {
	step := -1
	if q.Passed() {
		step = 1
	}
	next := box + step
	if next < domain.MinBox {
		return domain.MinBox
	}
	if next > domain.MaxBox {
		return domain.MaxBox
	}
	return next
}

// Schedule returns a copy of entry with its scheduling fields updated for a
// review rated q on today. The input entry is not modified.
func Schedule(entry *domain.VocabEntry, q domain.Rating, today time.Time) (*domain.VocabEntry, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("rating %d must be between 1 and 4: %w", int(q), domain.ErrInvalidRating)
	}
	today = domain.Day(today)

	next := entry.Clone()
	next.Ease = NextEase(entry.Ease, q)
	next.Interval = NextInterval(entry.Interval, next.Ease, q)
	next.NextReview = domain.AddDays(today, next.Interval)
	next.Box = NextBox(entry.Box, q)
	next.LastReviewed = &today
	return next, nil
}
