package stats

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// ActivityDay is one cell of the study heatmap.
type ActivityDay struct {
	Date    time.Time
	Reviews int
}

// Activity returns one cell per day for the days ending on today, oldest
// first, read from the per-day review history.
func Activity(history map[string]int, today time.Time, days int) []ActivityDay {
	if days <= 0 {
		return nil
	}
	out := make([]ActivityDay, days)
	for i := 0; i < days; i++ {
		day := domain.AddDays(today, i-(days-1))
		out[i] = ActivityDay{Date: day, Reviews: history[domain.FormatDate(day)]}
	}
	return out
}

// ActiveDays counts cells with at least one review.
func ActiveDays(cells []ActivityDay) int {
	n := 0
	for _, c := range cells {
		if c.Reviews > 0 {
			n++
		}
	}
	return n
}
