package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchedule_Invariants property-tests the update rules over random
// entries and ratings.
func TestSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		ease := domain.MinEase + rng.Float64()*2.5
		interval := rng.Intn(200) + 1
		box := rng.Intn(5) + 1
		q := domain.Rating(rng.Intn(4) + 1)

		prev := entryWith(ease, interval, box)
		next, err := Schedule(prev, q, testToday)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, next.Ease, domain.MinEase, "ease floor, trial %d", trial)
		assert.GreaterOrEqual(t, next.Box, domain.MinBox)
		assert.LessOrEqual(t, next.Box, domain.MaxBox)
		assert.Equal(t, testToday.AddDate(0, 0, next.Interval), next.NextReview)

		if q < domain.RatingGood {
			assert.Equal(t, 1, next.Interval, "trial %d: misses collapse the interval", trial)
			assert.Equal(t, max(box-1, domain.MinBox), next.Box)
			continue
		}

		if q == domain.RatingEasy {
			assert.GreaterOrEqual(t, next.Ease, prev.Ease, "trial %d: easy never lowers ease", trial)
		}
		if interval > 1 {
			assert.Greater(t, next.Interval, interval, "trial %d: passing grows the interval", trial)
		} else {
			assert.Equal(t, 3, next.Interval)
		}
		assert.Equal(t, min(box+1, domain.MaxBox), next.Box)
	}
}

func TestSchedule_EaseFloorFromAnyStart(t *testing.T) {
	for _, start := range []float64{0.1, 1.0, 1.3, 1.31} {
		for q := domain.RatingAgain; q <= domain.RatingEasy; q++ {
			next, err := Schedule(entryWith(start, 3, 3), q, testToday)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, next.Ease, domain.MinEase, "start=%v q=%s", start, q)
		}
	}
}
