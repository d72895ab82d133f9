package contract

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/alexanderramin/lexibox/internal/stats"
)

// StatsRequest selects how much of the dashboard to compute.
type StatsRequest struct {
	DifficultLimit int
	Now            *time.Time
}

func NewStatsRequest() StatsRequest {
	return StatsRequest{DifficultLimit: 5}
}

type StatsResponse struct {
	Date     time.Time
	Summary  stats.Summary
	Counters domain.StatsState
	Progress domain.ProgressState
}
