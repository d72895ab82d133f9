package contract

import (
	"time"

	"github.com/alexanderramin/lexibox/internal/scheduler"
)

// PlanRequest asks for a ranked study session. A Target of zero means
// "use the suggested daily target".
type PlanRequest struct {
	Target  int
	Now     *time.Time
	Explain bool
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{Explain: true}
}

// PlanItem is one ranked word of a study plan.
type PlanItem struct {
	Word       string
	Sentence   string
	Note       string
	Box        int
	NextReview time.Time
	Priority   float64
	Reasons    []scheduler.PriorityFactor
}

type PlanResponse struct {
	GeneratedAt time.Time
	Date        time.Time
	TotalWords  int
	DueCount    int
	Target      int
	Items       []PlanItem
}

// Words returns the plan's words in rank order.
func (r *PlanResponse) Words() []string {
	out := make([]string, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Word
	}
	return out
}
