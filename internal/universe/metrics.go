package universe

import (
	"fmt"
	"math"
)

// RateUnavailable is shown instead of a percentage before any proposal.
const RateUnavailable = "N/A"

// Metrics are the values derived from a snapshot for display and simulation.
type Metrics struct {
	AgentCount        int
	TotalRank         int
	TotalProposals    int
	AcceptedProposals int
	// Rate is only meaningful when RateDefined is true.
	Rate        float64
	RateDefined bool
}

// TotalRank sums the ranks of agents; zero for none.
// Admitted ranks are positive, so the sum saturates at math.MaxInt instead
// of wrapping.
func TotalRank(agents []Agent) int {
	sum := 0
	for _, a := range agents {
		if a.Rank > 0 && sum > math.MaxInt-a.Rank {
			return math.MaxInt
		}
		sum += a.Rank
	}
	return sum
}

// AcceptanceRate returns accepted/total as a percentage.
// ok is false when no proposal has been made, in which case the rate is undefined.
func AcceptanceRate(total, accepted int) (rate float64, ok bool) {
	if total == 0 {
		return 0, false
	}
	return float64(accepted) / float64(total) * 100, true
}

// Metrics derives the display metrics from the snapshot.
func (s Snapshot) Metrics() Metrics {
	rate, ok := AcceptanceRate(s.TotalProposals, s.AcceptedProposals)
	return Metrics{
		AgentCount:        len(s.Agents),
		TotalRank:         TotalRank(s.Agents),
		TotalProposals:    s.TotalProposals,
		AcceptedProposals: s.AcceptedProposals,
		Rate:              rate,
		RateDefined:       ok,
	}
}

// RateText formats the acceptance rate with one decimal, or N/A.
func (m Metrics) RateText() string {
	if !m.RateDefined {
		return RateUnavailable
	}
	return fmt.Sprintf("%.1f%%", m.Rate)
}
