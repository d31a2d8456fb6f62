package universe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalRank(t *testing.T) {
	assert.Equal(t, 0, TotalRank(nil))
	assert.Equal(t, 21, TotalRank([]Agent{{Rank: 3}, {Rank: 7}, {Rank: 11}}))
}

func TestTotalRankSaturates(t *testing.T) {
	const big = 9223372036854775783 // largest prime below 2^63
	assert.Equal(t, math.MaxInt, TotalRank([]Agent{{Rank: big}, {Rank: 7919}}))
	assert.Equal(t, math.MaxInt, TotalRank([]Agent{{Rank: big}, {Rank: big}, {Rank: 2}}))
	assert.Equal(t, big+2, TotalRank([]Agent{{Rank: big}, {Rank: 2}}))

	snap := Snapshot{Agents: []Agent{{Rank: big}, {Rank: 7919}}, TotalProposals: 2, AcceptedProposals: 2}
	assert.Equal(t, math.MaxInt, snap.Metrics().TotalRank)
}

func TestAcceptanceRate(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		accepted int
		rate     float64
		ok       bool
	}{
		{"no proposals is undefined", 0, 0, 0, false},
		{"three of four", 4, 3, 75, true},
		{"none accepted", 5, 0, 0, true},
		{"all accepted", 2, 2, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := AcceptanceRate(tt.total, tt.accepted)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.rate, rate, 1e-9)
		})
	}
}

func TestSnapshotMetrics(t *testing.T) {
	r := NewRegistry()

	m := r.Snapshot().Metrics()
	assert.False(t, m.RateDefined)
	assert.Equal(t, RateUnavailable, m.RateText())
	assert.Equal(t, 0, m.TotalRank)

	require.True(t, r.Propose("A", 3).Success)
	require.True(t, r.Propose("B", 7).Success)
	require.True(t, r.Propose("C", 11).Success)
	r.Propose("D", 12)

	m = r.Snapshot().Metrics()
	assert.Equal(t, 3, m.AgentCount)
	assert.Equal(t, 21, m.TotalRank)
	assert.Equal(t, 4, m.TotalProposals)
	assert.Equal(t, 3, m.AcceptedProposals)
	assert.True(t, m.RateDefined)
	assert.Equal(t, "75.0%", m.RateText())
}

func TestRateTextRounding(t *testing.T) {
	m := Metrics{Rate: 200.0 / 3, RateDefined: true}
	assert.Equal(t, "66.7%", m.RateText())

	m = Metrics{Rate: 0, RateDefined: true}
	assert.Equal(t, "0.0%", m.RateText())
}
