package risk_test

import (
	"testing"

	"resilience/internal/risk"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  risk.Tier
	}{
		{0, risk.High},
		{35, risk.High},
		{64, risk.High},
		{65, risk.Medium},
		{84, risk.Medium},
		{85, risk.Low},
		{100, risk.Low},
	}
	for _, tc := range tests {
		if got := risk.Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

// TestClassifyPartition checks that every score in 0..100 falls in exactly
// one tier and that the tiers are monotonic in the score.
func TestClassifyPartition(t *testing.T) {
	rank := map[risk.Tier]int{risk.High: 0, risk.Medium: 1, risk.Low: 2}
	prev := -1
	for s := 0; s <= 100; s++ {
		tier := risk.Classify(s)
		lo, hi := tier.Range()
		if s < lo || s > hi {
			t.Errorf("score %d classified %s outside its range [%d,%d]", s, tier, lo, hi)
		}
		if rank[tier] < prev {
			t.Errorf("classification not monotonic at %d", s)
		}
		prev = rank[tier]
	}
}
