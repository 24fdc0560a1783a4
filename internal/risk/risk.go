// Package risk classifies a total assessment score into a risk tier.
package risk

// Tier is the risk classification derived from the total score.
type Tier string

const (
	Low    Tier = "LOW"
	Medium Tier = "MEDIUM"
	High   Tier = "HIGH"
)

// Lower bounds (inclusive) of the LOW and MEDIUM tiers. Part of the public
// report contract.
const (
	LowFloor    = 85
	MediumFloor = 65
)

// Classify maps a total score to its tier: LOW at 85 and above, MEDIUM from
// 65 to 84, HIGH below 65.
func Classify(score int) Tier {
	switch {
	case score >= LowFloor:
		return Low
	case score >= MediumFloor:
		return Medium
	default:
		return High
	}
}

// Range returns the inclusive score range of t on a 0..100 scale.
func (t Tier) Range() (lo, hi int) {
	switch t {
	case Low:
		return LowFloor, 100
	case Medium:
		return MediumFloor, LowFloor - 1
	default:
		return 0, MediumFloor - 1
	}
}
