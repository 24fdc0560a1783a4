package assess

import "resilience/internal/model"

// PriorityFunc assigns a priority to a 1-based recommendation rank.
type PriorityFunc func(rank int) model.Priority

// ReportPriority is used by the text report and CSV export: ranks 1-3 are
// HIGH, 4-6 MEDIUM, the rest LOW.
func ReportPriority(rank int) model.Priority {
	switch {
	case rank <= 3:
		return model.PriorityHigh
	case rank <= 6:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// ViewPriority is used by the interactive recommendation views (wizard and
// HTTP): ranks 1-3 are HIGH, 4-8 MEDIUM, the rest LOW.
//
// The two threshold sets differ on purpose and are part of each output's
// contract; do not fold one into the other.
func ViewPriority(rank int) model.Priority {
	switch {
	case rank <= 3:
		return model.PriorityHigh
	case rank <= 8:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// Prioritize ranks recs in order using fn.
func Prioritize(recs []string, fn PriorityFunc) []model.Ranked {
	out := make([]model.Ranked, len(recs))
	for i, r := range recs {
		out[i] = model.Ranked{Rank: i + 1, Priority: fn(i + 1), Text: r}
	}
	return out
}
