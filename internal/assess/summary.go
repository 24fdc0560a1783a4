package assess

// summary.go — presentation statistics derived from an aggregated result.
// Nothing here feeds back into scoring.

import (
	"resilience/internal/model"
)

// Band is a coarse traffic-light rating.
type Band string

const (
	BandGreen  Band = "green"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

// PreviewBand rates a single domain score while the assessment is still in
// progress: 20 and above is green, 15 and above yellow, otherwise red.
func PreviewBand(score int) Band {
	switch {
	case score >= 20:
		return BandGreen
	case score >= 15:
		return BandYellow
	default:
		return BandRed
	}
}

// PercentBand rates a percentage using the risk tier floors.
func PercentBand(pct int) Band {
	switch {
	case pct >= 85:
		return BandGreen
	case pct >= 65:
		return BandYellow
	default:
		return BandRed
	}
}

// DomainSummary is the per-domain line of a Summary.
type DomainSummary struct {
	Domain  model.Domain `json:"domain" yaml:"domain"`
	Name    string       `json:"name" yaml:"name"`
	Score   int          `json:"score" yaml:"score"`
	Percent int          `json:"percent" yaml:"percent"`
	Band    Band         `json:"band" yaml:"band"`
}

// Summary holds the headline figures shown on the results screen.
type Summary struct {
	Gaps          int             `json:"gaps" yaml:"gaps"`
	Findings      int             `json:"findings" yaml:"findings"`
	HighPriority  int             `json:"high_priority" yaml:"high_priority"`
	Actions       int             `json:"actions" yaml:"actions"`
	CompliancePct int             `json:"compliance_pct" yaml:"compliance_pct"`
	Domains       []DomainSummary `json:"domains" yaml:"domains"`
}

// Summarize computes the Summary of res. High-priority recommendations
// are counted with ViewPriority.
func Summarize(res model.Result) Summary {
	s := Summary{
		Gaps:          res.GapCount(),
		Findings:      len(res.Findings),
		Actions:       len(res.Recommendations),
		CompliancePct: res.Total * 100 / model.MaxTotalScore,
		Domains:       make([]DomainSummary, 0, len(res.Domains)),
	}
	for _, r := range Prioritize(res.Recommendations, ViewPriority) {
		if r.Priority == model.PriorityHigh {
			s.HighPriority++
		}
	}
	for _, dr := range res.Domains {
		pct := dr.Score * 100 / model.MaxDomainScore
		s.Domains = append(s.Domains, DomainSummary{
			Domain:  dr.Domain,
			Name:    dr.Domain.Name(),
			Score:   dr.Score,
			Percent: pct,
			Band:    PercentBand(pct),
		})
	}
	return s
}
