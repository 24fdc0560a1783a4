package model

// model.go — assessment result types shared by the evaluators, the
// aggregator, the renderers and the presentation layers.
//
// Everything here is a plain value: results carry no back-references and
// no shared mutable state, so callers own what they receive.

import (
	"fmt"

	"resilience/internal/risk"
)

// MaxDomainScore is the score of a domain with no failed checks.
const MaxDomainScore = 25

// MaxTotalScore is the best achievable total across all domains.
const MaxTotalScore = MaxDomainScore * 4

// ---------------------------------------------------------------------------
// Domains
// ---------------------------------------------------------------------------

// Domain identifies one of the four assessment categories.
type Domain int

const (
	Governance Domain = iota
	Logging
	ThirdParty
	Incident
)

// Domains lists every domain in aggregation order.
var Domains = []Domain{Governance, Logging, ThirdParty, Incident}

var domainNames = [...]string{
	"Governance & Scope",
	"Logging & Monitoring",
	"ICT Third-Party Risk",
	"Incident & Resilience",
}

var domainShort = [...]string{"Governance", "Logging", "Third-Party", "Incident"}

// Name returns the display name used in reports and gap groupings.
func (d Domain) Name() string {
	if d < Governance || d > Incident {
		return fmt.Sprintf("Domain(%d)", int(d))
	}
	return domainNames[d]
}

// Short returns the compact label used in metric names and guidance.
func (d Domain) Short() string {
	if d < Governance || d > Incident {
		return fmt.Sprintf("domain-%d", int(d))
	}
	return domainShort[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.Short()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Domain) UnmarshalText(b []byte) error {
	for i, s := range domainShort {
		if s == string(b) {
			*d = Domain(i)
			return nil
		}
	}
	return fmt.Errorf("unknown domain %q", string(b))
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

// DomainResult is the outcome of evaluating one domain. Findings and
// Recommendations are in check order; Score stays within [0, MaxDomainScore].
type DomainResult struct {
	Domain          Domain   `json:"domain" yaml:"domain"`
	Score           int      `json:"score" yaml:"score"`
	Findings        []string `json:"findings" yaml:"findings"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	Gaps            []string `json:"gaps" yaml:"gaps"`
}

// GapGroup holds the regulatory gaps raised by one domain. Groups are
// present for every domain even when Gaps is empty.
type GapGroup struct {
	Domain string   `json:"domain" yaml:"domain"`
	Gaps   []string `json:"gaps" yaml:"gaps"`
}

// Result is the aggregated assessment.
type Result struct {
	Domains         []DomainResult `json:"domains" yaml:"domains"`
	Total           int            `json:"total_score" yaml:"total_score"`
	Tier            risk.Tier      `json:"risk_level" yaml:"risk_level"`
	Findings        []string       `json:"findings" yaml:"findings"`
	Recommendations []string       `json:"recommendations" yaml:"recommendations"`
	Gaps            []GapGroup     `json:"regulatory_gaps" yaml:"regulatory_gaps"`
}

// Score returns the score of domain d, or 0 if d was not evaluated.
func (r Result) Score(d Domain) int {
	for _, dr := range r.Domains {
		if dr.Domain == d {
			return dr.Score
		}
	}
	return 0
}

// GapCount returns the number of regulatory gaps across all domains.
func (r Result) GapCount() int {
	n := 0
	for _, g := range r.Gaps {
		n += len(g.Gaps)
	}
	return n
}

// ---------------------------------------------------------------------------
// Priorities
// ---------------------------------------------------------------------------

// Priority is the urgency assigned to a recommendation by its rank.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Ranked is a recommendation with its 1-based rank and priority.
type Ranked struct {
	Rank     int      `json:"rank" yaml:"rank"`
	Priority Priority `json:"priority" yaml:"priority"`
	Text     string   `json:"text" yaml:"text"`
}
