// Package report renders an aggregated assessment as a fixed-layout text
// report, a CSV export and a PDF document. Renderers are pure: the
// generation time comes in through Meta and nothing here scores.
package report

import (
	"fmt"
	"strings"
	"time"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/model"
)

// TimeLayout is the timestamp format used in both outputs.
const TimeLayout = "2006-01-02 15:04 UTC"

// Unknown is printed for a missing sector or scope.
const Unknown = "Unknown"

// Meta is the report header data that is not part of the result.
type Meta struct {
	Generated time.Time
	Sector    string
	Scope     string
}

// MetaFrom builds Meta from the answer set and the generation time.
func MetaFrom(a answers.Set, now time.Time) Meta {
	m := Meta{
		Generated: now,
		Sector:    a.Text(answers.Sector),
		Scope:     a.Text(answers.Scope),
	}
	if m.Sector == "" {
		m.Sector = Unknown
	}
	if m.Scope == "" {
		m.Scope = Unknown
	}
	return m
}

// Timestamp formats the generation time in UTC.
func (m Meta) Timestamp() string {
	return m.Generated.UTC().Format(TimeLayout)
}

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

const disclaimer = `This assessment is a readiness and risk evaluation tool. It does not constitute
legal advice. Organizations should consult legal counsel for compliance strategy.

Tool: EU Digital Resilience Toolkit v1.0
Framework: NIS2 Directive + DORA Regulation (integrated assessment)`

// Text renders the plain-text report. Recommendations carry their
// ReportPriority label.
func Text(res model.Result, meta Meta) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString("EU DIGITAL RESILIENCE ASSESSMENT REPORT\n")
	b.WriteString(heavyRule + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", meta.Timestamp())
	fmt.Fprintf(&b, "Sector: %s\n", meta.Sector)
	fmt.Fprintf(&b, "Regulatory Scope: %s\n", meta.Scope)

	section(&b, "EXECUTIVE SUMMARY")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Risk Score: %d/%d\n", res.Total, model.MaxTotalScore)
	fmt.Fprintf(&b, "Risk Classification: %s\n\n", res.Tier)
	b.WriteString("Domain Breakdown:\n")
	for _, d := range model.Domains {
		fmt.Fprintf(&b, "  - %-27s%d/%d\n", d.Name()+":", res.Score(d), model.MaxDomainScore)
	}

	section(&b, "REGULATORY GAPS IDENTIFIED")
	for _, g := range res.Gaps {
		if len(g.Gaps) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", g.Domain)
		for _, gap := range g.Gaps {
			fmt.Fprintf(&b, "  - %s\n", gap)
		}
	}

	section(&b, fmt.Sprintf("FINDINGS (%d items)", len(res.Findings)))
	for i, f := range res.Findings {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f)
	}

	section(&b, fmt.Sprintf("RECOMMENDATIONS (%d items)", len(res.Recommendations)))
	for _, r := range assess.Prioritize(res.Recommendations, assess.ReportPriority) {
		fmt.Fprintf(&b, "[%s] %s\n", r.Priority, r.Text)
	}

	section(&b, "DISCLAIMER")
	b.WriteString(disclaimer + "\n")
	b.WriteString(heavyRule + "\n")
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + lightRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(lightRule + "\n")
}
