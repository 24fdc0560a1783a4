package assess

import (
	"sort"

	"resilience/internal/answers"
	"resilience/internal/model"
	"resilience/internal/risk"
)

// Assess runs every domain evaluator over a and aggregates the results.
func Assess(a answers.Set) model.Result {
	results := make([]model.DomainResult, 0, len(Evaluators))
	for _, e := range Evaluators {
		results = append(results, e.Evaluate(a))
	}
	return Aggregate(results...)
}

// Aggregate combines domain results into one assessment. Results are put in
// domain order first, so callers may pass them in any order. Every domain
// passed in gets a gap group, empty or not.
func Aggregate(results ...model.DomainResult) model.Result {
	sorted := make([]model.DomainResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Domain < sorted[j].Domain
	})

	out := model.Result{
		Domains:         sorted,
		Findings:        []string{},
		Recommendations: []string{},
		Gaps:            make([]model.GapGroup, 0, len(sorted)),
	}
	for _, dr := range sorted {
		out.Total += dr.Score
		out.Findings = append(out.Findings, dr.Findings...)
		out.Recommendations = append(out.Recommendations, dr.Recommendations...)
		gaps := make([]string, len(dr.Gaps))
		copy(gaps, dr.Gaps)
		out.Gaps = append(out.Gaps, model.GapGroup{Domain: dr.Domain.Name(), Gaps: gaps})
	}
	out.Tier = risk.Classify(out.Total)
	return out
}
