// Package assess is the scoring core: four domain evaluators and the
// aggregator that combines their results.
//
// Every evaluator is a fixed, ordered list of checks. A check that fails
// subtracts its penalty and emits its finding, recommendation and gap in
// that order; emission order matters because recommendation priority is
// assigned by rank. Evaluators are total over any answer set: a missing or
// unrecognized answer fails the check, it never errors.
package assess

import (
	"resilience/internal/answers"
	"resilience/internal/model"
)

// Evaluator scores one domain.
type Evaluator interface {
	// Domain returns the domain this evaluator scores.
	Domain() model.Domain

	// Evaluate scores the answer set. It has no side effects.
	Evaluate(a answers.Set) model.DomainResult
}

// check is one rule of a domain ruleset.
type check struct {
	name    string
	penalty int
	// applies guards conditional checks; nil means always evaluated. When
	// it returns false the check is skipped with no score change and no
	// output.
	applies func(answers.Set) bool
	passes  func(answers.Set) bool
	// finding builds the finding text; nil means no finding.
	finding        func(answers.Set) string
	recommendation string
	gap            string
}

// Ruleset is an Evaluator backed by an ordered check list.
type Ruleset struct {
	domain model.Domain
	checks []check
}

// Domain implements Evaluator.
func (r Ruleset) Domain() model.Domain { return r.domain }

// Checks returns the check names in evaluation order.
func (r Ruleset) Checks() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.name
	}
	return names
}

// Evaluate implements Evaluator.
func (r Ruleset) Evaluate(a answers.Set) model.DomainResult {
	res := model.DomainResult{
		Domain:          r.domain,
		Score:           model.MaxDomainScore,
		Findings:        []string{},
		Recommendations: []string{},
		Gaps:            []string{},
	}
	for _, c := range r.checks {
		if c.applies != nil && !c.applies(a) {
			continue
		}
		if c.passes(a) {
			continue
		}
		res.Score -= c.penalty
		if c.finding != nil {
			res.Findings = append(res.Findings, c.finding(a))
		}
		if c.recommendation != "" {
			res.Recommendations = append(res.Recommendations, c.recommendation)
		}
		if c.gap != "" {
			res.Gaps = append(res.Gaps, c.gap)
		}
	}
	// Penalties never sum past the domain maximum today; the floor holds
	// whatever the weights become.
	if res.Score < 0 {
		res.Score = 0
	}
	return res
}

// Evaluators lists the domain evaluators in aggregation order.
var Evaluators = []Evaluator{Governance, Logging, ThirdParty, Incident}

// ForDomain returns the evaluator of domain d.
func ForDomain(d model.Domain) (Evaluator, bool) {
	for _, e := range Evaluators {
		if e.Domain() == d {
			return e, true
		}
	}
	return nil, false
}

// ForPhase returns the evaluator of the domain collected in phase p.
func ForPhase(p answers.Phase) (Evaluator, bool) {
	if !p.IsInput() {
		return nil, false
	}
	return ForDomain(model.Domain(p))
}

// ---------------------------------------------------------------------------
// Predicate helpers
// ---------------------------------------------------------------------------

// is passes when the answer to id equals one of the acceptable values.
func is(id string, acceptable ...string) func(answers.Set) bool {
	return func(a answers.Set) bool {
		v := a.Text(id)
		for _, ok := range acceptable {
			if v == ok {
				return true
			}
		}
		return false
	}
}

// not negates a predicate.
func not(p func(answers.Set) bool) func(answers.Set) bool {
	return func(a answers.Set) bool { return !p(a) }
}

// text returns a constant finding builder.
func text(s string) func(answers.Set) string {
	return func(answers.Set) string { return s }
}

// usesCloud guards checks that only apply when cloud usage is reported.
func usesCloud(a answers.Set) bool {
	return a.UsesCloud()
}
