// Package feedback provides per-answer advisory feedback for the collector:
// a status, a one-line message and remediation advice for each known
// (question, answer) pair.
//
// Feedback is presentation only. The scoring packages never import it and
// nothing here reads an assessment result.
package feedback

import "resilience/internal/answers"

// Status is the qualitative rating of a single answer.
type Status string

const (
	Optimal          Status = "optimal"
	Acceptable       Status = "acceptable"
	NeedsImprovement Status = "needs_improvement"
	Critical         Status = "critical"
	Info             Status = "info"
)

// SeverityKind is the presentation class a status renders as.
type SeverityKind string

const (
	Success SeverityKind = "success"
	Warning SeverityKind = "warning"
	Error   SeverityKind = "error"
	Notice  SeverityKind = "info"
)

// Severity is how a status is presented. Level separates the two error
// grades: 1 for needs_improvement, 2 for critical, 0 otherwise.
type Severity struct {
	Kind  SeverityKind `json:"kind" yaml:"kind"`
	Level int          `json:"level,omitempty" yaml:"level,omitempty"`
}

// Severity returns the fixed presentation severity of s.
func (s Status) Severity() Severity {
	switch s {
	case Optimal:
		return Severity{Kind: Success}
	case Acceptable:
		return Severity{Kind: Warning}
	case NeedsImprovement:
		return Severity{Kind: Error, Level: 1}
	case Critical:
		return Severity{Kind: Error, Level: 2}
	default:
		return Severity{Kind: Notice}
	}
}

// Record is the feedback for one answer.
type Record struct {
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
	Advice  string `json:"advice" yaml:"advice"`
}

// Default is returned for any pair the table does not know.
var Default = Record{Status: Info, Message: "Answer recorded.", Advice: ""}

type key struct {
	question string
	answer   string
}

var index = func() map[key]Record {
	m := make(map[key]Record, 64)
	for q, answers := range table {
		for a, r := range answers {
			m[key{q, a}] = r
		}
	}
	return m
}()

// Lookup returns the feedback for answering question with answer. Unknown
// pairs yield Default.
func Lookup(question, answer string) Record {
	if r, ok := index[key{question, answer}]; ok {
		return r
	}
	return Default
}

// Known reports whether the table has an entry for the pair.
func Known(question, answer string) bool {
	_, ok := index[key{question, answer}]
	return ok
}

// ---------------------------------------------------------------------------
// Quick hint
// ---------------------------------------------------------------------------

// HintLevel is the coarse per-answer rating shown right under a question.
type HintLevel string

const (
	HintOptimal    HintLevel = "optimal"
	HintAcceptable HintLevel = "acceptable"
	HintGap        HintLevel = "gap"
	HintNone       HintLevel = ""
)

// Hint rates value against the optimal and good lists of q. An empty value,
// or a question with no optimal list, has no hint.
func Hint(q answers.Question, value string) (HintLevel, string) {
	if value == "" || len(q.Optimal) == 0 {
		return HintNone, ""
	}
	for _, v := range q.Optimal {
		if v == value {
			return HintOptimal, "Optimal answer for NIS2/DORA compliance"
		}
	}
	for _, v := range q.Good {
		if v == value {
			return HintAcceptable, "Acceptable answer, consider improvements"
		}
	}
	return HintGap, "Gap identified, see recommendations in the results"
}
