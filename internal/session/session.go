// Package session holds the collection workflow: an explicit phase machine
// {Governance, Logging, ThirdParty, Incident, Results} over an answer set
// that grows as phases advance and is only cleared by Restart.
package session

import (
	"errors"
	"fmt"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/model"
)

var (
	// ErrFinished is returned when an input operation runs in the results
	// phase.
	ErrFinished = errors.New("session: assessment already at results")
	// ErrAtStart is returned by Back in the first phase.
	ErrAtStart = errors.New("session: already at first phase")
	// ErrNotFinished is returned by Result before the results phase.
	ErrNotFinished = errors.New("session: assessment not finished")
	// ErrWrongPhase is returned when answers belong to another phase.
	ErrWrongPhase = errors.New("session: answer does not belong to current phase")
)

// Session is one assessment in progress. It is not safe for concurrent use;
// Store serializes access.
type Session struct {
	phase   answers.Phase
	answers answers.Set
}

// New returns a session at the first phase with no answers.
func New() *Session {
	return &Session{phase: answers.PhaseGovernance, answers: answers.New()}
}

// Resume returns a session at phase p holding a.
func Resume(p answers.Phase, a answers.Set) (*Session, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("session: invalid phase %d", int(p))
	}
	return &Session{phase: p, answers: a}, nil
}

// Phase returns the current phase.
func (s *Session) Phase() answers.Phase { return s.phase }

// Answers returns the collected answers.
func (s *Session) Answers() answers.Set { return s.answers }

// Questions returns the questions to ask in the current phase.
func (s *Session) Questions() []answers.Question {
	return answers.QuestionsFor(s.phase, s.answers)
}

// Record merges a into the collected answers. Every answer must belong to
// the current phase. Answers are never dropped: cloud-only answers recorded
// without cloud usage stay in the set and are ignored by the evaluators
// until cloud usage is reported.
func (s *Session) Record(a answers.Set) error {
	if !s.phase.IsInput() {
		return ErrFinished
	}
	for _, id := range a.IDs() {
		q, ok := answers.Lookup(id)
		if !ok || q.Phase != s.phase {
			return fmt.Errorf("%w: %q in phase %s", ErrWrongPhase, id, s.phase)
		}
	}
	s.answers = s.answers.Merge(a)
	return nil
}

// Next advances to the following phase.
func (s *Session) Next() error {
	if s.phase == answers.PhaseResults {
		return ErrFinished
	}
	s.phase++
	return nil
}

// Back returns to the previous phase. Answers are kept.
func (s *Session) Back() error {
	if s.phase == answers.PhaseGovernance {
		return ErrAtStart
	}
	s.phase--
	return nil
}

// Restart clears every answer and returns to the first phase.
func (s *Session) Restart() {
	s.phase = answers.PhaseGovernance
	s.answers = answers.New()
}

// Preview scores the current phase's domain from the answers so far.
func (s *Session) Preview() (model.DomainResult, bool) {
	e, ok := assess.ForPhase(s.phase)
	if !ok {
		return model.DomainResult{}, false
	}
	return e.Evaluate(s.answers), true
}

// Result assesses the collected answers. Only available at results.
func (s *Session) Result() (model.Result, error) {
	if s.phase != answers.PhaseResults {
		return model.Result{}, ErrNotFinished
	}
	return assess.Assess(s.answers), nil
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	ID        string             `json:"id"`
	Phase     answers.Phase      `json:"phase"`
	Title     string             `json:"title"`
	Answers   answers.Set        `json:"answers"`
	Questions []answers.Question `json:"questions"`
}

// Snapshot captures the current state under id.
func (s *Session) Snapshot(id string) Snapshot {
	qs := s.Questions()
	if qs == nil {
		qs = []answers.Question{}
	}
	return Snapshot{
		ID:        id,
		Phase:     s.phase,
		Title:     s.phase.Title(),
		Answers:   s.answers,
		Questions: qs,
	}
}
