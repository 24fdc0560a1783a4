package answers

import "fmt"

// Phase is one step of the collection flow. The four input phases each map
// to one assessment domain; PhaseResults ends the flow.
type Phase int

const (
	PhaseGovernance Phase = iota
	PhaseLogging
	PhaseThirdParty
	PhaseIncident
	PhaseResults
)

// Phases lists every phase in flow order.
var Phases = []Phase{PhaseGovernance, PhaseLogging, PhaseThirdParty, PhaseIncident, PhaseResults}

var phaseTitles = [...]string{
	"Governance & Scope",
	"Logging & Monitoring",
	"ICT Third-Party Risk",
	"Incident & Resilience",
	"Results & Report",
}

var phaseSlugs = [...]string{"governance", "logging", "third_party", "incident", "results"}

// Title returns the human-readable phase title.
func (p Phase) Title() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseTitles[p]
}

// String returns the phase slug used in JSON and logs.
func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("phase-%d", int(p))
	}
	return phaseSlugs[p]
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p >= PhaseGovernance && p <= PhaseResults
}

// IsInput reports whether p collects answers.
func (p Phase) IsInput() bool {
	return p >= PhaseGovernance && p < PhaseResults
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, s := range phaseSlugs {
		if s == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(b))
}
