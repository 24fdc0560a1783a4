package answers

// catalog.go — the questionnaire: every question the collector asks, in the
// order it asks them, with the options it offers.
//
// The option strings are the exact literals the evaluators compare against.
// Optimal/Good feed the quick per-answer hint only; scoring never reads them.

import "fmt"

// Question ids.
const (
	Sector                   = "sector"
	Scope                    = "scope"
	RiskFramework            = "risk_framework"
	BoardOversight           = "board_oversight"
	CloudUsage               = "cloud_usage"
	CloudGovernance          = "cloud_governance"
	CentralizedLogging       = "centralized_logging"
	LogRetention             = "log_retention"
	LogIntegrity             = "log_integrity"
	CloudLogsIntegrated      = "cloud_logs_integrated"
	RealtimeMonitoring       = "realtime_monitoring"
	VendorInventory          = "vendor_inventory"
	AuditRights              = "audit_rights"
	IncidentNotificationSLA  = "incident_notification_sla"
	CloudExitPlan            = "cloud_exit_plan"
	SupplyChainMonitoring    = "supply_chain_monitoring"
	IncidentProcess          = "incident_process"
	Reporting24h             = "24h_reporting"
	ResilienceTesting        = "resilience_testing"
	RTORPODefined            = "rto_rpo_defined"
	CloudIncidentIntegration = "cloud_incident_integration"
)

// Kind distinguishes single-choice from multi-select questions.
type Kind int

const (
	Single Kind = iota
	Multi
)

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k == Multi {
		return []byte("multi"), nil
	}
	return []byte("single"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "multi":
		*k = Multi
	case "single":
		*k = Single
	default:
		return fmt.Errorf("unknown question kind %q", string(b))
	}
	return nil
}

// Question describes one collector prompt.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Phase   Phase    `json:"phase" yaml:"phase"`
	Label   string   `json:"label" yaml:"label"`
	Options []string `json:"options" yaml:"options"`
	// Default is the option pre-selected by the collector ("" = first).
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	// CloudOnly questions are asked only when cloud usage is reported.
	CloudOnly bool     `json:"cloud_only,omitempty" yaml:"cloud_only,omitempty"`
	Optimal   []string `json:"optimal,omitempty" yaml:"optimal,omitempty"`
	Good      []string `json:"good,omitempty" yaml:"good,omitempty"`
}

// DefaultIndex returns the index of the pre-selected option.
func (q Question) DefaultIndex() int {
	for i, o := range q.Options {
		if o == q.Default {
			return i
		}
	}
	return 0
}

var catalog = []Question{
	// Governance & Scope
	{
		ID:    Sector,
		Phase: PhaseGovernance,
		Label: "Organization sector",
		Options: []string{
			"Financial services", "Energy", "Transport", "Digital infrastructure",
			"Healthcare", "Public administration", "Manufacturing", "Other/Mixed",
			"Unknown", "Not applicable",
		},
	},
	{
		ID:    Scope,
		Phase: PhaseGovernance,
		Label: "Regulatory scope (select all that apply)",
		Options: []string{
			"NIS2 Essential Entity", "NIS2 Important Entity", "DORA Financial Entity",
			"Not directly in scope",
		},
		Kind: Multi,
	},
	{
		ID:    RiskFramework,
		Phase: PhaseGovernance,
		Label: "ICT risk management framework maturity",
		Options: []string{
			"No framework", "Ad-hoc processes", "Partially documented",
			"Yes, documented and tested",
		},
		Default: "Partially documented",
		Optimal: []string{"Yes, documented and tested"},
		Good:    []string{"Partially documented"},
	},
	{
		ID:      BoardOversight,
		Phase:   PhaseGovernance,
		Label:   "Board-level oversight of ICT/cyber risks",
		Options: []string{"No oversight", "Annual review", "Bi-annual reviews", "Yes, quarterly reviews"},
		Default: "Annual review",
		Optimal: []string{"Yes, quarterly reviews"},
		Good:    []string{"Bi-annual reviews"},
	},
	{
		ID:    CloudUsage,
		Phase: PhaseGovernance,
		Label: "Cloud services in use",
		Options: []string{
			"IaaS (AWS, Azure, GCP)", "SaaS (M365, Salesforce, etc.)", "PaaS",
			"Managed security services", NoCloud,
		},
		Kind: Multi,
	},
	{
		ID:        CloudGovernance,
		Phase:     PhaseGovernance,
		Label:     "Cloud governance framework",
		Options:   []string{"No specific framework", "Informal processes", "Yes, formalized"},
		CloudOnly: true,
		Optimal:   []string{"Yes, formalized"},
	},

	// Logging & Monitoring
	{
		ID:      CentralizedLogging,
		Phase:   PhaseLogging,
		Label:   "Centralized log collection",
		Options: []string{"No centralization", "Partial (some sources)", "Yes, SIEM deployed"},
		Optimal: []string{"Yes, SIEM deployed"},
	},
	{
		ID:      LogRetention,
		Phase:   PhaseLogging,
		Label:   "Log retention period",
		Options: []string{"<6 months", "6-12 months", "12-18 months", "18-24 months", "24+ months"},
		Optimal: []string{"18-24 months", "24+ months"},
		Good:    []string{"12-18 months"},
	},
	{
		ID:      LogIntegrity,
		Phase:   PhaseLogging,
		Label:   "Log integrity verification (hashing, WORM)",
		Options: []string{"No verification", "Manual spot-checks", "Yes, automated verification"},
		Optimal: []string{"Yes, automated verification"},
	},
	{
		ID:        CloudLogsIntegrated,
		Phase:     PhaseLogging,
		Label:     "Cloud platform logs integrated into SIEM",
		Options:   []string{"No", "Partially", "Yes, all sources"},
		CloudOnly: true,
		Optimal:   []string{"Yes, all sources"},
	},
	{
		ID:      RealtimeMonitoring,
		Phase:   PhaseLogging,
		Label:   "Real-time security monitoring",
		Options: []string{"No active monitoring", "Business hours only", "Yes, 24/7 SOC"},
		Optimal: []string{"Yes, 24/7 SOC"},
	},

	// ICT Third-Party Risk
	{
		ID:      VendorInventory,
		Phase:   PhaseThirdParty,
		Label:   "ICT third-party provider inventory",
		Options: []string{"No inventory", "Informal list", "Yes, complete and current"},
		Optimal: []string{"Yes, complete and current"},
	},
	{
		ID:      AuditRights,
		Phase:   PhaseThirdParty,
		Label:   "Contractual audit and access rights",
		Options: []string{"Not in contracts", "In some contracts", "Yes, in all critical contracts"},
		Optimal: []string{"Yes, in all critical contracts"},
	},
	{
		ID:      IncidentNotificationSLA,
		Phase:   PhaseThirdParty,
		Label:   "Vendor incident notification SLA",
		Options: []string{"No SLA", "72+ hours", "24 hours", "12 hours"},
		Optimal: []string{"24 hours", "12 hours"},
	},
	{
		ID:        CloudExitPlan,
		Phase:     PhaseThirdParty,
		Label:     "Cloud exit/portability strategy",
		Options:   []string{"No exit plan", "Documented but not tested", "Yes, tested annually"},
		CloudOnly: true,
		Optimal:   []string{"Yes, tested annually"},
	},
	{
		ID:      SupplyChainMonitoring,
		Phase:   PhaseThirdParty,
		Label:   "Continuous third-party risk monitoring",
		Options: []string{"No monitoring", "Annual assessments", "Yes, continuous assessment"},
		Optimal: []string{"Yes, continuous assessment"},
	},

	// Incident & Resilience
	{
		ID:      IncidentProcess,
		Phase:   PhaseIncident,
		Label:   "Incident response process",
		Options: []string{"No formal process", "Process exists, not tested", "Yes, documented and tested"},
		Optimal: []string{"Yes, documented and tested"},
	},
	{
		ID:      Reporting24h,
		Phase:   PhaseIncident,
		Label:   "Capability to report incidents within 24 hours",
		Options: []string{"No", "Uncertain", "Yes, process established"},
		Optimal: []string{"Yes, process established"},
	},
	{
		ID:      ResilienceTesting,
		Phase:   PhaseIncident,
		Label:   "Resilience testing frequency",
		Options: []string{"Never", "Annually", "Bi-annually", "Quarterly"},
		Optimal: []string{"Bi-annually", "Quarterly"},
		Good:    []string{"Annually"},
	},
	{
		ID:      RTORPODefined,
		Phase:   PhaseIncident,
		Label:   "RTO/RPO defined for critical systems",
		Options: []string{"No", "For some systems", "Yes, for all critical systems"},
		Optimal: []string{"Yes, for all critical systems"},
	},
	{
		ID:        CloudIncidentIntegration,
		Phase:     PhaseIncident,
		Label:     "Cloud provider incidents integrated into IR process",
		Options:   []string{"No", "Yes"},
		CloudOnly: true,
		Optimal:   []string{"Yes"},
	},
}

var byID = func() map[string]Question {
	m := make(map[string]Question, len(catalog))
	for _, q := range catalog {
		m[q.ID] = q
	}
	return m
}()

// Catalog returns every question in collector order.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// QuestionsFor returns the questions of phase p that apply given the
// answers collected so far. Cloud-only questions are dropped when no cloud
// usage is reported; cloud_governance additionally needs one cloud service
// to be selected, which is the same gate.
func QuestionsFor(p Phase, collected Set) []Question {
	var out []Question
	for _, q := range catalog {
		if q.Phase != p {
			continue
		}
		if q.CloudOnly && !collected.UsesCloud() {
			continue
		}
		out = append(out, q)
	}
	return out
}

// NotAnswered is shown for questions without an answer in reviews.
const NotAnswered = "N/A"

// ReviewItem is one line of the answer review.
type ReviewItem struct {
	ID    string `json:"id" yaml:"id"`
	Phase Phase  `json:"phase" yaml:"phase"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Review lists every catalog question with its answer in s, in collector
// order. Unanswered questions show NotAnswered.
func Review(s Set) []ReviewItem {
	out := make([]ReviewItem, 0, len(catalog))
	for _, q := range catalog {
		v := s.Text(q.ID)
		if v == "" {
			v = NotAnswered
		}
		out = append(out, ReviewItem{ID: q.ID, Phase: q.Phase, Label: q.Label, Value: v})
	}
	return out
}
