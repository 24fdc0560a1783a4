package feedback

// guidance.go — step-by-step practical advice for the results screen, one
// item per weak answer that has a concrete playbook.

import (
	"sort"

	"resilience/internal/answers"
)

// Advice is one practical guidance item.
type Advice struct {
	Domain   string `json:"domain" yaml:"domain"`
	Area     string `json:"area" yaml:"area"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Text     string `json:"text" yaml:"text"`
	Urgent   bool   `json:"urgent" yaml:"urgent"`
}

type step struct {
	text   string
	urgent bool
}

type area struct {
	domain   string
	name     string
	question string
	// cloud areas are only offered when cloud usage is reported.
	cloud bool
	steps map[string]step
}

var areas = []area{
	{
		domain: "Governance", name: "ICT Risk Framework", question: answers.RiskFramework,
		steps: map[string]step{
			"No framework":         {"IMMEDIATE ACTION: Adopt a standard framework such as ISO 27001 or the NIST Cybersecurity Framework. Start with a gap assessment and document existing ICT procedures. Timeline: 3-6 months.", true},
			"Ad-hoc processes":     {"Formalize existing processes into a documented framework. Run a PDCA (Plan-Do-Check-Act) cycle and schedule annual tests. Timeline: 2-3 months.", false},
			"Partially documented": {"Complete the missing documentation and schedule quarterly validation tests of the framework. Timeline: 1 month.", false},
		},
	},
	{
		domain: "Governance", name: "Board Oversight", question: answers.BoardOversight,
		steps: map[string]step{
			"No oversight":      {"CRITICAL: Start monthly board reporting on ICT risk immediately. Appoint a cybersecurity lead with a direct line to management. Timeline: immediate.", true},
			"Annual review":     {"Move to quarterly reviews. Build an ICT risk dashboard for the board with KRIs (Key Risk Indicators). Timeline: 1 month.", false},
			"Bi-annual reviews": {"Switch to a quarterly cadence with standardized metrics and trend analysis. Timeline: immediate.", false},
		},
	},
	{
		domain: "Governance", name: "Cloud Governance", question: answers.CloudGovernance, cloud: true,
		steps: map[string]step{
			"No specific framework": {"URGENT: Implement a cloud governance framework. Include a service inventory, risk assessment per CSP, DORA-compliant contracts and an exit strategy. Timeline: 2-3 months.", false},
			"Informal processes":    {"Formalize with documented policies: cloud service approval, security baseline, data residency, backup strategy. Timeline: 1 month.", false},
		},
	},
	{
		domain: "Logging", name: "Centralized Logging", question: answers.CentralizedLogging,
		steps: map[string]step{
			"No centralization":      {"CRITICAL: Deploy a SIEM (e.g. Splunk, ELK Stack, Microsoft Sentinel) within 60 days. Start with critical logs (authentication, privileged access, firewall). Budget: EUR 20-50k/year.", true},
			"Partial (some sources)": {"Finish integrating every log source. Priority: critical servers, databases, cloud services, endpoints. Timeline: 30-45 days.", false},
		},
	},
	{
		domain: "Logging", name: "Log Retention", question: answers.LogRetention,
		steps: map[string]step{
			"<6 months":    {"NOT COMPLIANT: Extend retention to at least 18 months IMMEDIATELY. Set up dedicated storage for audit logs. Storage cost: about EUR 500-2000/TB/year.", true},
			"6-12 months":  {"NOT COMPLIANT: Bring retention to 18+ months. Use tiered storage (hot/warm/cold) to control costs. Timeline: 2 weeks.", true},
			"12-18 months": {"Nearly compliant: Extend to 24 months for best practice and a safety margin. Timeline: 1 week.", true},
		},
	},
	{
		domain: "Logging", name: "Log Integrity", question: answers.LogIntegrity,
		steps: map[string]step{
			"No verification":    {"Implement automatic cryptographic hashing (SHA-256) for all logs. Use WORM storage or blockchain for critical logs. Solution: syslog-ng or rsyslog with digital signing. Timeline: 2-3 weeks.", false},
			"Manual spot-checks": {"Automate integrity verification with scheduled scripts. Alert on hash anomalies. Timeline: 1 week.", false},
		},
	},
	{
		domain: "Third-Party", name: "Vendor Inventory", question: answers.VendorInventory,
		steps: map[string]step{
			"No inventory":  {"URGENT: Build a register of ICT providers within 30 days. Template: vendor name, services, criticality, data processed, hosting country. Tool: spreadsheet or GRC platform.", true},
			"Informal list": {"Formalize the inventory with structured fields: SLA, certifications (SOC2, ISO27001), audit rights, exit strategy. Review quarterly. Timeline: 2 weeks.", false},
		},
	},
	{
		domain: "Third-Party", name: "Audit Rights", question: answers.AuditRights,
		steps: map[string]step{
			"Not in contracts":  {"CRITICAL: Renegotiate critical contracts with audit clauses (on-site plus SOC2 report). For new contracts use a standard clause pre-approved by legal. Timeline: 3-6 months.", true},
			"In some contracts": {"Extend audit rights to ALL critical vendors. Priority: cloud providers, payment processors, handlers of sensitive data. Timeline: 2-4 months.", false},
		},
	},
	{
		domain: "Third-Party", name: "Incident SLA", question: answers.IncidentNotificationSLA,
		steps: map[string]step{
			"No SLA":    {"CRITICAL: Negotiate a 24h incident notification SLA in every contract. Template clause: 'Security incidents must be reported within 24 hours of detection'. Timeline: immediate for new contracts, 3-6 months for renegotiation.", true},
			"72+ hours": {"72h is not enough for NIS2. Ask for a 24h maximum, citing the mandatory regulatory requirements. Timeline: 1-3 months.", false},
		},
	},
	{
		domain: "Incident", name: "Incident Response", question: answers.IncidentProcess,
		steps: map[string]step{
			"No formal process":          {"CRITICAL: Write a complete Incident Response Plan (IRP) within 60 days. Include roles, escalation, communication, containment, recovery. Run a tabletop exercise. Template: NIST 800-61.", true},
			"Process exists, not tested": {"Schedule a quarterly tabletop exercise. Simulate realistic scenarios: ransomware, data breach, DDoS. Record lessons learned. Timeline: 30 days to the first test.", false},
		},
	},
	{
		domain: "Incident", name: "24h Reporting", question: answers.Reporting24h,
		steps: map[string]step{
			"No":        {"CRITICAL NIS2: Set up a process for the 24h early warning to authorities. Designate an internal CSIRT, a 24/7 hotline and pre-approved templates. Contact the national CSIRT. Timeline: immediate.", true},
			"Uncertain": {"Test the process with a simulation. Check who notifies whom, with which template, within what time. Document the procedure. Timeline: 2 weeks.", true},
		},
	},
	{
		domain: "Incident", name: "Resilience Testing", question: answers.ResilienceTesting,
		steps: map[string]step{
			"Never":    {"CRITICAL: Schedule resilience tests within 90 days. Start with a disaster recovery test (backup restore), then a penetration test. Budget: EUR 10-30k per full test.", true},
			"Annually": {"Increase to twice a year for DORA compliance. Alternate DR tests with threat-led penetration testing (TLPT). Timeline: plan now.", false},
		},
	},
}

// Guidance returns practical advice for every weak answer in a, urgent
// items first. Within each group items keep questionnaire order.
func Guidance(a answers.Set) []Advice {
	var out []Advice
	for _, ar := range areas {
		if ar.cloud && !a.UsesCloud() {
			continue
		}
		v := a.Text(ar.question)
		s, ok := ar.steps[v]
		if !ok {
			continue
		}
		out = append(out, Advice{
			Domain:   ar.domain,
			Area:     ar.name,
			Question: ar.question,
			Answer:   v,
			Text:     s.text,
			Urgent:   s.urgent,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgent && !out[j].Urgent
	})
	return out
}
