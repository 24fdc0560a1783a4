package assess

import (
	"resilience/internal/answers"
	"resilience/internal/model"
)

// Incident scores Incident & Resilience.
var Incident = Ruleset{
	domain: model.Incident,
	checks: []check{
		{
			name:           "incident_process",
			penalty:        6,
			passes:         is(answers.IncidentProcess, "Yes, documented and tested"),
			finding:        text("Incident response process not mature"),
			gap:            "NIS2 Art. 23: Incident handling and reporting",
			recommendation: "Establish documented incident response plan with quarterly tabletop exercises",
		},
		{
			name:           "24h_reporting",
			penalty:        6,
			passes:         is(answers.Reporting24h, "Yes, process established"),
			finding:        text("Cannot meet 24-hour initial incident notification requirement"),
			gap:            "NIS2 Art. 23: 24-hour early warning, 72-hour notification deadlines",
			recommendation: "CRITICAL: Establish 24/7 incident detection and 24-hour reporting capability to authorities",
		},
		{
			name:           "resilience_testing",
			penalty:        4,
			passes:         is(answers.ResilienceTesting, "Quarterly", "Bi-annually"),
			finding:        text("Insufficient resilience and recovery testing frequency"),
			gap:            "DORA Art. 24: ICT resilience testing",
			recommendation: "Conduct resilience testing at least bi-annually: disaster recovery, incident response, threat-led penetration testing (TLPT)",
		},
		{
			name:           "rto_rpo_defined",
			penalty:        2,
			passes:         is(answers.RTORPODefined, "Yes, for all critical systems"),
			finding:        text("Recovery time/point objectives not defined for all critical systems"),
			recommendation: "Define and document RTO/RPO for all critical ICT systems and applications",
		},
		{
			name:           "cloud_incident_integration",
			penalty:        2,
			applies:        usesCloud,
			passes:         is(answers.CloudIncidentIntegration, "Yes"),
			finding:        text("Cloud provider incidents not integrated into organizational incident response"),
			recommendation: "Integrate cloud provider incident notifications into organizational incident management workflow",
		},
	},
}
