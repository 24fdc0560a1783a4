package assess

import (
	"resilience/internal/answers"
	"resilience/internal/model"
)

// ThirdParty scores ICT Third-Party Risk.
var ThirdParty = Ruleset{
	domain: model.ThirdParty,
	checks: []check{
		{
			name:           "vendor_inventory",
			penalty:        5,
			passes:         is(answers.VendorInventory, "Yes, complete and current"),
			finding:        text("ICT third-party inventory incomplete or outdated"),
			gap:            "DORA Art. 28: Register of ICT third-party providers",
			recommendation: "Maintain current register of all ICT third-party providers with criticality classification",
		},
		{
			name:           "audit_rights",
			penalty:        5,
			passes:         is(answers.AuditRights, "Yes, in all critical contracts"),
			finding:        text("Right-to-audit clauses missing in critical vendor contracts"),
			gap:            "DORA Art. 30: Contractual audit and access rights",
			recommendation: "Negotiate right-to-audit, security testing rights, and access to SOC 2/ISO certifications in all critical contracts",
		},
		{
			name:           "incident_notification_sla",
			penalty:        4,
			passes:         is(answers.IncidentNotificationSLA, "24 hours", "12 hours"),
			finding:        text("Vendor incident notification SLAs inadequate or undefined"),
			gap:            "DORA Art. 19: Incident reporting by ICT providers",
			recommendation: "Require 24-hour notification for security incidents in all critical vendor contracts",
		},
		{
			name:           "cloud_exit_plan",
			penalty:        4,
			applies:        usesCloud,
			passes:         is(answers.CloudExitPlan, "Yes, tested annually"),
			finding:        text("Cloud exit/portability strategies not tested"),
			gap:            "DORA Art. 28: Exit strategies for critical cloud providers",
			recommendation: "Develop and test annual cloud exit plans: data portability, alternative CSPs, 90-day transition timeline",
		},
		{
			name:           "supply_chain_monitoring",
			penalty:        3,
			passes:         is(answers.SupplyChainMonitoring, "Yes, continuous assessment"),
			finding:        text("No continuous monitoring of third-party security posture"),
			recommendation: "Deploy third-party risk monitoring platform (BitSight, SecurityScorecard, Prevalent) for continuous assessment",
		},
	},
}
