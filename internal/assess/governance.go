package assess

import (
	"fmt"

	"resilience/internal/answers"
	"resilience/internal/model"
)

const (
	frameworkMature  = "Yes, documented and tested"
	frameworkPartial = "Partially documented"
)

// Governance scores Governance & Scope.
var Governance = Ruleset{
	domain: model.Governance,
	checks: []check{
		{
			name:           "sector_classification",
			penalty:        3,
			passes:         not(is(answers.Sector, "Unknown", "Not applicable")),
			gap:            "NIS2/DORA: Sector classification unclear",
			recommendation: "Determine if organization qualifies as Essential/Important Entity (NIS2) or Financial Entity (DORA)",
		},
		{
			name:           "risk_framework_missing",
			penalty:        8,
			applies:        not(is(answers.RiskFramework, frameworkPartial)),
			passes:         is(answers.RiskFramework, frameworkMature),
			finding:        text("No mature ICT risk management framework in place"),
			gap:            "NIS2 Art. 21 / DORA Art. 6: ICT risk management framework missing",
			recommendation: "Establish documented ICT risk management framework covering identification, protection, detection, response, recovery",
		},
		{
			name:           "risk_framework_partial",
			penalty:        4,
			applies:        is(answers.RiskFramework, frameworkPartial),
			passes:         func(answers.Set) bool { return false },
			finding:        text("ICT risk framework exists but not fully operationalized"),
			gap:            "NIS2 Art. 21 / DORA Art. 6: ICT risk management framework incomplete",
			recommendation: "Complete ICT risk framework documentation and conduct annual testing/validation",
		},
		{
			name:           "board_oversight",
			penalty:        4,
			passes:         is(answers.BoardOversight, "Yes, quarterly reviews"),
			finding:        text("Insufficient board-level oversight of ICT and cyber risks"),
			gap:            "NIS2 Art. 20 / DORA Art. 5: Management body accountability",
			recommendation: "Establish quarterly board reporting on ICT risks, incidents, and resilience metrics",
		},
		{
			name:    "cloud_governance",
			penalty: 3,
			applies: func(a answers.Set) bool { return len(a.CloudServices()) >= 2 },
			passes:  is(answers.CloudGovernance, "Yes, formalized"),
			finding: func(a answers.Set) string {
				return fmt.Sprintf("Significant cloud usage (%d service types) without formalized governance", len(a.CloudServices()))
			},
			gap:            "DORA Art. 28: Cloud service provider governance",
			recommendation: "Implement cloud governance framework: inventory, risk assessment, contractual controls, exit strategies",
		},
	},
}
