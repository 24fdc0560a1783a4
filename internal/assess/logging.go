package assess

import (
	"fmt"

	"resilience/internal/answers"
	"resilience/internal/model"
)

// Logging scores Logging & Monitoring.
var Logging = Ruleset{
	domain: model.Logging,
	checks: []check{
		{
			name:           "centralized_logging",
			penalty:        6,
			passes:         is(answers.CentralizedLogging, "Yes, SIEM deployed"),
			finding:        text("Logs not centralized in SIEM/log management platform"),
			gap:            "NIS2 Art. 21: Log collection and monitoring",
			recommendation: "Deploy SIEM solution (Splunk, ELK, Sentinel) for centralized log collection and correlation",
		},
		{
			name:    "log_retention",
			penalty: 6,
			passes:  is(answers.LogRetention, "18-24 months", "24+ months"),
			finding: func(a answers.Set) string {
				v := a.Text(answers.LogRetention)
				if v == "" {
					v = "not set"
				}
				return fmt.Sprintf("Log retention (%s) below regulatory minimum (18 months)", v)
			},
			gap:            "NIS2: 18-month minimum retention for audit logs",
			recommendation: "CRITICAL: Extend log retention to minimum 18 months for all security-relevant logs",
		},
		{
			name:           "log_integrity",
			penalty:        4,
			passes:         is(answers.LogIntegrity, "Yes, automated verification"),
			finding:        text("Log integrity not cryptographically verified"),
			gap:            "NIS2/DORA: Log tamper-evidence for audit purposes",
			recommendation: "Implement automated log hashing (SHA-256) with secure hash storage and periodic verification",
		},
		{
			name:           "cloud_logs_integrated",
			penalty:        3,
			applies:        usesCloud,
			passes:         is(answers.CloudLogsIntegrated, "Yes, all sources"),
			finding:        text("Cloud platform logs not fully integrated into central monitoring"),
			recommendation: "Integrate all cloud provider logs (AWS CloudTrail, Azure Monitor, GCP Cloud Logging) into SIEM",
		},
		{
			name:           "realtime_monitoring",
			penalty:        2,
			passes:         is(answers.RealtimeMonitoring, "Yes, 24/7 SOC"),
			finding:        text("No 24/7 security monitoring capability"),
			recommendation: "Establish 24/7 SOC or engage managed detection and response (MDR) provider",
		},
	},
}
