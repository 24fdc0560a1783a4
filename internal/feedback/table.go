package feedback

// table.go — the feedback table, keyed by question id then answer.

var table = map[string]map[string]Record{
	// Governance & Scope
	"risk_framework": {
		"Yes, documented and tested": {
			Optimal,
			"Excellent! ICT risk framework is mature and operational.",
			"Keep the documentation current and run annual tests.",
		},
		"Partially documented": {
			Acceptable,
			"Framework exists but is not fully operational.",
			"ACTION REQUIRED: Complete the framework documentation and define processes for identification, protection, detection, response and recovery. Schedule annual framework tests.",
		},
		"Ad-hoc processes": {
			NeedsImprovement,
			"ICT risk management is unstructured. Critical regulatory gap!",
			"HIGH PRIORITY: Implement a formal ICT risk framework based on ISO 27001 or NIST CSF. Document policies, procedures and responsibilities. Timeline: 60-90 days.",
		},
		"No framework": {
			Critical,
			"CRITICAL! No ICT risk framework at all. Breach of NIS2 Art. 21 and DORA Art. 6.",
			"URGENT: Start an ICT risk framework implementation project now. Involve management, define governance, identify critical assets, assess risks. Suggested budget: external consultancy plus tooling. Timeline: 90-120 days.",
		},
	},
	"board_oversight": {
		"Yes, quarterly reviews": {
			Optimal,
			"Great! Board oversight matches best practice.",
			"Keep quarterly reporting with cyber KPIs, resilience metrics and incident trends.",
		},
		"Bi-annual reviews": {
			Acceptable,
			"Oversight is in place but below best-practice frequency.",
			"IMPROVEMENT: Move board reporting to quarterly. Include the risk dashboard, significant incidents, cyber investments and compliance status.",
		},
		"Annual review": {
			NeedsImprovement,
			"Insufficient frequency. Not compliant with NIS2 Art. 20.",
			"ACTION REQUIRED: Formalize quarterly board reporting. Prepare a template covering threat landscape, critical vulnerabilities, security KPIs and investment roadmap. Bring the CISO into board meetings.",
		},
		"No oversight": {
			Critical,
			"CRITICAL! No board accountability. Direct breach of NIS2/DORA.",
			"URGENT: Establish board governance now. Actions: 1) Appoint a board member responsible for cyber; 2) Schedule board training on ICT risk; 3) Start formal quarterly reporting. Timeline: 30 days.",
		},
	},
	"cloud_governance": {
		"Yes, formalized": {
			Optimal,
			"Cloud governance framework is properly formalized.",
			"Keep the inventory current, review contracts annually, monitor SLA compliance.",
		},
		"Informal processes": {
			NeedsImprovement,
			"Cloud processes are not formalized. Governance risk.",
			"ACTION: Formalize cloud governance: 1) Full cloud service inventory; 2) Risk assessment per CSP; 3) Cloud usage policy; 4) Standard contract clauses (audit rights, data portability, exit); 5) Continuous monitoring.",
		},
		"No specific framework": {
			Critical,
			"Significant cloud usage without governance. DORA Art. 28 gap!",
			"HIGH PRIORITY: Implement a cloud governance framework. Include a CSP register, criticality classification, vendor due diligence, exit strategy and concentration risk assessment. Budget: tooling plus legal review of contracts.",
		},
	},

	// Logging & Monitoring
	"centralized_logging": {
		"Yes, SIEM deployed": {
			Optimal,
			"SIEM in operation. Log management capability is optimal.",
			"Make sure every source is integrated (network, endpoint, cloud, apps). Configure real-time alerting.",
		},
		"Partial (some sources)": {
			NeedsImprovement,
			"Partial log collection. Visibility is incomplete.",
			"ACTION: Finish onboarding log sources into the SIEM. Priority: 1) Critical systems; 2) Cloud platforms; 3) Network devices; 4) Security tools. Verify coverage above 90% of critical assets.",
		},
		"No centralization": {
			Critical,
			"CRITICAL! Logs are not centralized. Audit trail and investigation are impossible.",
			"URGENT: Deploy a SIEM (Splunk, ELK, Microsoft Sentinel, Chronicle). Steps: 1) Define use cases; 2) Select platform; 3) Deploy collectors; 4) Configure log sources; 5) Build dashboards. Timeline: 60 days. Budget: licensing plus professional services.",
		},
	},
	"log_retention": {
		"24+ months": {
			Optimal,
			"Retention meets and exceeds the minimum requirements.",
			"Great! Check storage capacity planning for log volume growth.",
		},
		"18-24 months": {
			Optimal,
			"Retention aligned with NIS2 requirements (18 months minimum).",
			"Compliant. Consider extending to 24 months for complex incident investigations.",
		},
		"12-18 months": {
			NeedsImprovement,
			"Retention below NIS2 requirements. Not compliant!",
			"IMMEDIATE ACTION: Extend retention to at least 18 months for security-relevant logs (authentication, access, changes, alerts). Check storage capacity. Timeline: 30 days.",
		},
		"6-12 months": {
			Critical,
			"CRITICAL! Retention far below requirements. Compliance breach.",
			"URGENT: Extend retention to 18-24 months. Evaluate: 1) Archive storage (S3 Glacier, Azure Cool); 2) Compression; 3) Tiering strategy. Impact: audit trail, forensics, investigation.",
		},
		"<6 months": {
			Critical,
			"SEVERE! Retention is inadequate. Not enough evidence for audits.",
			"CRITICAL: Implement 18+ month retention IMMEDIATELY. Without adequate log evidence: 1) Audits are impossible; 2) Investigations are limited; 3) Regulatory penalties apply. Prioritize storage budget.",
		},
	},
	"log_integrity": {
		"Yes, automated verification": {
			Optimal,
			"Log integrity protected. Evidence is tamper-proof.",
			"Excellent! Verify hash database backups and run periodic restore tests.",
		},
		"Manual spot-checks": {
			Acceptable,
			"Manual checks only. Neither scalable nor complete.",
			"IMPROVEMENT: Automate log hashing (SHA-256) with separate hash storage. Add scheduled verification jobs. Tools: syslog-ng signing, OSSEC integrity checking.",
		},
		"No verification": {
			Critical,
			"Logs are not protected against tampering. Evidence is unreliable!",
			"HIGH PRIORITY: Implement log integrity protection: 1) Cryptographic hashing (SHA-256); 2) WORM storage or blockchain; 3) Automated verification; 4) Secure hash storage. Without integrity, logs are not valid in audits or legal proceedings.",
		},
	},
	"cloud_logs_integrated": {
		"Yes, all sources": {
			Optimal,
			"Cloud logs fully integrated. Full visibility.",
			"Great! Check alerting on critical cloud events (privilege escalation, config changes).",
		},
		"Partially": {
			NeedsImprovement,
			"Partial cloud log integration. Blind spots are likely.",
			"ACTION: Finish integrating cloud logs into the SIEM. Priority: AWS CloudTrail, Azure Activity Log, GCP Cloud Logging, M365 Audit Logs. Configure forwarding to the SIEM.",
		},
		"No": {
			Critical,
			"Cloud logs are not monitored. Significant security risk!",
			"URGENT: Enable cloud log integration. Setup: 1) Enable logging (CloudTrail/Monitor/Logging); 2) Configure SIEM forwarders; 3) Create detection rules; 4) Build a cloud activity dashboard. Cloud is a critical attack surface!",
		},
	},
	"realtime_monitoring": {
		"Yes, 24/7 SOC": {
			Optimal,
			"24/7 SOC in operation. Detection capability is optimal.",
			"Excellent! Track MTTD (Mean Time To Detect) and use-case coverage.",
		},
		"Business hours only": {
			NeedsImprovement,
			"Monitoring limited to business hours. 67% coverage gap!",
			"ACTION: Extend monitoring to 24/7. Options: 1) Managed SOC (MDR provider); 2) Follow-the-sun model; 3) Automated playbooks plus on-call. Attacks happen around the clock, especially nights and weekends.",
		},
		"No active monitoring": {
			Critical,
			"CRITICAL! No active monitoring. Detection is impossible.",
			"URGENT: Start security monitoring. Quick wins: 1) Deploy EDR with automated response; 2) Subscribe to an MDR service; 3) Configure SIEM alerting; 4) Set up an on-call rotation. Without monitoring, breaches take 200+ days to detect on average!",
		},
	},

	// ICT Third-Party Risk
	"vendor_inventory": {
		"Yes, complete and current": {
			Optimal,
			"Vendor inventory is complete and current.",
			"Excellent! Keep quarterly updates and classify by criticality.",
		},
		"Informal list": {
			NeedsImprovement,
			"Inventory is not formalized. Governance gap.",
			"ACTION: Formalize the ICT third-party register. Include legal name, services, data processed, criticality, certifications, contacts, contract. Use a DORA-compliant template. Update quarterly.",
		},
		"No inventory": {
			Critical,
			"CRITICAL! No vendor inventory. Breach of DORA Art. 28!",
			"URGENT: Build a complete register of ICT providers. Process: 1) Survey business units; 2) Audit contracts; 3) Classify criticality; 4) Risk assessment; 5) Remediation plan. Unknown dependencies mean unknown risk!",
		},
	},
	"audit_rights": {
		"Yes, in all critical contracts": {
			Optimal,
			"Audit rights in critical contracts. DORA compliant.",
			"Great! Exercise audit rights periodically and request SOC 2 reports.",
		},
		"In some contracts": {
			NeedsImprovement,
			"Audit rights are incomplete. Partial coverage.",
			"ACTION: Negotiate audit rights into every critical contract at renewal. Clauses: 1) Right to audit security controls; 2) Access to SOC 2/ISO reports; 3) Penetration test rights; 4) 24h incident notification.",
		},
		"Not in contracts": {
			Critical,
			"No audit rights. Vendor security cannot be verified!",
			"HIGH PRIORITY: Review critical contracts. Require: 1) Annual right to audit; 2) Security questionnaire rights; 3) 24h incident disclosure; 4) Access to certifications; 5) Subprocessor transparency. No audit rights means blind trust.",
		},
	},
	"incident_notification_sla": {
		"12 hours": {
			Optimal,
			"12h notification SLA. Best practice.",
			"Excellent! Verify vendors meet the SLA and test the notification flow.",
		},
		"24 hours": {
			Optimal,
			"24h SLA aligned with DORA Art. 19.",
			"Compliant. Test the notification process annually and keep contacts current.",
		},
		"72+ hours": {
			NeedsImprovement,
			"72h SLA is inadequate for effective incident response.",
			"ACTION: Negotiate a 24h SLA at contract renewal. 72h is too slow for: 1) Containment; 2) Authority notification; 3) Customer communication. Ask for a severity-based SLA.",
		},
		"No SLA": {
			Critical,
			"CRITICAL! No incident notification SLA. Unacceptable risk!",
			"URGENT: Define incident notification SLAs in every critical contract. Minimum: 24h for security incidents. Include: 1) Severity definition; 2) Notification channels; 3) Required information; 4) Penalties for SLA breach.",
		},
	},
	"cloud_exit_plan": {
		"Yes, tested annually": {
			Optimal,
			"Cloud exit strategy tested. Portability assured.",
			"Excellent! Check data export formats, transition timeline and exit costs.",
		},
		"Documented but not tested": {
			Acceptable,
			"Exit plan not tested. Feasibility is uncertain.",
			"IMPROVEMENT: Test the exit plan annually. Verify: 1) Complete data export; 2) Alternative CSPs identified; 3) 90-day maximum timeline; 4) Exit costs; 5) Business continuity during transition.",
		},
		"No exit plan": {
			Critical,
			"No exit strategy. Lock-in risk and DORA breach!",
			"HIGH PRIORITY: Develop a cloud exit strategy. Include: 1) Data portability plan; 2) Alternative CSP shortlist; 3) Export procedures; 4) Transition timeline (target 90 days); 5) Business continuity during migration. Lock-in means concentration risk.",
		},
	},
	"supply_chain_monitoring": {
		"Yes, continuous assessment": {
			Optimal,
			"Continuous third-party risk monitoring is active.",
			"Great! Check coverage of critical vendors and configure alerting on security incidents.",
		},
		"Annual assessments": {
			Acceptable,
			"Annual assessment only. Frequency below best practice.",
			"IMPROVEMENT: Implement continuous monitoring. Tools: BitSight, SecurityScorecard, Prevalent. Benefits: real-time risk posture, breach detection, cyber rating changes. Annual assessment is too slow.",
		},
		"No monitoring": {
			Critical,
			"No vendor monitoring. Supply chain blind spot!",
			"URGENT: Start third-party risk monitoring. Options: 1) Automated platform (BitSight/SecurityScorecard); 2) Periodic questionnaires; 3) Vulnerability scanning of vendor-facing systems; 4) Vendor breach news monitoring. Supply chain attacks are growing 40% year over year!",
		},
	},

	// Incident & Resilience
	"incident_process": {
		"Yes, documented and tested": {
			Optimal,
			"Incident response process is mature and tested.",
			"Excellent! Keep playbooks current and run quarterly tabletops.",
		},
		"Process exists, not tested": {
			NeedsImprovement,
			"IR process not tested. Effectiveness is unverified.",
			"ACTION: Test the incident response process quarterly. Scenarios: 1) Ransomware; 2) Data breach; 3) DDoS; 4) Insider threat; 5) Cloud compromise. Measure MTTR, find gaps, update playbooks.",
		},
		"No formal process": {
			Critical,
			"CRITICAL! No incident response process. Chaos in case of a breach!",
			"URGENT: Write an incident response plan. Include: 1) IR team and roles; 2) Detection and triage; 3) Containment procedures; 4) Eradication and recovery; 5) Communication plan; 6) Authority notification; 7) Post-incident review. Template: NIST SP 800-61. Timeline: 45 days.",
		},
	},
	"24h_reporting": {
		"Yes, process established": {
			Optimal,
			"24h reporting capability active. NIS2 compliant.",
			"Great! Test the notification flow every six months and keep authority contacts current.",
		},
		"Uncertain": {
			NeedsImprovement,
			"Uncertain 24h capability. Critical process gap!",
			"ACTION: Formalize the 24h reporting process. Setup: 1) Identify notification authorities (CSIRT, DORA lead authority); 2) Prepare notification templates; 3) Define severity criteria; 4) 24/7 on-call rotation; 5) Test the workflow. NIS2 requires a 24h early warning!",
		},
		"No": {
			Critical,
			"CRITICAL! 24h reporting is impossible. Direct breach of NIS2 Art. 23!",
			"URGENT: Build 24h reporting capability. Requirements: 1) 24/7 detection (SOC/MDR); 2) Incident classification process; 3) Notification templates; 4) Escalation paths; 5) Authority contacts; 6) On-call team. NIS2 penalizes late reporting!",
		},
	},
	"resilience_testing": {
		"Quarterly": {
			Optimal,
			"Quarterly testing. Resilience best practice.",
			"Excellent! Vary scenarios (DR, ransomware, DDoS) and measure actual RTO/RPO.",
		},
		"Bi-annually": {
			Optimal,
			"Six-monthly testing aligned with DORA requirements.",
			"Compliant. Include DR, incident response, business continuity and security control tests.",
		},
		"Annually": {
			Acceptable,
			"Annual testing. Minimum acceptable frequency.",
			"IMPROVEMENT: Increase testing to every six months. DORA requires regular testing. Priority scenarios: disaster recovery, ransomware response, data breach, third-party failure.",
		},
		"Never": {
			Critical,
			"CRITICAL! No resilience testing. RTO/RPO are unverified!",
			"URGENT: Plan a resilience testing program. Year 1: 1) Q1 tabletop DR; 2) Q2 technical DR test; 3) Q3 incident response drill; 4) Q4 full failover test. Measure actual RTO, RPO, detection time and recovery time. Without tests, the recovery plan is fiction!",
		},
	},
	"rto_rpo_defined": {
		"Yes, for all critical systems": {
			Optimal,
			"RTO/RPO defined for all critical systems.",
			"Great! Validate RTO/RPO through testing and align the backup/HA strategy.",
		},
		"For some systems": {
			Acceptable,
			"Partial RTO/RPO. Incomplete coverage.",
			"ACTION: Define RTO/RPO for every critical system. Process: 1) Business impact analysis; 2) Define acceptable downtime; 3) Define acceptable data loss; 4) Design backup/HA strategy; 5) Document in the DR plan.",
		},
		"No": {
			Critical,
			"RTO/RPO not defined. Recovery planning is impossible!",
			"HIGH PRIORITY: Run a business impact analysis (BIA). Output: 1) Critical systems inventory; 2) RTO target per system; 3) RPO target per system; 4) Dependencies; 5) Recovery priorities. Without RTO/RPO the backup strategy is ineffective and recovery is chaotic.",
		},
	},
	"cloud_incident_integration": {
		"Yes": {
			Optimal,
			"Cloud incidents integrated into the IR process.",
			"Great! Verify CSP notifications and test the escalation workflow.",
		},
		"No": {
			NeedsImprovement,
			"Cloud incidents not integrated. IR process gap.",
			"ACTION: Integrate cloud incidents into the IR workflow. Setup: 1) Subscribe to CSP incident notifications; 2) Configure alerting (email/webhook); 3) Add cloud scenarios to the IR playbook; 4) Define escalation paths; 5) Test the notification flow. A cloud outage is a business impact!",
		},
	},
}
