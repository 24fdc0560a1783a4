package feedback_test

// feedback_test.go — Tests for the feedback table, the quick hint and the
// practical guidance.

import (
	"testing"

	"resilience/internal/answers"
	"resilience/internal/feedback"
)

func TestLookupKnownPairs(t *testing.T) {
	tests := []struct {
		question string
		answer   string
		status   feedback.Status
	}{
		{answers.RiskFramework, "Yes, documented and tested", feedback.Optimal},
		{answers.RiskFramework, "Partially documented", feedback.Acceptable},
		{answers.RiskFramework, "Ad-hoc processes", feedback.NeedsImprovement},
		{answers.RiskFramework, "No framework", feedback.Critical},
		{answers.LogRetention, "18-24 months", feedback.Optimal},
		{answers.LogRetention, "<6 months", feedback.Critical},
		{answers.CloudIncidentIntegration, "No", feedback.NeedsImprovement},
		{answers.Reporting24h, "No", feedback.Critical},
	}
	for _, tc := range tests {
		t.Run(tc.question+"/"+tc.answer, func(t *testing.T) {
			r := feedback.Lookup(tc.question, tc.answer)
			if r.Status != tc.status {
				t.Errorf("status = %s, want %s", r.Status, tc.status)
			}
			if r.Message == "" || r.Advice == "" {
				t.Errorf("incomplete record %+v", r)
			}
		})
	}
}

func TestLookupMiss(t *testing.T) {
	for _, pair := range [][2]string{
		{"unknown_question", "Yes"},
		{answers.RiskFramework, "Something else"},
		{answers.Sector, "Energy"},
		{"", ""},
	} {
		r := feedback.Lookup(pair[0], pair[1])
		if r != feedback.Default {
			t.Errorf("Lookup(%q, %q) = %+v, want default", pair[0], pair[1], r)
		}
	}
	if feedback.Default.Status != feedback.Info || feedback.Default.Advice != "" {
		t.Errorf("unexpected default %+v", feedback.Default)
	}
}

// Every table key must be a real option of a real question, so no entry is
// unreachable from the collector.
func TestTableMatchesCatalog(t *testing.T) {
	for _, q := range answers.Catalog() {
		for _, o := range q.Options {
			if !feedback.Known(q.ID, o) {
				continue
			}
			if feedback.Lookup(q.ID, o).Status == feedback.Info {
				t.Errorf("%s/%s: info status in table", q.ID, o)
			}
		}
	}
	// Optimal answers in the catalog are rated optimal where the table
	// knows them.
	for _, q := range answers.Catalog() {
		for _, o := range q.Optimal {
			if feedback.Known(q.ID, o) && feedback.Lookup(q.ID, o).Status != feedback.Optimal {
				t.Errorf("%s/%s: catalog optimal, table %s", q.ID, o, feedback.Lookup(q.ID, o).Status)
			}
		}
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		status feedback.Status
		want   feedback.Severity
	}{
		{feedback.Optimal, feedback.Severity{Kind: feedback.Success}},
		{feedback.Acceptable, feedback.Severity{Kind: feedback.Warning}},
		{feedback.NeedsImprovement, feedback.Severity{Kind: feedback.Error, Level: 1}},
		{feedback.Critical, feedback.Severity{Kind: feedback.Error, Level: 2}},
		{feedback.Info, feedback.Severity{Kind: feedback.Notice}},
	}
	for _, tc := range tests {
		if got := tc.status.Severity(); got != tc.want {
			t.Errorf("%s.Severity() = %+v, want %+v", tc.status, got, tc.want)
		}
	}
}

func TestHint(t *testing.T) {
	q, _ := answers.Lookup(answers.LogRetention)
	tests := []struct {
		value string
		want  feedback.HintLevel
	}{
		{"24+ months", feedback.HintOptimal},
		{"12-18 months", feedback.HintAcceptable},
		{"<6 months", feedback.HintGap},
		{"", feedback.HintNone},
	}
	for _, tc := range tests {
		got, msg := feedback.Hint(q, tc.value)
		if got != tc.want {
			t.Errorf("Hint(%q) = %s, want %s", tc.value, got, tc.want)
		}
		if (msg == "") != (tc.want == feedback.HintNone) {
			t.Errorf("Hint(%q) message %q", tc.value, msg)
		}
	}
}

func TestGuidance(t *testing.T) {
	a := answers.New().
		WithText(answers.RiskFramework, "Ad-hoc processes").
		WithText(answers.LogRetention, "6-12 months").
		WithText(answers.BoardOversight, "Yes, quarterly reviews").
		WithText(answers.CloudGovernance, "Informal processes").
		WithText(answers.Reporting24h, "No")

	got := feedback.Guidance(a)
	if len(got) != 3 {
		t.Fatalf("guidance = %d items, want 3: %+v", len(got), got)
	}
	// Urgent items lead, in questionnaire order.
	if got[0].Area != "Log Retention" || !got[0].Urgent {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Area != "24h Reporting" || !got[1].Urgent {
		t.Errorf("second = %+v", got[1])
	}
	if got[2].Area != "ICT Risk Framework" || got[2].Urgent {
		t.Errorf("third = %+v", got[2])
	}

	withCloud := a.WithList(answers.CloudUsage, []string{"PaaS"})
	var cloud bool
	for _, g := range feedback.Guidance(withCloud) {
		if g.Area == "Cloud Governance" {
			cloud = true
		}
	}
	if !cloud {
		t.Error("cloud governance guidance missing with cloud usage")
	}
}

func TestGuidanceEmptyWhenOptimal(t *testing.T) {
	a := answers.New().
		WithText(answers.RiskFramework, "Yes, documented and tested").
		WithText(answers.LogRetention, "24+ months")
	if got := feedback.Guidance(a); len(got) != 0 {
		t.Errorf("guidance = %+v, want none", got)
	}
}
