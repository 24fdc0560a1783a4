package server

// server_test.go — HTTP tests for the stateless endpoints and the session
// workflow, driven through the routed handler.

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resilience/internal/answers"
	"resilience/internal/model"
	"resilience/internal/report"
	"resilience/internal/session"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s, err := New(Options{
		Store: session.NewStore(time.Hour),
		Now:   func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return s, s.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// weakest answers per phase; totals 35 (13/7/8/7).
var weakest = map[answers.Phase]map[string]any{
	answers.PhaseGovernance: {
		answers.Sector:         "Energy",
		answers.RiskFramework:  "No framework",
		answers.BoardOversight: "No oversight",
		answers.CloudUsage:     []string{"None"},
	},
	answers.PhaseLogging: {
		answers.CentralizedLogging: "No centralization",
		answers.LogRetention:       "<6 months",
		answers.LogIntegrity:       "No verification",
		answers.RealtimeMonitoring: "No active monitoring",
	},
	answers.PhaseThirdParty: {
		answers.VendorInventory:         "No inventory",
		answers.AuditRights:             "Not in contracts",
		answers.IncidentNotificationSLA: "No SLA",
		answers.SupplyChainMonitoring:   "No monitoring",
	},
	answers.PhaseIncident: {
		answers.IncidentProcess:   "No formal process",
		answers.Reporting24h:      "No",
		answers.ResilienceTesting: "Never",
		answers.RTORPODefined:     "No",
	},
}

// assessmentsCounted sums resilience_assessments_total for one source.
func assessmentsCounted(t *testing.T, s *Server, source string) float64 {
	t.Helper()
	families, err := s.Metrics().Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != "resilience_assessments_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "source" && l.GetValue() == source {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

func completeSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[session.Snapshot](t, rec).ID

	for _, p := range answers.Phases[:4] {
		rec = do(t, h, http.MethodPut, "/sessions/"+id+"/answers", weakest[p])
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		rec = do(t, h, http.MethodPost, "/sessions/"+id+"/next", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	return id
}

// ---------------------------------------------------------------------------
// Stateless endpoints
// ---------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestQuestions(t *testing.T) {
	_, h := newTestServer(t)

	all := decode[[]answers.Question](t, do(t, h, http.MethodGet, "/questions", nil))
	assert.Len(t, all, len(answers.Catalog()))

	logging := decode[[]map[string]any](t, do(t, h, http.MethodGet, "/questions?phase=logging", nil))
	require.NotEmpty(t, logging)
	for _, q := range logging {
		assert.Equal(t, "logging", q["phase"])
	}

	rec := do(t, h, http.MethodGet, "/questions?phase=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedback(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/feedback?question=log_retention&answer=%3C6+months", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	fb := body["feedback"].(map[string]any)
	assert.Equal(t, "critical", fb["status"])
	assert.Equal(t, "error", body["severity"].(map[string]any)["kind"])
	assert.Equal(t, "gap", body["hint"])

	rec = do(t, h, http.MethodGet, "/feedback?question=log_retention&answer=whatever", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fb = decode[map[string]any](t, rec)["feedback"].(map[string]any)
	assert.Equal(t, "info", fb["status"])
	assert.Equal(t, "Answer recorded.", fb["message"])

	rec = do(t, h, http.MethodGet, "/feedback?question=nope&answer=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluate(t *testing.T) {
	s, h := newTestServer(t)

	all := map[string]any{}
	for _, p := range weakest {
		for k, v := range p {
			all[k] = v
		}
	}
	rec := do(t, h, http.MethodPost, "/evaluate", all)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[resultView](t, rec)
	assert.Equal(t, 35, view.Result.Total)
	assert.Equal(t, "HIGH", string(view.Result.Tier))
	assert.Equal(t, 35, view.Summary.CompliancePct)
	require.NotEmpty(t, view.Recommendations)
	assert.Equal(t, model.PriorityHigh, view.Recommendations[0].Priority)
	assert.NotEmpty(t, view.Guidance)
	assert.Len(t, view.Answers, len(answers.Catalog()))

	assert.Equal(t, 1.0, assessmentsCounted(t, s, "evaluate"))
}

func TestEvaluateRejectsMalformedInput(t *testing.T) {
	_, h := newTestServer(t)
	tests := []struct {
		name string
		body any
	}{
		{"number", map[string]any{answers.LogRetention: 24}},
		{"unknown key", map[string]any{"bogus": "x"}},
		{"not json", "{"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/evaluate", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errorBody](t, rec).Error, "invalid answers")
		})
	}
}

// ---------------------------------------------------------------------------
// Session workflow
// ---------------------------------------------------------------------------

func TestSessionWorkflow(t *testing.T) {
	_, h := newTestServer(t)
	id := completeSession(t, h)

	snap := decode[map[string]any](t, do(t, h, http.MethodGet, "/sessions/"+id, nil))
	assert.Equal(t, "results", snap["phase"])

	rec := do(t, h, http.MethodGet, "/sessions/"+id+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[resultView](t, rec)
	assert.Equal(t, 35, view.Result.Total)
	assert.Equal(t, []int{13, 7, 8, 7}, []int{
		view.Result.Score(model.Governance),
		view.Result.Score(model.Logging),
		view.Result.Score(model.ThirdParty),
		view.Result.Score(model.Incident),
	})
	assert.Equal(t, 11, view.Summary.Gaps)
}

func TestSessionAssessmentCountedOnce(t *testing.T) {
	s, h := newTestServer(t)
	id := completeSession(t, h)
	assert.Equal(t, 1.0, assessmentsCounted(t, s, "session"))

	for _, path := range []string{"/result", "/result", "/report.txt", "/report.csv"} {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/sessions/"+id+path, nil).Code)
	}
	assert.Equal(t, 1.0, assessmentsCounted(t, s, "session"))

	// Going back and finishing again is a new assessment.
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/sessions/"+id+"/back", nil).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/sessions/"+id+"/next", nil).Code)
	assert.Equal(t, 2.0, assessmentsCounted(t, s, "session"))
}

func TestSessionKeepsCloudAnswersRecordedFirst(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID
	path := "/sessions/" + id + "/answers"

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, path,
		map[string]any{answers.CloudGovernance: "Yes, formalized"}).Code)
	rec := do(t, h, http.MethodPut, path,
		map[string]any{answers.CloudUsage: []string{"IaaS (AWS, Azure, GCP)", "SaaS (M365, Salesforce, etc.)"}})
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[map[string]any](t, rec)
	assert.Equal(t, "Yes, formalized", snap["answers"].(map[string]any)[answers.CloudGovernance])
}

func TestAnswersBodyTooLarge(t *testing.T) {
	_, h := newTestServer(t)
	big := `{"sector": "` + strings.Repeat("x", maxAnswersBody) + `"}`

	rec := do(t, h, http.MethodPost, "/evaluate", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID
	rec = do(t, h, http.MethodPut, "/sessions/"+id+"/answers", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSessionTransitionErrors(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID

	// Back at the first phase.
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/sessions/"+id+"/back", nil).Code)
	// Result before finishing.
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodGet, "/sessions/"+id+"/result", nil).Code)
	// Answer from another phase.
	rec := do(t, h, http.MethodPut, "/sessions/"+id+"/answers", map[string]any{answers.LogRetention: "24+ months"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Unknown session.
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/sessions/missing", nil).Code)

	id = completeSession(t, h)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/sessions/"+id+"/next", nil).Code)
	assert.Equal(t, http.StatusConflict,
		do(t, h, http.MethodPut, "/sessions/"+id+"/answers", map[string]any{}).Code)
}

func TestSessionBackKeepsAnswersAndRestartClears(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID

	require.Equal(t, http.StatusOK,
		do(t, h, http.MethodPut, "/sessions/"+id+"/answers", weakest[answers.PhaseGovernance]).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/sessions/"+id+"/next", nil).Code)

	rec := do(t, h, http.MethodPost, "/sessions/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[map[string]any](t, rec)
	assert.Equal(t, "governance", snap["phase"])
	assert.Equal(t, "No framework", snap["answers"].(map[string]any)[answers.RiskFramework])

	rec = do(t, h, http.MethodPost, "/sessions/"+id+"/restart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decode[map[string]any](t, rec)
	assert.Empty(t, snap["answers"])
}

func TestSessionPreview(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID
	require.Equal(t, http.StatusOK,
		do(t, h, http.MethodPut, "/sessions/"+id+"/answers", weakest[answers.PhaseGovernance]).Code)

	rec := do(t, h, http.MethodGet, "/sessions/"+id+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[map[string]any](t, rec)
	assert.EqualValues(t, 13, view["domain"].(map[string]any)["score"])
	assert.EqualValues(t, model.MaxDomainScore, view["max"])
	assert.Equal(t, "red", view["band"])
}

func TestSessionDelete(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[session.Snapshot](t, do(t, h, http.MethodPost, "/sessions", nil)).ID

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/sessions/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/sessions/"+id, nil).Code)
}

func TestReportDownloads(t *testing.T) {
	_, h := newTestServer(t)
	id := completeSession(t, h)

	rec := do(t, h, http.MethodGet, "/sessions/"+id+"/report.txt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "eu_resilience_assessment_20260314.txt")
	assert.Contains(t, rec.Body.String(), "EU DIGITAL RESILIENCE ASSESSMENT REPORT")
	assert.Contains(t, rec.Body.String(), "Sector: Energy")

	rec = do(t, h, http.MethodGet, "/sessions/"+id+"/report.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	m, err := report.ParseMetrics(rec.Body)
	require.NoError(t, err)
	total, err := m.Total()
	require.NoError(t, err)
	assert.Equal(t, 35, total)
	assert.Equal(t, "2026-03-14 09:30 UTC", m[report.MetricTimestamp])

	rec = do(t, h, http.MethodGet, "/sessions/"+id+"/report.pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestReportCSVIsWellFormed(t *testing.T) {
	_, h := newTestServer(t)
	id := completeSession(t, h)

	rec := do(t, h, http.MethodGet, "/sessions/"+id+"/report.csv", nil)
	r := csv.NewReader(rec.Body)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
}

// ---------------------------------------------------------------------------
// Metrics
// ---------------------------------------------------------------------------

func TestMetricsEndpoint(t *testing.T) {
	_, h := newTestServer(t)
	do(t, h, http.MethodPost, "/sessions", nil)
	do(t, h, http.MethodGet, "/healthz", nil)

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "resilience_sessions_active 1")
	assert.Contains(t, body, `route="/healthz"`)
}

func TestRateLimit(t *testing.T) {
	s, err := New(Options{RateLimit: 0.001, RateBurst: 2})
	require.NoError(t, err)
	h := s.Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", nil).Code)
	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{answers.ErrInvalid, http.StatusBadRequest},
		{session.ErrWrongPhase, http.StatusBadRequest},
		{session.ErrNotFound, http.StatusNotFound},
		{session.ErrFinished, http.StatusConflict},
		{session.ErrAtStart, http.StatusConflict},
		{session.ErrNotFinished, http.StatusConflict},
		{fmt.Errorf("answers body: %w", &http.MaxBytesError{Limit: 1}), http.StatusRequestEntityTooLarge},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
