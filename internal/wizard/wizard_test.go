package wizard

// wizard_test.go — Drives the wizard model with key messages through a full
// assessment, navigation, restart and report saving.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/feedback"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		OutputDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC) },
	})
}

// press feeds msgs to m in order and returns the resulting model and the
// last command.
func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = msg
	}
	return out
}

func currentID(t *testing.T, m Model) string {
	t.Helper()
	q, ok := m.question()
	if !ok {
		t.Fatal("no current question")
	}
	return q.ID
}

// Without cloud usage: 5 governance, 4 logging, 4 third-party and
// 4 incident questions.
const defaultQuestionCount = 17

// ---------------------------------------------------------------------------
// Flow
// ---------------------------------------------------------------------------

func TestDefaultsReachResults(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)

	if m.screen != screenResults {
		t.Fatalf("screen = %v, want results", m.screen)
	}
	out := m.Outcome()
	if !out.Finished {
		t.Error("outcome not finished")
	}
	if got := out.Answers.Text(answers.RiskFramework); got != "Partially documented" {
		t.Errorf("risk_framework = %q, want default", got)
	}
	if got := out.Answers.Text(answers.Sector); got != "Financial services" {
		t.Errorf("sector = %q", got)
	}
	if out.Answers.UsesCloud() {
		t.Error("no cloud service was picked")
	}
	want := assess.Assess(out.Answers)
	if out.Result.Total != want.Total || out.Result.Tier != want.Tier {
		t.Errorf("result = %d/%s, want %d/%s", out.Result.Total, out.Result.Tier, want.Total, want.Tier)
	}
}

func TestCursorMovesWithinOptions(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, up, up)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}
	q, _ := m.question()
	m, _ = press(t, m, repeat(down, len(q.Options)+3)...)
	if m.cursor != len(q.Options)-1 {
		t.Errorf("cursor = %d, want last option %d", m.cursor, len(q.Options)-1)
	}
	m, _ = press(t, m, enter)
	if got := m.sess.Answers().Text(answers.Sector); got != q.Options[len(q.Options)-1] {
		t.Errorf("sector = %q", got)
	}
}

func TestMultiSelectEnablesCloudQuestions(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, 4)...)
	if id := currentID(t, m); id != answers.CloudUsage {
		t.Fatalf("question = %q, want cloud_usage", id)
	}

	// Pick the first two categories, toggle a third on and off again.
	m, _ = press(t, m, runes("x"), down, runes("x"), down, runes("x"), runes("x"), enter)

	got := m.sess.Answers().List(answers.CloudUsage)
	if len(got) != 2 || got[0] != "IaaS (AWS, Azure, GCP)" || got[1] != "SaaS (M365, Salesforce, etc.)" {
		t.Errorf("cloud_usage = %v", got)
	}
	if id := currentID(t, m); id != answers.CloudGovernance {
		t.Errorf("question = %q, want cloud_governance", id)
	}
}

func TestToggleIgnoredOnSingleChoice(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runes("x"))
	if len(m.picked) != 0 {
		t.Errorf("picked = %v on a single-choice question", m.picked)
	}
}

func TestBackCrossesPhasesAndKeepsAnswers(t *testing.T) {
	m := newTestModel(t)

	// Back at the very first question does nothing.
	m, _ = press(t, m, left)
	if m.sess.Phase() != answers.PhaseGovernance || m.qIdx != 0 {
		t.Fatalf("back at start moved to %v/%d", m.sess.Phase(), m.qIdx)
	}

	m, _ = press(t, m, repeat(enter, 5)...)
	if m.sess.Phase() != answers.PhaseLogging {
		t.Fatalf("phase = %v, want logging", m.sess.Phase())
	}

	m, _ = press(t, m, left)
	if m.sess.Phase() != answers.PhaseGovernance {
		t.Fatalf("phase = %v after back, want governance", m.sess.Phase())
	}
	if id := currentID(t, m); id != answers.CloudUsage {
		t.Errorf("question = %q, want last governance question", id)
	}

	m, _ = press(t, m, left, left)
	if id := currentID(t, m); id != answers.RiskFramework {
		t.Fatalf("question = %q", id)
	}
	q, _ := m.question()
	if q.Options[m.cursor] != "Partially documented" {
		t.Errorf("cursor on %q, want the recorded answer", q.Options[m.cursor])
	}
	if !m.sess.Answers().Has(answers.Sector) {
		t.Error("back dropped earlier answers")
	}
}

func TestBackFromResults(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)
	m, _ = press(t, m, runes("b"))
	if m.screen != screenQuestion || m.sess.Phase() != answers.PhaseIncident {
		t.Fatalf("screen %v phase %v", m.screen, m.sess.Phase())
	}
	if id := currentID(t, m); id != answers.RTORPODefined {
		t.Errorf("question = %q, want last incident question", id)
	}
}

func TestRestartClearsAnswers(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)

	m, _ = press(t, m, runes("r"))
	if m.screen != screenQuestion || m.sess.Phase() != answers.PhaseGovernance || m.qIdx != 0 {
		t.Fatalf("restart landed on %v/%v/%d", m.screen, m.sess.Phase(), m.qIdx)
	}
	if n := m.sess.Answers().Len(); n != 0 {
		t.Errorf("answers after restart = %d", n)
	}
}

func TestRestartOnlyOnResults(t *testing.T) {
	m, _ := press(t, newTestModel(t), enter, enter)
	m, _ = press(t, m, runes("r"))
	if m.qIdx != 2 || m.sess.Answers().Len() != 2 {
		t.Errorf("restart key acted on a question screen: qIdx %d, %d answers", m.qIdx, m.sess.Answers().Len())
	}
}

func TestQuit(t *testing.T) {
	m, cmd := press(t, newTestModel(t), runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
	if m.Outcome().Finished {
		t.Error("quit before results reported finished")
	}
}

// ---------------------------------------------------------------------------
// Saving
// ---------------------------------------------------------------------------

func TestSaveWritesBundle(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)
	dir := m.outDir

	m, _ = press(t, m, runes("s"))
	if m.screen != screenSave {
		t.Fatalf("screen = %v, want save", m.screen)
	}
	if got := m.input.Value(); got != dir {
		t.Errorf("prefilled dir = %q, want %q", got, dir)
	}

	m, _ = press(t, m, enter)
	if m.err != nil {
		t.Fatalf("save error: %v", m.err)
	}
	if m.screen != screenResults {
		t.Errorf("screen = %v after save", m.screen)
	}
	if len(m.saved) == 0 {
		t.Fatal("nothing saved")
	}
	for _, name := range []string{"eu_resilience_assessment_20260502.txt", "eu_resilience_assessment_20260502.csv", "summary.md", "answers.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(m.View(), "Saved ") {
		t.Error("results view does not confirm the save")
	}
}

func TestSaveCancel(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)
	m, _ = press(t, m, runes("s"), esc)
	if m.screen != screenResults || len(m.saved) != 0 {
		t.Errorf("cancel: screen %v saved %v", m.screen, m.saved)
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestQuestionView(t *testing.T) {
	m, _ := press(t, newTestModel(t), enter, enter)
	view := m.View()

	q, _ := answers.Lookup(answers.RiskFramework)
	rec := feedback.Lookup(answers.RiskFramework, "Partially documented")
	for _, want := range []string{
		appTitle,
		"Phase 1/4",
		q.Label,
		"Partially documented",
		rec.Message,
		"Acceptable answer, consider improvements",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsView(t *testing.T) {
	m, _ := press(t, newTestModel(t), repeat(enter, defaultQuestionCount)...)
	view := m.View()
	for _, want := range []string{
		"Total score:",
		"Compliance:",
		"Domains",
		"Governance & Scope",
		"Recommendations",
		"[HIGH]",
		"Your answers",
		answers.NotAnswered,
	} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}
