// Package wizard is the interactive terminal collector. It walks the four
// input phases one question at a time, shows per-answer feedback and a
// running score for the current phase, and ends on a results screen that
// can save the report bundle.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/export"
	"resilience/internal/model"
	"resilience/internal/report"
	"resilience/internal/session"
)

type screen int

const (
	screenQuestion screen = iota
	screenResults
	screenSave
)

const barWidth = 30

// Options configures the wizard.
type Options struct {
	// OutputDir is the directory offered when saving the report.
	OutputDir string
	Now       func() time.Time
}

// Outcome is what the wizard leaves behind when it exits.
type Outcome struct {
	Finished bool
	Answers  answers.Set
	Result   model.Result
	Saved    []string
}

// Model is the bubbletea model of the wizard.
type Model struct {
	sess   *session.Session
	screen screen
	qIdx   int
	cursor int
	picked map[string]bool
	result model.Result

	keys  keyMap
	help  help.Model
	bars  map[assess.Band]progress.Model
	input textinput.Model

	outDir   string
	now      func() time.Time
	saved    []string
	err      error
	quitting bool
}

// New returns a wizard positioned at the first question.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "output directory"
	ti.CharLimit = 512

	bars := make(map[assess.Band]progress.Model, len(bandColors))
	for band, color := range bandColors {
		bars[band] = progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
	}

	m := Model{
		sess:   session.New(),
		keys:   defaultKeys(),
		help:   help.New(),
		bars:   bars,
		input:  ti,
		outDir: opts.OutputDir,
		now:    opts.Now,
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m.load()
}

// Outcome reports the answers and, when the results screen was reached,
// the assessment.
func (m Model) Outcome() Outcome {
	return Outcome{
		Finished: m.sess.Phase() == answers.PhaseResults,
		Answers:  m.sess.Answers(),
		Result:   m.result,
		Saved:    m.saved,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.screen == screenSave {
			return m.updateSave(msg)
		}
		return m.updateKey(msg)
	}
	if m.screen == screenSave {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, onQuestion := m.question()
	keys := m.keys.forScreen(m.screen, onQuestion && q.Kind == answers.Multi)

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.Back):
		m = m.back()
	case key.Matches(msg, keys.Restart):
		m = m.restart()
	case key.Matches(msg, keys.Save):
		m.screen = screenSave
		m.input.SetValue(m.outDir)
		return m, m.input.Focus()
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if onQuestion && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		opt := q.Options[m.cursor]
		m.picked[opt] = !m.picked[opt]
	case key.Matches(msg, keys.Confirm):
		return m.confirm(), nil
	}
	return m, nil
}

func (m Model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenResults
		return m, nil
	case tea.KeyEnter:
		m.input.Blur()
		m.screen = screenResults
		if dir := strings.TrimSpace(m.input.Value()); dir != "" {
			m.outDir = dir
		}
		m.saved, m.err = m.save()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Flow
// ---------------------------------------------------------------------------

// question returns the question under the cursor, if any.
func (m Model) question() (answers.Question, bool) {
	if m.screen != screenQuestion {
		return answers.Question{}, false
	}
	qs := m.sess.Questions()
	if m.qIdx < 0 || m.qIdx >= len(qs) {
		return answers.Question{}, false
	}
	return qs[m.qIdx], true
}

// load positions the cursor for the current question: on the recorded
// answer when there is one, otherwise on the question's default.
func (m Model) load() Model {
	m.picked = make(map[string]bool)
	m.cursor = 0
	q, ok := m.question()
	if !ok {
		return m
	}
	a := m.sess.Answers()
	if q.Kind == answers.Multi {
		for _, v := range a.List(q.ID) {
			m.picked[v] = true
		}
		return m
	}
	m.cursor = q.DefaultIndex()
	if v := a.Text(q.ID); v != "" {
		for i, o := range q.Options {
			if o == v {
				m.cursor = i
			}
		}
	}
	return m
}

// confirm records the current selection and moves to the next question,
// advancing the phase after its last one.
func (m Model) confirm() Model {
	q, ok := m.question()
	if !ok {
		return m
	}
	var a answers.Set
	if q.Kind == answers.Multi {
		list := []string{}
		for _, o := range q.Options {
			if m.picked[o] {
				list = append(list, o)
			}
		}
		a = answers.New().WithList(q.ID, list)
	} else {
		a = answers.New().WithText(q.ID, q.Options[m.cursor])
	}
	if err := m.sess.Record(a); err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.qIdx++
	if m.qIdx < len(m.sess.Questions()) {
		return m.load()
	}

	if err := m.sess.Next(); err != nil {
		m.err = err
		return m
	}
	m.qIdx = 0
	if m.sess.Phase() == answers.PhaseResults {
		res, err := m.sess.Result()
		if err != nil {
			m.err = err
			return m
		}
		m.result = res
		m.screen = screenResults
		return m
	}
	return m.load()
}

// back steps to the previous question, crossing into the previous phase
// when needed. Answers are kept.
func (m Model) back() Model {
	if m.screen == screenQuestion && m.qIdx > 0 {
		m.qIdx--
		return m.load()
	}
	if err := m.sess.Back(); err != nil {
		return m
	}
	m.screen = screenQuestion
	m.result = model.Result{}
	m.saved = nil
	m.qIdx = len(m.sess.Questions()) - 1
	return m.load()
}

func (m Model) restart() Model {
	m.sess.Restart()
	m.screen = screenQuestion
	m.qIdx = 0
	m.result = model.Result{}
	m.saved = nil
	m.err = nil
	return m.load()
}

// save renders and writes the report bundle to the output directory.
func (m Model) save() ([]string, error) {
	a := m.sess.Answers()
	bundle, err := export.Generate(m.result, a, report.MetaFrom(a, m.now()))
	if err != nil {
		return nil, err
	}
	return export.Write(bundle, m.outDir)
}

// ---------------------------------------------------------------------------
// Run
// ---------------------------------------------------------------------------

// Run starts the wizard on the terminal and blocks until the user quits.
func Run(opts Options) (Outcome, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Outcome{}, fmt.Errorf("wizard: unexpected model %T", final)
	}
	return m.Outcome(), nil
}
