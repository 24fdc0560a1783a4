package wizard

// view.go — rendering of the question, results and save screens.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/feedback"
	"resilience/internal/model"
	"resilience/internal/risk"
)

const appTitle = "EU Digital Resilience Assessment (NIS2 / DORA)"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")

	switch m.screen {
	case screenQuestion:
		m.viewQuestion(&b)
	case screenResults:
		m.viewResults(&b)
	case screenSave:
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Save report bundle to:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter to save, esc to cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	q, ok := m.question()
	b.WriteString(m.help.View(m.keys.forScreen(m.screen, ok && q.Kind == answers.Multi)))
	b.WriteString("\n")
	return b.String()
}

// ---------------------------------------------------------------------------
// Question screen
// ---------------------------------------------------------------------------

func (m Model) viewQuestion(b *strings.Builder) {
	p := m.sess.Phase()
	qs := m.sess.Questions()
	q, ok := m.question()
	if !ok {
		return
	}

	fmt.Fprintf(b, "%s\n", phaseStyle.Render(fmt.Sprintf(
		"Phase %d/4 · %s · question %d/%d", int(p)+1, p.Title(), m.qIdx+1, len(qs))))

	if dr, ok := m.sess.Preview(); ok {
		band := assess.PreviewBand(dr.Score)
		fmt.Fprintf(b, "%s %s\n",
			m.bars[band].ViewAs(float64(dr.Score)/float64(model.MaxDomainScore)),
			bandStyle(band).Render(fmt.Sprintf("%d/%d", dr.Score, model.MaxDomainScore)))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(q.Label))
	b.WriteString("\n")
	for i, opt := range q.Options {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		line := opt
		if q.Kind == answers.Multi {
			mark := "[ ]"
			if m.picked[opt] {
				mark = "[x]"
			}
			line = mark + " " + opt
		}
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		fmt.Fprintf(b, "%s%s\n", pointer, line)
	}

	// Feedback applies to single-choice answers only.
	if q.Kind == answers.Multi {
		return
	}
	opt := q.Options[m.cursor]
	if level, text := feedback.Hint(q, opt); level != feedback.HintNone {
		b.WriteString("\n")
		b.WriteString(hintStyle(level).Render(text))
		b.WriteString("\n")
	}
	if feedback.Known(q.ID, opt) {
		rec := feedback.Lookup(q.ID, opt)
		b.WriteString(severityStyle(rec.Status.Severity()).Render(rec.Message))
		b.WriteString("\n")
		if rec.Advice != "" {
			b.WriteString(dimStyle.Render(rec.Advice))
			b.WriteString("\n")
		}
	}
}

// ---------------------------------------------------------------------------
// Results screen
// ---------------------------------------------------------------------------

func (m Model) viewResults(b *strings.Builder) {
	res := m.result
	sum := assess.Summarize(res)

	fmt.Fprintf(b, "\nTotal score: %s   Risk level: %s\n",
		labelStyle.Render(fmt.Sprintf("%d/%d", res.Total, model.MaxTotalScore)),
		tierStyle(res).Render(string(res.Tier)))
	fmt.Fprintf(b, "Gaps: %d · Findings: %d · High priority: %d · Actions: %d · Compliance: %d%%\n",
		sum.Gaps, sum.Findings, sum.HighPriority, sum.Actions, sum.CompliancePct)

	b.WriteString(sectionStyle.Render("Domains"))
	b.WriteString("\n")
	for _, d := range sum.Domains {
		fmt.Fprintf(b, "  %-24s %s %s\n",
			d.Name,
			m.bars[d.Band].ViewAs(float64(d.Percent)/100),
			bandStyle(d.Band).Render(fmt.Sprintf("%d/%d (%d%%)", d.Score, model.MaxDomainScore, d.Percent)))
	}

	if len(res.Recommendations) > 0 {
		b.WriteString(sectionStyle.Render("Recommendations"))
		b.WriteString("\n")
		for _, r := range assess.Prioritize(res.Recommendations, assess.ViewPriority) {
			fmt.Fprintf(b, "  %d. %s %s\n", r.Rank, priorityStyle(r.Priority).Render("["+string(r.Priority)+"]"), r.Text)
		}
	}

	if guide := feedback.Guidance(m.sess.Answers()); len(guide) > 0 {
		b.WriteString(sectionStyle.Render("Practical guidance"))
		b.WriteString("\n")
		for _, g := range guide {
			urgency := warningStyle.Render("medium")
			if g.Urgent {
				urgency = criticalStyle.Render("critical")
			}
			fmt.Fprintf(b, "  [%s] %s › %s: %s\n", urgency, g.Domain, g.Area, g.Text)
		}
	}

	b.WriteString(sectionStyle.Render("Your answers"))
	b.WriteString("\n")
	for _, it := range answers.Review(m.sess.Answers()) {
		fmt.Fprintf(b, "  %s: %s\n", it.Label, dimStyle.Render(it.Value))
	}

	if len(m.saved) > 0 {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(fmt.Sprintf("Saved %d files to %s", len(m.saved), m.outDir)))
		b.WriteString("\n")
	}
}

func tierStyle(res model.Result) lipgloss.Style {
	switch res.Tier {
	case risk.Low:
		return successStyle
	case risk.Medium:
		return warningStyle
	default:
		return criticalStyle
	}
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return criticalStyle
	case model.PriorityMedium:
		return warningStyle
	default:
		return dimStyle
	}
}
