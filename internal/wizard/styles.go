package wizard

import (
	"github.com/charmbracelet/lipgloss"

	"resilience/internal/assess"
	"resilience/internal/feedback"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	phaseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// bandColors are the fill colors of the score bars.
var bandColors = map[assess.Band]string{
	assess.BandGreen:  "#04B575",
	assess.BandYellow: "#FFB000",
	assess.BandRed:    "#FF4F4F",
}

func bandStyle(b assess.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(bandColors[b]))
}

// severityStyle picks the style a feedback status renders with.
func severityStyle(sev feedback.Severity) lipgloss.Style {
	switch sev.Kind {
	case feedback.Success:
		return successStyle
	case feedback.Warning:
		return warningStyle
	case feedback.Error:
		if sev.Level > 1 {
			return criticalStyle
		}
		return errorStyle
	default:
		return noticeStyle
	}
}

func hintStyle(level feedback.HintLevel) lipgloss.Style {
	switch level {
	case feedback.HintOptimal:
		return successStyle
	case feedback.HintAcceptable:
		return warningStyle
	default:
		return errorStyle
	}
}
