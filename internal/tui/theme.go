package tui

import (
	"github.com/charmbracelet/lipgloss"
	"pomotick/internal/engine"
)

// ModeTheme carries the accent styling and progress gradient for one
// interval kind.
type ModeTheme struct {
	Accent    lipgloss.Style
	Badge     lipgloss.Style
	GradientA string
	GradientB string
}

// Theme bundles the lipgloss styles used by the screen.
type Theme struct {
	Base    lipgloss.Style
	Frame   lipgloss.Style
	Running lipgloss.Style
	Paused  lipgloss.Style
	DotOff  lipgloss.Style
	Dim     lipgloss.Style
	Message lipgloss.Style

	Work       ModeTheme
	ShortBreak ModeTheme
	LongBreak  ModeTheme
}

// ForMode returns the mode-specific styling. Work is the fallback.
func (t Theme) ForMode(m engine.Mode) ModeTheme {
	switch m {
	case engine.ModeShortBreak:
		return t.ShortBreak
	case engine.ModeLongBreak:
		return t.LongBreak
	default:
		return t.Work
	}
}

func modeTheme(accent, gradientEnd string) ModeTheme {
	return ModeTheme{
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Badge:     lipgloss.NewStyle().Background(lipgloss.Color(accent)).Foreground(lipgloss.Color("230")).Bold(true).Padding(0, 1),
		GradientA: accent,
		GradientB: gradientEnd,
	}
}

// CurrentTheme holds the active theme. There is a single built-in palette;
// the accent tracks the interval kind (warm red for focus, teal for short
// breaks, blue for long breaks).
var CurrentTheme = Theme{
	Base:    lipgloss.NewStyle().Margin(1, 2),
	Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4),
	Running: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	DotOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),

	Work:       modeTheme("#E46A5C", "#F2A65A"),
	ShortBreak: modeTheme("#2AA198", "#58C7B6"),
	LongBreak:  modeTheme("#4A90D9", "#7FB3E8"),
}
