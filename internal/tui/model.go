package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pomotick/internal/config"
)

// Model is the bubbletea model for the timer screen. It owns the engine and
// the per-second tick chain that drives it while the countdown runs.
type Model struct {
	eng      Engine
	keys     keyMap
	help     help.Model
	progress progress.Model
	theme    Theme

	width    int
	height   int
	tickSeq  int
	message  string
	quitting bool
}

// NewModel builds the timer screen around an engine.
func NewModel(eng Engine) Model {
	m := Model{
		eng:   eng,
		keys:  newKeyMap(),
		help:  help.New(),
		theme: CurrentTheme,
	}
	m.progress = m.newProgressBar(config.TargetProgressWidth)
	return m
}

// newProgressBar builds the countdown bar with the current mode's gradient.
func (m Model) newProgressBar(width int) progress.Model {
	mt := m.theme.ForMode(m.eng.Mode())
	return progress.New(
		progress.WithGradient(mt.GradientA, mt.GradientB),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// Init implements tea.Model. The engine starts paused, so no tick chain is
// armed yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tickMsg:
		return m.handleTick(msg)
	case progress.FrameMsg:
		return m.handleProgressFrame(msg)
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	mt := m.theme.ForMode(m.eng.Mode())
	card := m.theme.Frame.BorderForeground(lipgloss.Color(mt.GradientA)).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			m.renderHeader(),
			"",
			m.renderClock(),
			"",
			m.progress.View(),
			"",
			m.renderDots(),
			m.renderStatus(),
		),
	)

	sections := []string{
		mt.Accent.Render(strings.ToUpper(config.AppName)),
		card,
	}
	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, msg)
	}
	sections = append(sections, m.renderFooter())
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return m.theme.Base.Render(body)
}
