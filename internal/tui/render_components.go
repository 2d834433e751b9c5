package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"pomotick/internal/config"
)

func (m Model) renderHeader() string {
	mt := m.theme.ForMode(m.eng.Mode())
	badge := mt.Badge.Render(m.eng.Mode().Label())
	session := m.theme.Dim.Render(fmt.Sprintf("Session %d", m.eng.DisplaySession()))
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", session)
}

// renderClock shows the block-font countdown, or plain MM:SS when the window
// is too narrow for it.
func (m Model) renderClock() string {
	mt := m.theme.ForMode(m.eng.Mode())
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return mt.Accent.Render(m.eng.Clock())
	}
	return mt.Accent.Render(renderBigClock(m.eng.Clock()))
}

// renderDots shows the position within the four-session cycle, with the
// accumulated focus time once there is any.
func (m Model) renderDots() string {
	mt := m.theme.ForMode(m.eng.Mode())
	filled := m.eng.DotsFilled()
	parts := make([]string, 0, config.SessionsPerCycle)
	for i := 0; i < config.SessionsPerCycle; i++ {
		if i < filled {
			parts = append(parts, mt.Accent.Render(config.DotFilled))
		} else {
			parts = append(parts, m.theme.DotOff.Render(config.DotEmpty))
		}
	}
	line := strings.Join(parts, " ")
	if total := m.eng.FocusTotal(); total > 0 {
		line += m.theme.Dim.Render(fmt.Sprintf("   %s focused", FormatDuration(total)))
	}
	return line
}

func (m Model) renderStatus() string {
	if !m.eng.Running() {
		return m.theme.Paused.Render("PAUSED")
	}
	if m.eng.Mode().IsBreak() {
		return m.theme.Running.Render("RESTING")
	}
	return m.theme.Running.Render("RUNNING")
}

// renderMessage caps the transient message to the window so long report
// paths cannot stretch the layout.
func (m Model) renderMessage() string {
	if m.message == "" {
		return ""
	}
	msg := m.message
	if max := m.width - 8; m.width > 8 && ansi.StringWidth(msg) > max {
		msg = ansi.Truncate(msg, max-1, "…")
	}
	return m.theme.Message.Render(msg)
}

func (m Model) renderFooter() string {
	helpView := m.help.View(m.keys)
	version := m.theme.Dim.Render("  v" + versionLabel())
	return lipgloss.JoinHorizontal(lipgloss.Center, helpView, version)
}
