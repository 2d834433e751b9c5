package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"pomotick/internal/config"
	"pomotick/internal/util"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.MaxProgressWidth)
	}
	return m, nil
}

// handleTick applies one second to the engine and re-arms the chain while the
// countdown is still running. Ticks from a superseded chain, or delivered
// after the countdown stopped, are dropped without touching the engine.
func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	if msg.seq != m.tickSeq {
		return m, nil
	}
	if !m.eng.Running() {
		return m, nil
	}

	before := m.eng.Mode()
	m.eng.Tick()

	var cmds []tea.Cmd
	if after := m.eng.Mode(); after != before {
		m.message = completionMessage(after)
		m.progress = m.newProgressBar(m.progress.Width)
	} else {
		cmds = append(cmds, m.progress.SetPercent(m.eng.Progress()))
	}
	if m.eng.Running() {
		cmds = append(cmds, tickCmd(m.tickSeq))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleProgressFrame(msg progress.FrameMsg) (Model, tea.Cmd) {
	newProg, cmd := m.progress.Update(msg)
	m.progress = newProg.(progress.Model)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Transient messages clear on the next keypress.
	if m.message != "" {
		m.message = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()
	case key.Matches(msg, m.keys.Reset):
		return m.handleReset()
	case key.Matches(msg, m.keys.Skip):
		return m.handleSkip()
	case key.Matches(msg, m.keys.Report):
		return m.handleReport()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// handleToggle starts or pauses the countdown. Starting arms a fresh tick
// chain; the sequence bump invalidates any tick still in flight from an
// earlier chain.
func (m Model) handleToggle() (Model, tea.Cmd) {
	m.eng.Toggle()
	if !m.eng.Running() {
		return m, nil
	}
	m.tickSeq++
	return m, tickCmd(m.tickSeq)
}

func (m Model) handleReset() (Model, tea.Cmd) {
	m.eng.Reset()
	return m, m.progress.SetPercent(0)
}

func (m Model) handleSkip() (Model, tea.Cmd) {
	m.eng.Skip()
	m.message = completionMessage(m.eng.Mode())
	m.progress = m.newProgressBar(m.progress.Width)
	return m, nil
}

func (m Model) handleReport() (Model, tea.Cmd) {
	path, err := WriteReport(util.ReportsDir(config.AppName), m.eng)
	if err != nil {
		util.LogError("report export", err)
		m.message = fmt.Sprintf("Report export failed: %v", err)
		return m, nil
	}
	m.message = fmt.Sprintf("Report saved: %s", path)
	return m, nil
}
