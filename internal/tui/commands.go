package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// tickMsg advances the countdown once per second. The sequence number ties
// the message to the chain that scheduled it; a message from a superseded
// chain must be dropped, otherwise a quick pause/resume would double-drive
// the engine.
type tickMsg struct {
	seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}
