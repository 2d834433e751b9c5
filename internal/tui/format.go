package tui

import (
	"fmt"
	"time"

	"pomotick/internal/engine"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// completionMessage announces the interval that just started.
func completionMessage(next engine.Mode) string {
	switch next {
	case engine.ModeShortBreak:
		return "Focus session complete. Time for a short break."
	case engine.ModeLongBreak:
		return "Cycle complete. Take a long break, you earned it."
	default:
		return "Break over. Ready for the next focus session."
	}
}
