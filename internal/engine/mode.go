package engine

import (
	"fmt"
	"time"

	"pomotick/internal/config"
)

// Mode identifies which interval the countdown is in.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Duration returns the fixed length of the interval. Unknown modes fall back
// to the work duration.
func (m Mode) Duration() time.Duration {
	switch m {
	case ModeShortBreak:
		return config.ShortBreakDuration
	case ModeLongBreak:
		return config.LongBreakDuration
	default:
		return config.WorkDuration
	}
}

// Seconds returns the interval length in whole seconds.
func (m Mode) Seconds() int {
	return int(m.Duration() / time.Second)
}

// Label returns the display name of the interval.
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// IsBreak reports whether the mode is a rest interval.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// FormatClock renders a second count as zero-padded MM:SS. Negative input
// clamps to "00:00"; minutes above 59 are not wrapped.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
