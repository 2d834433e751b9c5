package config

import "time"

// Timer durations.
const (
	WorkDuration       = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
)

// Session cycle settings.
const (
	// SessionsPerCycle is how many work sessions precede a long break.
	SessionsPerCycle = 4
)

// Application settings.
const (
	AppName = "pomotick"
)
