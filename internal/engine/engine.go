// Package engine implements the pomodoro countdown state machine: fixed-length
// work and break intervals advanced one second at a time by an external
// driver, with a long break after every fourth completed work session.
package engine

import (
	"time"

	"pomotick/internal/config"
)

// Completion records one finished interval.
type Completion struct {
	Mode Mode
	At   time.Time
}

// Engine is the countdown state machine. It owns no clock: the presentation
// layer delivers Tick once per second while the countdown is running and
// stops delivering when it is not. Methods are not safe for concurrent use;
// everything runs on the UI event loop.
type Engine struct {
	mode      Mode
	remaining int
	running   bool
	sessions  int
	history   []Completion
	now       func() time.Time
}

// New returns an engine paused at the start of a work interval.
func New() *Engine {
	return &Engine{
		mode:      ModeWork,
		remaining: ModeWork.Seconds(),
		now:       time.Now,
	}
}

// Start begins advancing the countdown. Starting a running engine is a no-op.
func (e *Engine) Start() {
	e.running = true
}

// Pause stops advancing the countdown. The remaining time is kept.
func (e *Engine) Pause() {
	e.running = false
}

// Toggle pauses a running countdown and starts a paused one.
func (e *Engine) Toggle() {
	e.running = !e.running
}

// Reset pauses the countdown and restores the full duration of the current
// mode. The mode and the session counter are unchanged.
func (e *Engine) Reset() {
	e.running = false
	e.remaining = e.mode.Seconds()
}

// Skip forces the current interval to complete immediately, whether or not
// the countdown is running.
func (e *Engine) Skip() {
	e.remaining = 0
	e.complete()
}

// Tick advances the countdown by one second. Ticks delivered while paused
// have no effect. Reaching zero triggers the completion transition, which
// always leaves the engine paused.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining <= 0 {
		e.remaining = 0
		e.complete()
	}
}

// complete moves to the next interval. A finished work session increments the
// counter and enters a break, the long one after every fourth session; a
// finished break returns to work. The engine never restarts itself.
func (e *Engine) complete() {
	finished := e.mode
	e.running = false
	if e.mode == ModeWork {
		e.sessions++
		if e.sessions%config.SessionsPerCycle == 0 {
			e.mode = ModeLongBreak
		} else {
			e.mode = ModeShortBreak
		}
	} else {
		e.mode = ModeWork
	}
	e.remaining = e.mode.Seconds()
	e.history = append(e.history, Completion{Mode: finished, At: e.now()})
}

// Mode returns the current interval kind.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Running reports whether the countdown is advancing.
func (e *Engine) Running() bool {
	return e.running
}

// Remaining returns the seconds left in the current interval.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Sessions returns the number of completed work intervals.
func (e *Engine) Sessions() int {
	return e.sessions
}

// Clock returns the remaining time as MM:SS.
func (e *Engine) Clock() string {
	return FormatClock(e.remaining)
}

// Progress returns the elapsed fraction of the current interval in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.mode.Seconds()
	if total <= 0 {
		return 0
	}
	frac := float64(total-e.remaining) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// DotsFilled returns how many cycle indicator dots are lit, out of
// config.SessionsPerCycle. The count wraps to zero when a long break starts.
func (e *Engine) DotsFilled() int {
	return e.sessions % config.SessionsPerCycle
}

// FocusTotal returns the accumulated focus time across completed sessions.
func (e *Engine) FocusTotal() time.Duration {
	return time.Duration(e.sessions) * config.WorkDuration
}

// DisplaySession returns the 1-based session number for the header. During a
// break it already points at the upcoming work session.
func (e *Engine) DisplaySession() int {
	return e.sessions + 1
}

// History returns the completed intervals in order, oldest first.
func (e *Engine) History() []Completion {
	out := make([]Completion, len(e.history))
	copy(out, e.history)
	return out
}
