package tui

import (
	"time"

	"pomotick/internal/engine"
)

// Engine defines the countdown operations and queries the TUI requires.
//
//go:generate mockgen -source=engine.go -destination=mock_engine_test.go -package=tui
type Engine interface {
	Start()
	Pause()
	Toggle()
	Reset()
	Skip()
	Tick()

	Mode() engine.Mode
	Running() bool
	Remaining() int
	Sessions() int
	Clock() string
	Progress() float64
	DotsFilled() int
	FocusTotal() time.Duration
	DisplaySession() int
	History() []engine.Completion
}

var _ Engine = (*engine.Engine)(nil)
