package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 48

	// TargetProgressWidth is the preferred width for the countdown bar.
	TargetProgressWidth = 40

	// MinProgressWidth is the minimum width for the countdown bar.
	MinProgressWidth = 16

	// MaxProgressWidth is the maximum width for the countdown bar.
	MaxProgressWidth = 60
)

// Display glyphs.
const (
	// DotFilled marks a completed session in the cycle indicator.
	DotFilled = "●"

	// DotEmpty marks a remaining session in the cycle indicator.
	DotEmpty = "○"
)
