package tui

import "strings"

const bigClockRows = 5

// bigGlyphs is a block font for the countdown clock. Every glyph is
// rectangular: bigClockRows rows of equal width.
var bigGlyphs = map[rune][]string{
	'0': {
		"█████",
		"█   █",
		"█   █",
		"█   █",
		"█████",
	},
	'1': {
		"   ██",
		"   ██",
		"   ██",
		"   ██",
		"   ██",
	},
	'2': {
		"█████",
		"    █",
		"█████",
		"█    ",
		"█████",
	},
	'3': {
		"█████",
		"    █",
		" ████",
		"    █",
		"█████",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"█████",
		"    █",
		"█████",
	},
	'6': {
		"█████",
		"█    ",
		"█████",
		"█   █",
		"█████",
	},
	'7': {
		"█████",
		"    █",
		"    █",
		"    █",
		"    █",
	},
	'8': {
		"█████",
		"█   █",
		"█████",
		"█   █",
		"█████",
	},
	'9': {
		"█████",
		"█   █",
		"█████",
		"    █",
		"█████",
	},
	':': {
		"  ",
		"██",
		"  ",
		"██",
		"  ",
	},
}

// renderBigClock renders a clock string in the block font. Characters
// without a glyph are skipped.
func renderBigClock(clock string) string {
	rows := make([]string, bigClockRows)
	for _, r := range clock {
		glyph, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := 0; i < bigClockRows; i++ {
			if rows[i] != "" {
				rows[i] += "  "
			}
			rows[i] += glyph[i]
		}
	}
	return strings.Join(rows, "\n")
}
