package display

import (
	"fmt"
	"time"
)

// fillChars are the partial block glyphs, from empty to a full cell in
// eighths.
var fillChars = []rune(" ▏▎▍▌▋▊▉█")

// SolidBar renders fraction (0..1) as width cells of Unicode block
// characters, filling the boundary cell in eighths.
func SolidBar(width int, fraction float64) string {
	if width < 1 {
		return ""
	}

	steps := len(fillChars) - 1
	cells := make([]rune, width)
	for i := range cells {
		x := int((float64(width)*fraction - float64(i)) * float64(steps))
		if x < 0 {
			x = 0
		}
		if x > steps {
			x = steps
		}
		cells[i] = fillChars[x]
	}
	return string(cells)
}

var spinChars = []rune{'/', '-', '\\', '|'}

// Spinner returns the spinner glyph for step.
func Spinner(step int) rune {
	if step < 0 {
		step = -step
	}
	return spinChars[step%len(spinChars)]
}

// Percent returns cur as an integer percentage of total, 0 when total is 0.
// The result is not clamped.
func Percent(cur, total int) int {
	if total == 0 {
		return 0
	}
	return cur * 100 / total
}

// FormatClock formats d as H:MM:SS. Negative durations format as 0:00:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
