package display

import (
	"fmt"
	"strings"

	"github.com/harrison/consoleprogress/internal/terminal"
)

// Bar represents an ASCII progress bar with color support.
// A Bar is not safe for concurrent use.
type Bar struct {
	current int
	total   int
	width   int
	caps    terminal.Capabilities
}

// NewBar creates a new progress bar. Widths below 1 fall back to 10.
func NewBar(total, width int, caps terminal.Capabilities) *Bar {
	if width < 1 {
		width = 10
	}
	return &Bar{
		total: total,
		width: width,
		caps:  caps,
	}
}

// Update sets the current progress value
func (b *Bar) Update(current int) {
	b.current = current
}

// Increment increments the current progress by 1
func (b *Bar) Increment() {
	b.current++
}

// Render generates the progress bar string, e.g. "[=====     ] 5/10 (50%)".
// One "=" is drawn per completed unit when total equals width; otherwise the
// filled part is proportional to the percentage.
func (b *Bar) Render() string {
	perc := clampPercent(Percent(b.current, b.total))

	filled := (perc * b.width) / 100
	if filled > b.width {
		filled = b.width
	}

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", b.width-filled) + "]"
	result := fmt.Sprintf("%s %d/%d (%d%%)", bar, b.current, b.total, perc)

	if perc < 100 {
		return b.caps.Style().FgCyan().Sprint(result)
	}
	return b.caps.Style().FgGreen().Sprint(result)
}

func clampPercent(perc int) int {
	if perc > 100 {
		return 100
	}
	if perc < 0 {
		return 0
	}
	return perc
}
