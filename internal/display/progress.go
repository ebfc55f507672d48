package display

import (
	"fmt"
	"io"

	"github.com/harrison/consoleprogress/internal/terminal"
)

// ProgressIndicator announces the steps of a multi-step run, one line each.
// It is for scrolling output; the transient progress line is the console's.
type ProgressIndicator struct {
	writer  io.Writer
	caps    terminal.Capabilities
	total   int
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int, caps terminal.Capabilities) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		caps:   caps,
		total:  total,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(title string) {
	fmt.Fprintf(p.writer, "%s:\n", title)
}

// Step displays progress for the next item: [N/Total] name (cyan)
func (p *ProgressIndicator) Step(name string) {
	p.current++
	line := fmt.Sprintf("  [%d/%d] %s", p.current, p.total, name)
	fmt.Fprintln(p.writer, p.caps.Style().FgCyan().Sprint(line))
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete(noun string) {
	check := p.caps.Style().FgGreen().Sprint("✓")
	fmt.Fprintf(p.writer, "%s Ran %d %s\n", check, p.current, noun)
}
