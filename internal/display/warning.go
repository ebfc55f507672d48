package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/consoleprogress/internal/terminal"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Details    []string // Numbered detail lines (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when caps allow ANSI.
// The whole warning is written with a single Write.
func (w Warning) Display(out io.Writer, caps terminal.Capabilities) {
	var b strings.Builder

	b.WriteString(caps.Style().FgYellow().String())
	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Details) > 0 {
		b.WriteString("    ")
		if len(w.Details) == 1 {
			b.WriteString("Detail:\n")
		} else {
			b.WriteString("Details:\n")
		}

		for i, detail := range w.Details {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, detail))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString(caps.Style().Reset().String())

	fmt.Fprint(out, b.String())
}

// WarnNoTerminal creates the warning shown when progress display is
// unavailable because standard output is redirected.
func WarnNoTerminal(caps terminal.Capabilities) Warning {
	details := []string{fmt.Sprintf("terminal output: %t", caps.Terminal), fmt.Sprintf("ANSI enabled: %t", caps.ANSI)}
	return Warning{
		Title:      "Progress display disabled",
		Message:    "Standard output is not an interactive terminal; only log lines will be printed.",
		Details:    details,
		Suggestion: "Run without redirecting standard output to see the progress line.",
	}
}
