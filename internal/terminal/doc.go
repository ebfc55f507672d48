// Package terminal decides whether the process writes to an interactive
// terminal and builds ANSI SGR escape sequences for it.
//
// # Capabilities
//
// Detect inspects standard output once per process and freezes the result:
//
//	caps := terminal.Detect()
//	if caps.Terminal {
//	    // carriage-return redraw is meaningful
//	}
//
// ANSI output is enabled only when standard output is a terminal, TERM is set
// to a non-empty value and NO_COLOR is not set.
//
// # Styles
//
// Style is a chaining builder over SGR codes:
//
//	warn := terminal.NewStyle().Bold().FgYellow()
//	reset := terminal.NewStyle().Reset()
//	fmt.Fprintln(w, warn.String()+"careful"+reset.String())
//
// When ANSI is disabled every Style renders to "", so callers never need to
// branch on the capability themselves.
package terminal
