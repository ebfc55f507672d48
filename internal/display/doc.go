// Package display renders the text that goes onto progress lines and the
// scrolling status output around them.
//
// # Progress text
//
// Bar renders an ASCII bar with counters:
//
//	bar := display.NewBar(total, 50, caps)
//	bar.Update(done)
//	console.Show(bar.Render()) // "[=====     ] 5/10 (50%)"
//
// SolidBar renders a fraction with Unicode block characters, filling the
// boundary cell in eighths, and Spinner cycles through "/-\|":
//
//	console.Show("Reading │" + display.SolidBar(50, 0.37) + "│")
//
// FormatClock and Percent format elapsed time and integer percentages.
//
// # Step output
//
// ProgressIndicator prints one "[N/Total] name" line per step, and Warning
// prints a multi-line warning. Both write each line in a single call, so they
// can target an intercepted console stream.
//
// Colors come from terminal.Style and vanish when the capabilities passed in
// disable ANSI.
package display
