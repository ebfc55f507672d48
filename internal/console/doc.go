// Package console keeps a single progress line at the bottom of the terminal
// while other code keeps printing ordinary lines to standard output and
// standard error.
//
// # Streams
//
// Go cannot swap os.Stdout for an arbitrary writer, so the Console hands out
// Stream writers instead. Code that prints while progress may be visible
// writes through them:
//
//	out := console.Stdout()
//	fmt.Fprintln(out, "fetched index")
//
// # Interception
//
// Install replaces the sinks behind the streams with line buffering
// forwarders. Every completed line erases the progress line, is written to
// the real sink and is followed by a redraw of the progress line. Uninstall
// drains unterminated partial lines and restores the sinks. Calls nest, and
// Intercept brackets a function with both:
//
//	err := console.Intercept(func() error {
//	    for i := 0; i <= total; i++ {
//	        console.Show(fmt.Sprintf("[%d/%d]", i, total))
//	        work(i) // may log through console.Stdout() from any goroutine
//	    }
//	    return console.Hide()
//	})
//
// When standard output is not a terminal, Install, Show and Hide do nothing
// and the streams write straight through.
//
// # Locking
//
// One mutex per Console serializes forwarded lines, progress updates and
// install/uninstall. A single Write through a Stream is never interleaved
// with another goroutine's output or a redraw.
package console
