package console

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Show replaces the progress line with text. The line is redrawn with a
// carriage return; when text is shorter than the previous progress text the
// leftover characters are overwritten with spaces and the cursor is moved back
// over them with backspaces. Show is a no-op when output is not a terminal.
//
// Progress output bypasses the forwarders and goes straight to the real
// standard output sink.
func (c *Console) Show(text string) error {
	return c.show(text, true)
}

// Hide erases the progress line. Calling Hide when nothing is shown only
// returns the cursor to the start of the line.
func (c *Console) Hide() error {
	return c.show("", false)
}

// Progress returns the text currently shown and whether a progress line is
// shown at all.
func (c *Console) Progress() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress, c.shown
}

func (c *Console) show(text string, visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.caps.Terminal {
		return nil
	}

	previous := c.shownLengthLocked()
	current := 0

	line := make([]byte, 0, 1+len(text)+2*previous)
	line = append(line, '\r')
	if visible {
		line = append(line, text...)
		current = utf8.RuneCountInString(text)
	}
	line = appendBlank(line, previous-current)

	c.progress = text
	c.shown = visible

	return writeAndFlush(c.realOutLocked(), line, "draw progress line")
}

// completeLineLocked drains a forwarder that just received a line terminator:
// the progress line is erased, the buffered line is written, and the
// progress line is drawn again below it. The three steps run under one hold
// of c.mu.
func (c *Console) completeLineLocked(f *forwarder) error {
	if err := c.eraseLocked(); err != nil {
		return err
	}
	err := f.flush()
	if redrawErr := c.redrawLocked(); err == nil {
		err = redrawErr
	}
	return err
}

// eraseLocked blanks the progress line and leaves the cursor at its start.
func (c *Console) eraseLocked() error {
	if !c.shown {
		return nil
	}

	n := c.shownLengthLocked()
	line := make([]byte, 0, 1+2*n)
	line = append(line, '\r')
	line = appendBlank(line, n)

	return writeAndFlush(c.realOutLocked(), line, "erase progress line")
}

// redrawLocked prints the stored progress text at the cursor, which is at the
// start of a fresh line after a forwarded line was written.
func (c *Console) redrawLocked() error {
	if !c.shown || c.progress == "" {
		return nil
	}
	return writeAndFlush(c.realOutLocked(), []byte(c.progress), "redraw progress line")
}

// shownLengthLocked returns the length in runes of the visible progress text.
func (c *Console) shownLengthLocked() int {
	if !c.shown {
		return 0
	}
	return utf8.RuneCountInString(c.progress)
}

// realOutLocked returns the sink progress output goes to: the original
// standard output while installed, otherwise the current one.
func (c *Console) realOutLocked() io.Writer {
	if c.fwdOut != nil {
		return c.fwdOut.sink
	}
	return c.currentOut
}

// appendBlank overwrites n characters with spaces and moves the cursor back
// over them. Nothing is appended for n <= 0.
func appendBlank(line []byte, n int) []byte {
	for i := 0; i < n; i++ {
		line = append(line, ' ')
	}
	for i := 0; i < n; i++ {
		line = append(line, '\b')
	}
	return line
}

func writeAndFlush(w io.Writer, p []byte, what string) error {
	if w == nil {
		return nil
	}
	if _, err := w.Write(p); err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	return flushSink(w)
}
