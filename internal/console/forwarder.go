package console

import (
	"bytes"
	"fmt"
	"io"
)

// initialBufferSize matches a typical terminal line with room to spare; the
// buffer grows without bound beyond it.
const initialBufferSize = 4096

// forwarder buffers bytes written to one stream and hands each completed line
// to its Console, which erases the progress line, drains the buffer to the
// real sink and redraws the progress line.
//
// Every method must be called with console.mu held; the Stream that wraps a
// forwarder takes care of that.
type forwarder struct {
	console *Console
	sink    io.Writer
	buf     []byte
}

func newForwarder(c *Console, sink io.Writer) *forwarder {
	return &forwarder{
		console: c,
		sink:    sink,
		buf:     make([]byte, 0, initialBufferSize),
	}
}

// Write appends p to the buffer and completes one line for every newline in
// p. On a sink failure it returns the bytes consumed so far, which include the
// line that failed to drain; those bytes stay buffered.
func (f *forwarder) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			f.buf = append(f.buf, p...)
			return n + len(p), nil
		}

		f.buf = append(f.buf, p[:i+1]...)
		n += i + 1
		p = p[i+1:]

		if err := f.console.completeLineLocked(f); err != nil {
			return n, err
		}
	}
	return n, nil
}

// flush writes the buffered bytes to the sink whether or not a line
// terminator was seen and empties the buffer. Bytes the sink did not accept
// are kept for the next attempt.
func (f *forwarder) flush() error {
	if len(f.buf) == 0 {
		return nil
	}

	n, err := f.sink.Write(f.buf)
	if err != nil {
		if n > 0 && n <= len(f.buf) {
			f.buf = f.buf[:copy(f.buf, f.buf[n:])]
		}
		return fmt.Errorf("failed to forward buffered output: %w", err)
	}

	f.buf = f.buf[:0]
	return flushSink(f.sink)
}

// buffered returns the number of bytes waiting for a line terminator.
func (f *forwarder) buffered() int {
	return len(f.buf)
}

// flushSink flushes sinks that buffer internally, such as bufio.Writer.
// *os.File writes are unbuffered and need nothing.
func flushSink(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
	}
	return nil
}
