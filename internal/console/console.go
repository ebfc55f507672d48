package console

import (
	"io"
	"os"
	"sync"

	"github.com/harrison/consoleprogress/internal/logger"
	"github.com/harrison/consoleprogress/internal/terminal"
)

// ErrorLogger receives failures that cannot be returned to any caller, such
// as a failed drain of buffered output during Uninstall.
type ErrorLogger interface {
	LogError(message string)
}

// Console owns the process output streams and the progress line. A single
// mutex guards every field; all screen mutations (forwarded lines, progress
// updates, install and uninstall) are serialized through it.
type Console struct {
	mu   sync.Mutex
	caps terminal.Capabilities

	// depth counts nested Install calls.
	depth int

	// currentOut and currentErr are the sinks Stdout and Stderr write to.
	// While installed they are the forwarders.
	currentOut io.Writer
	currentErr io.Writer

	// originalOut and originalErr are the sinks captured by the outermost
	// Install. Progress output always goes straight to originalOut.
	originalOut io.Writer
	originalErr io.Writer

	// fwdOut and fwdErr are non-nil iff depth > 0 and caps.Terminal.
	fwdOut *forwarder
	fwdErr *forwarder

	// progress is the text currently shown; shown is false when no progress
	// line is on screen.
	progress string
	shown    bool

	errLog ErrorLogger

	stdout *Stream
	stderr *Stream
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process-wide Console bound to os.Stdout, os.Stderr and
// the detected terminal capabilities. It is created on first use and lives
// for the rest of the process.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New(os.Stdout, os.Stderr)
	})
	return defaultConsole
}

// New creates a Console over the given sinks using the detected process
// capabilities.
func New(stdout, stderr io.Writer) *Console {
	return NewWithCapabilities(stdout, stderr, terminal.Detect())
}

// NewWithCapabilities creates a Console over the given sinks with explicit
// capabilities. It is the constructor to use when output is not the process
// terminal, for example in tests.
func NewWithCapabilities(stdout, stderr io.Writer, caps terminal.Capabilities) *Console {
	c := &Console{
		caps:       caps,
		currentOut: stdout,
		currentErr: stderr,
	}
	c.stdout = &Stream{console: c, errStream: false}
	c.stderr = &Stream{console: c, errStream: true}
	return c
}

// Capabilities returns the capabilities the Console was created with.
func (c *Console) Capabilities() terminal.Capabilities {
	return c.caps
}

// SetErrorLogger replaces the logger used for failures that have no caller
// to return to. By default such failures are logged to the original
// standard error sink. l is called with the console lock held and must not
// write through this console's streams.
func (c *Console) SetErrorLogger(l ErrorLogger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errLog = l
}

// reportLocked logs message through the configured error logger. c.mu must
// be held.
func (c *Console) reportLocked(message string) {
	l := c.errLog
	if l == nil {
		sink := c.originalErr
		if sink == nil {
			sink = c.currentErr
		}
		l = logger.NewConsoleLoggerWithColor(sink, "error", c.caps.ANSI)
	}
	l.LogError(message)
}

// Stream is the writer handed to callers in place of a raw output stream.
// It forwards every Write to the Console's current sink for that stream, so
// a Stream obtained before Install starts buffering as soon as Install runs.
type Stream struct {
	console   *Console
	errStream bool
}

// Write writes p to the current sink while holding the console lock, so a
// single Write is never split by another goroutine's output or a progress
// redraw.
func (s *Stream) Write(p []byte) (int, error) {
	c := s.console
	c.mu.Lock()
	defer c.mu.Unlock()

	sink := c.currentOut
	if s.errStream {
		sink = c.currentErr
	}
	if sink == nil {
		return len(p), nil
	}
	return sink.Write(p)
}

// ANSI reports whether output written to the stream may carry ANSI escape
// sequences.
func (s *Stream) ANSI() bool {
	return s.console.caps.ANSI
}

// Stdout returns the standard output indirection. All code that may print
// while a progress line is visible must write through it.
func (c *Console) Stdout() *Stream {
	return c.stdout
}

// Stderr returns the standard error indirection.
func (c *Console) Stderr() *Stream {
	return c.stderr
}

// Stdout returns the default console's standard output indirection.
func Stdout() *Stream {
	return Default().Stdout()
}

// Stderr returns the default console's standard error indirection.
func Stderr() *Stream {
	return Default().Stderr()
}

// Install installs the default console's forwarders.
func Install() {
	Default().Install()
}

// Uninstall uninstalls the default console's forwarders.
func Uninstall() {
	Default().Uninstall()
}

// Intercept runs fn with the default console's forwarders installed.
func Intercept(fn func() error) error {
	return Default().Intercept(fn)
}

// Show displays text on the default console's progress line.
func Show(text string) error {
	return Default().Show(text)
}

// Hide clears the default console's progress line.
func Hide() error {
	return Default().Hide()
}
