package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/consoleprogress/internal/logger"
	"github.com/harrison/consoleprogress/internal/terminal"
)

var tty = terminal.Capabilities{Terminal: true}

// erase is the byte sequence that blanks n characters and returns over them.
func erase(n int) string {
	return strings.Repeat(" ", n) + strings.Repeat("\b", n)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) LogError(message string) {
	l.messages = append(l.messages, message)
}

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewWithCapabilities(out, errOut, tty), out, errOut
}

func TestScenarioByteSequence(t *testing.T) {
	c, out, errOut := newTestConsole(t)

	c.Install()
	require.NoError(t, c.Show("[== ]"))
	_, err := fmt.Fprint(c.Stdout(), "hello\n")
	require.NoError(t, err)
	require.NoError(t, c.Show("[===]"))
	require.NoError(t, c.Hide())
	c.Uninstall()

	want := "\r[== ]" +
		"\r" + erase(5) + "hello\n" + "[== ]" +
		"\r[===]" +
		"\r" + erase(5)
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String())
	assert.False(t, c.Intercepting())

	// Streams write straight through once restored.
	fmt.Fprint(c.Stdout(), "after")
	assert.True(t, strings.HasSuffix(out.String(), "after"))
}

func TestLoggerLineScrollsAboveProgress(t *testing.T) {
	c, out, _ := newTestConsole(t)
	log := logger.NewConsoleLoggerWithColor(c.Stdout(), "info", false)

	c.Install()
	require.NoError(t, c.Show("[== ]"))
	out.Reset()

	log.LogInfo("fetched index")
	log.LogDebug("filtered out")

	want := regexp.MustCompile(`^\r {5}\x08{5}\[\d{2}:\d{2}:\d{2}\] \[INFO\] fetched index\n\[== \]$`)
	assert.Regexp(t, want, out.String())

	require.NoError(t, c.Hide())
	c.Uninstall()
}

func TestHideIsIdempotent(t *testing.T) {
	c, out, _ := newTestConsole(t)

	require.NoError(t, c.Show("abc"))
	require.NoError(t, c.Hide())
	afterFirst := out.String()
	require.NoError(t, c.Hide())

	assert.Equal(t, "\rabc\r"+erase(3), afterFirst)
	assert.Equal(t, afterFirst+"\r", out.String())

	text, shown := c.Progress()
	assert.False(t, shown)
	assert.Empty(t, text)
}

func TestShowErasesLengthDifference(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		fill   int
	}{
		{"shorter by one", "abcd", "abc", 1},
		{"much shorter", "[==========] 10/50", "[=] 1", 13},
		{"to empty", "12345", "", 5},
		{"same length", "abc", "xyz", 0},
		{"longer", "ab", "abcdef", 0},
		{"runes not bytes", "ééé", "é", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestConsole(t)

			require.NoError(t, c.Show(tt.first))
			out.Reset()
			require.NoError(t, c.Show(tt.second))

			assert.Equal(t, "\r"+tt.second+erase(tt.fill), out.String())
			assert.Equal(t, tt.fill, strings.Count(out.String(), "\b"))

			text, shown := c.Progress()
			assert.True(t, shown)
			assert.Equal(t, tt.second, text)
		})
	}
}

func TestShowIsNoopWithoutTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewWithCapabilities(out, &bytes.Buffer{}, terminal.Capabilities{})

	c.Install()
	assert.True(t, c.Installed())
	assert.False(t, c.Intercepting())

	require.NoError(t, c.Show("progress"))
	fmt.Fprint(c.Stdout(), "partial")
	require.NoError(t, c.Hide())
	c.Uninstall()

	assert.Equal(t, "partial", out.String())
	_, shown := c.Progress()
	assert.False(t, shown)
}

func TestReentrantInstall(t *testing.T) {
	c, out, _ := newTestConsole(t)

	c.Install()
	c.Install()
	assert.True(t, c.Intercepting())

	c.Uninstall()
	assert.True(t, c.Installed())
	assert.True(t, c.Intercepting(), "streams must stay intercepted while an outer install is active")

	fmt.Fprint(c.Stdout(), "partial")
	assert.Empty(t, out.String(), "partial line must stay buffered")

	c.Uninstall()
	assert.False(t, c.Installed())
	assert.False(t, c.Intercepting())
	assert.Equal(t, "partial", out.String())
}

func TestPartialLineWaitsForTerminator(t *testing.T) {
	c, out, _ := newTestConsole(t)
	c.Install()
	defer c.Uninstall()

	fmt.Fprint(c.Stdout(), "xxx")
	assert.Empty(t, out.String())
	assert.Equal(t, 3, c.fwdOut.buffered())

	fmt.Fprint(c.Stdout(), "yyy\n")
	assert.Equal(t, "xxxyyy\n", out.String())
	assert.Equal(t, 0, c.fwdOut.buffered())
}

func TestEveryLineInOneWriteRedraws(t *testing.T) {
	c, out, _ := newTestConsole(t)
	c.Install()
	defer c.Uninstall()

	require.NoError(t, c.Show("P"))
	out.Reset()

	n, err := c.Stdout().Write([]byte("a\nb\nc"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	want := "\r" + erase(1) + "a\n" + "P" +
		"\r" + erase(1) + "b\n" + "P"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, c.fwdOut.buffered())
}

func TestStderrLineErasesProgressOnStdout(t *testing.T) {
	c, out, errOut := newTestConsole(t)
	c.Install()
	defer c.Uninstall()

	require.NoError(t, c.Show("working"))
	out.Reset()

	fmt.Fprintln(c.Stderr(), "warning: slow")

	assert.Equal(t, "\r"+erase(7)+"working", out.String())
	assert.Equal(t, "warning: slow\n", errOut.String())
}

func TestLinesWithoutProgressPassThrough(t *testing.T) {
	c, out, _ := newTestConsole(t)
	c.Install()
	defer c.Uninstall()

	fmt.Fprintln(c.Stdout(), "plain")
	assert.Equal(t, "plain\n", out.String())
}

func TestBufferGrowsPastInitialSize(t *testing.T) {
	c, out, _ := newTestConsole(t)
	c.Install()
	defer c.Uninstall()

	long := strings.Repeat("x", 3*initialBufferSize+17)
	fmt.Fprint(c.Stdout(), long)
	assert.Empty(t, out.String())

	fmt.Fprint(c.Stdout(), "\n")
	assert.Equal(t, long+"\n", out.String())
}

func TestWriteErrorPropagates(t *testing.T) {
	sinkErr := errors.New("disk full")
	c := NewWithCapabilities(failingWriter{err: sinkErr}, &bytes.Buffer{}, tty)
	c.SetErrorLogger(&recordingLogger{})
	c.Install()
	defer c.Uninstall()

	n, err := c.Stdout().Write([]byte("line\nrest"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, c.fwdOut.buffered(), "undelivered line stays buffered")
}

func TestUninstallLogsDrainFailureAndRestores(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	errOut := &bytes.Buffer{}
	c := NewWithCapabilities(failingWriter{err: sinkErr}, errOut, tty)

	c.Install()
	fmt.Fprint(c.Stdout(), "unterminated")
	c.Uninstall()

	assert.False(t, c.Intercepting())
	assert.Contains(t, errOut.String(), "[ERROR]")
	assert.Contains(t, errOut.String(), "draining standard output on uninstall")
	assert.Contains(t, errOut.String(), "broken pipe")
}

func TestUninstallUsesConfiguredErrorLogger(t *testing.T) {
	log := &recordingLogger{}
	c := NewWithCapabilities(&bytes.Buffer{}, failingWriter{err: errors.New("closed")}, tty)
	c.SetErrorLogger(log)

	c.Install()
	fmt.Fprint(c.Stderr(), "partial")
	c.Uninstall()

	require.Len(t, log.messages, 1)
	assert.Contains(t, log.messages[0], "draining standard error on uninstall")
}

func TestInterceptUninstallsOnError(t *testing.T) {
	c, out, _ := newTestConsole(t)
	sentinel := errors.New("scenario failed")

	err := c.Intercept(func() error {
		assert.True(t, c.Intercepting())
		fmt.Fprint(c.Stdout(), "half")
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.False(t, c.Installed())
	assert.Equal(t, "half", out.String())
}

func TestShowFlushesBufferedSink(t *testing.T) {
	raw := &bytes.Buffer{}
	buffered := bufio.NewWriter(raw)
	c := NewWithCapabilities(buffered, &bytes.Buffer{}, tty)

	require.NoError(t, c.Show("50%"))
	assert.Equal(t, "\r50%", raw.String())
}

func TestStreamReportsANSI(t *testing.T) {
	c := NewWithCapabilities(&bytes.Buffer{}, &bytes.Buffer{}, terminal.Capabilities{Terminal: true, ANSI: true})
	assert.True(t, c.Stdout().ANSI())
	assert.True(t, c.Stderr().ANSI())
	assert.Equal(t, terminal.Capabilities{Terminal: true, ANSI: true}, c.Capabilities())
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, Default().Stdout(), Stdout())
	assert.Same(t, Default().Stderr(), Stderr())
}

func TestConcurrentLinesStayIntact(t *testing.T) {
	// Both sinks share one buffer so the test sees the on-screen order.
	screen := &bytes.Buffer{}
	c := NewWithCapabilities(screen, screen, tty)
	c.Install()

	const lines = 200
	var wg sync.WaitGroup
	wg.Add(3)

	writeLines := func(w *Stream, name string) {
		defer wg.Done()
		for i := 0; i < lines; i++ {
			fmt.Fprintf(w, "%s line %03d abcdefghijklmnopqrstuvwxyz\n", name, i)
		}
	}
	go writeLines(c.Stdout(), "stdout")
	go writeLines(c.Stderr(), "stderr")

	go func() {
		defer wg.Done()
		for i := 0; i < lines; i++ {
			c.Show(fmt.Sprintf("[progress %d/%d]", i, lines))
		}
	}()

	wg.Wait()
	require.NoError(t, c.Hide())
	c.Uninstall()

	all := screen.String()
	for _, name := range []string{"stdout", "stderr"} {
		for i := 0; i < lines; i++ {
			line := fmt.Sprintf("%s line %03d abcdefghijklmnopqrstuvwxyz\n", name, i)
			assert.Contains(t, all, line)
		}
	}
	assert.Equal(t, 2*lines, strings.Count(all, "\n"))

	// Every newline ends a forwarded line, never a progress redraw.
	lastLine := all[:strings.LastIndex(all, "\n")]
	for _, chunk := range strings.Split(lastLine, "\n") {
		idx := strings.LastIndex(chunk, "std")
		require.GreaterOrEqual(t, idx, 0, "chunk without a forwarded line: %q", chunk)
		assert.NotContains(t, chunk[idx:], "\r")
		assert.NotContains(t, chunk[idx:], "\b")
	}
}
