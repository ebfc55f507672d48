// Package logger provides logging implementations for consoleprogress.
//
// Loggers write one line per message, so a ConsoleLogger pointed at an
// intercepted console stream cooperates with the progress line instead of
// overwriting it. Implementations are thread-safe and support various output
// destinations (console, file).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/consoleprogress/internal/terminal"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is the leveled logging surface shared by every implementation.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogScenarioStart(name string, runID string)
	LogScenarioComplete(name string, duration time.Duration)
}

// ansiWriter is implemented by writers that know whether their final
// destination accepts ANSI escape sequences (console streams do).
type ansiWriter interface {
	ANSI() bool
}

// ConsoleLogger logs messages to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is enabled when the writer is known to reach an ANSI terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return NewConsoleLoggerWithColor(writer, logLevel, isTerminal(writer))
}

// NewConsoleLoggerWithColor creates a ConsoleLogger with color output forced
// on or off.
func NewConsoleLoggerWithColor(writer io.Writer, logLevel string, colorOutput bool) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       sync.Mutex{},
		colorOutput: colorOutput,
	}
}

// isTerminal checks if the writer reaches a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if aw, ok := w.(ansiWriter); ok {
		return aw.ANSI()
	}

	if w == os.Stdout || w == os.Stderr {
		return terminal.IsANSIEnabled()
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[normalized] {
		return normalized
	}

	return "info" // Default level
}

// ValidLogLevel reports whether level names one of the supported levels.
func ValidLogLevel(level string) bool {
	normalized := strings.ToLower(strings.TrimSpace(level))
	return normalizeLogLevel(normalized) == normalized
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string

	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	// A single Write keeps the line whole when the writer is an
	// intercepted console stream.
	cl.writer.Write([]byte(formatted))
}

// paint renders text with the given attributes. Colors are forced on because
// the decision was already made from the terminal capabilities; fatih/color's
// own detection only looks at os.Stdout.
func paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch strings.ToUpper(level) {
	case "TRACE":
		coloredLevel = paint(level, color.FgHiBlack)
	case "DEBUG":
		coloredLevel = paint(level, color.FgCyan)
	case "INFO":
		coloredLevel = paint(level, color.FgBlue)
	case "WARN":
		coloredLevel = paint(level, color.FgYellow)
	case "ERROR":
		coloredLevel = paint(level, color.FgRed)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogScenarioStart logs the start of a demo scenario at INFO level.
// Format: "[HH:MM:SS] Starting <name> (run <id>)"
func (cl *ConsoleLogger) LogScenarioStart(name string, runID string) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if cl.colorOutput {
		name = paint(name, color.Bold)
	}
	message := fmt.Sprintf("[%s] Starting %s", timestamp(), name)
	if runID != "" {
		message += fmt.Sprintf(" (run %s)", runID)
	}

	cl.writer.Write([]byte(message + "\n"))
}

// LogScenarioComplete logs the completion of a demo scenario at INFO level.
// Format: "[HH:MM:SS] <name> complete (<duration>)"
func (cl *ConsoleLogger) LogScenarioComplete(name string, duration time.Duration) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	completeText := "complete"
	if cl.colorOutput {
		name = paint(name, color.Bold)
		completeText = paint(completeText, color.FgGreen)
	}
	message := fmt.Sprintf("[%s] %s %s (%s)\n", timestamp(), name, completeText, formatDuration(duration))

	cl.writer.Write([]byte(message))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string)                                 {}
func (n *NoOpLogger) LogDebug(message string)                                 {}
func (n *NoOpLogger) LogInfo(message string)                                  {}
func (n *NoOpLogger) LogWarn(message string)                                  {}
func (n *NoOpLogger) LogError(message string)                                 {}
func (n *NoOpLogger) LogScenarioStart(name string, runID string)              {}
func (n *NoOpLogger) LogScenarioComplete(name string, duration time.Duration) {}
