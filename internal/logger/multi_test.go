package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMultiLoggerFansOut(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	m := NewMultiLogger(NewConsoleLogger(a, "debug"), nil, NewConsoleLogger(b, "warn"))

	m.LogDebug("debug line")
	m.LogWarn("warn line")
	m.LogScenarioStart("basic", "id")
	m.LogScenarioComplete("basic", time.Second)

	assert.Contains(t, a.String(), "debug line")
	assert.Contains(t, a.String(), "warn line")
	assert.Contains(t, a.String(), "Starting basic")
	assert.Contains(t, a.String(), "basic complete")

	assert.NotContains(t, b.String(), "debug line")
	assert.Contains(t, b.String(), "warn line")
	assert.False(t, strings.Contains(b.String(), "Starting basic"))
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	m.LogTrace("x")
	m.LogInfo("x")
	m.LogError("x")
	assert.Empty(t, m.loggers)
}
