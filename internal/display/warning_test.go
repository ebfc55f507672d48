package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf, ansi)

	output := buf.String()
	if !strings.HasPrefix(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code at start of output")
	}
	if !strings.Contains(output, "Warning: Configuration Missing\n") {
		t.Error("Expected title in output")
	}
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at end of output")
	}
}

func TestDisplayWarning_PlainWithoutANSI(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Deprecated Setting",
		Message:    "interval_ms is ignored",
		Suggestion: "Use interval instead",
	}
	w.Display(&buf, plain)

	want := "Warning: Deprecated Setting\n" +
		"    interval_ms is ignored\n" +
		"    Suggestion:\n" +
		"    Use interval instead\n"
	if got := buf.String(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestDisplayWarning_WithDetails(t *testing.T) {
	tests := []struct {
		name     string
		details  []string
		wantText string
	}{
		{"single detail", []string{"one"}, "Detail:\n"},
		{"multiple details", []string{"one", "two", "three"}, "Details:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Warning{Title: "Check", Details: tt.details}.Display(&buf, plain)

			output := buf.String()
			if !strings.Contains(output, tt.wantText) {
				t.Errorf("Expected %q in output, got: %s", tt.wantText, output)
			}
			for i, d := range tt.details {
				line := "      " + string(rune('1'+i)) + ". " + d + "\n"
				if !strings.Contains(output, line) {
					t.Errorf("Expected numbered detail %q in output", line)
				}
			}
		})
	}
}

func TestWarnNoTerminal(t *testing.T) {
	w := WarnNoTerminal(plain)
	if w.Title != "Progress display disabled" {
		t.Errorf("Title = %q", w.Title)
	}
	if len(w.Details) != 2 || w.Details[0] != "terminal output: true" || w.Details[1] != "ANSI enabled: false" {
		t.Errorf("Details = %v", w.Details)
	}
}
