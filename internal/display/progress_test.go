package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressIndicator_Start(t *testing.T) {
	var buf bytes.Buffer
	pi := NewProgressIndicator(&buf, 3, plain)
	pi.Start("Running scenarios")

	if got := buf.String(); got != "Running scenarios:\n" {
		t.Errorf("Start() output = %q", got)
	}
}

func TestProgressIndicator_Step(t *testing.T) {
	tests := []struct {
		name       string
		stepNum    int
		wantFormat string
	}{
		{"first step", 1, "  [1/3] basic"},
		{"second step", 2, "  [2/3] basic"},
		{"third step", 3, "  [3/3] basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pi := NewProgressIndicator(&buf, 3, ansi)

			for i := 0; i < tt.stepNum; i++ {
				buf.Reset()
				pi.Step("basic")
			}

			got := buf.String()
			if !strings.Contains(got, tt.wantFormat) {
				t.Errorf("Step() output missing %q, got %q", tt.wantFormat, got)
			}
			if !strings.HasPrefix(got, "\x1b[36m") {
				t.Errorf("Step() output should start cyan, got %q", got)
			}
			if !strings.HasSuffix(got, "\x1b[0m\n") {
				t.Errorf("Step() output should reset before newline, got %q", got)
			}
		})
	}
}

func TestProgressIndicator_PlainWithoutANSI(t *testing.T) {
	var buf bytes.Buffer
	pi := NewProgressIndicator(&buf, 2, plain)
	pi.Step("basic")
	pi.Step("workers")
	pi.Complete("scenarios")

	want := "  [1/2] basic\n  [2/2] workers\n✓ Ran 2 scenarios\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProgressIndicator_CompleteGreen(t *testing.T) {
	var buf bytes.Buffer
	pi := NewProgressIndicator(&buf, 1, ansi)
	pi.Step("styled")
	buf.Reset()
	pi.Complete("scenarios")

	if got := buf.String(); got != "\x1b[32m✓\x1b[0m Ran 1 scenarios\n" {
		t.Errorf("Complete() output = %q", got)
	}
}
