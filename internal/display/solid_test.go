package display

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestSolidBar(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		fraction float64
		expected string
	}{
		{"empty", 4, 0, "    "},
		{"full", 4, 1, "████"},
		{"half", 4, 0.5, "██  "},
		{"one eighth of a cell", 1, 0.125, "▏"},
		{"partial boundary cell", 2, 0.75, "█▌"},
		{"over one clamps", 3, 1.5, "███"},
		{"negative clamps", 3, -0.5, "   "},
		{"zero width", 0, 0.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SolidBar(tt.width, tt.fraction); got != tt.expected {
				t.Errorf("SolidBar(%d, %v) = %q, want %q", tt.width, tt.fraction, got, tt.expected)
			}
		})
	}
}

func TestSolidBarWidthInRunes(t *testing.T) {
	got := SolidBar(50, 0.37)
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Errorf("SolidBar width = %d runes, want 50", n)
	}
}

func TestSpinner(t *testing.T) {
	want := []rune{'/', '-', '\\', '|', '/'}
	for step, r := range want {
		if got := Spinner(step); got != r {
			t.Errorf("Spinner(%d) = %q, want %q", step, got, r)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		cur, total, want int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{167, 5384, 3},
		{700, 5384, 13},
		{3, 0, 0},
	}

	for _, tt := range tests {
		if got := Percent(tt.cur, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.cur, tt.total, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{13 * time.Second, "0:00:13"},
		{7 * time.Minute, "0:07:00"},
		{time.Hour + 2*time.Minute + 3*time.Second + 900*time.Millisecond, "1:02:03"},
		{-time.Second, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
