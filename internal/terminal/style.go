package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// esc is the control character that starts every escape sequence.
const esc = "\x1b"

// fatih/color has no names for the "default color" SGR parameters.
const (
	fgDefault color.Attribute = 39
	bgDefault color.Attribute = 49
)

// Style accumulates SGR parameters and renders them as a single escape
// sequence. Methods append a code and return the same Style so calls chain:
//
//	fmt.Println(terminal.NewStyle().Bold().FgYellow().String() + "warning" + terminal.NewStyle().Reset().String())
//
// A Style renders to the empty string when ANSI output is disabled, whatever
// methods were called on it.
type Style struct {
	ansi  bool
	codes []color.Attribute
}

// NewStyle returns an empty Style bound to the process capabilities.
func NewStyle() *Style {
	return Detect().Style()
}

// Style returns an empty Style bound to these capabilities.
func (c Capabilities) Style() *Style {
	return &Style{ansi: c.ANSI}
}

func (s *Style) add(code color.Attribute) *Style {
	s.codes = append(s.codes, code)
	return s
}

// Reset appends SGR 0. It does not remove codes added earlier.
func (s *Style) Reset() *Style { return s.add(color.Reset) }

// Bold appends SGR 1.
func (s *Style) Bold() *Style { return s.add(color.Bold) }

// Underline appends SGR 4.
func (s *Style) Underline() *Style { return s.add(color.Underline) }

// FgBlack appends SGR 30, a black foreground.
func (s *Style) FgBlack() *Style { return s.add(color.FgBlack) }

// FgRed appends SGR 31, a red foreground.
func (s *Style) FgRed() *Style { return s.add(color.FgRed) }

// FgGreen appends SGR 32, a green foreground.
func (s *Style) FgGreen() *Style { return s.add(color.FgGreen) }

// FgYellow appends SGR 33, a yellow foreground.
func (s *Style) FgYellow() *Style { return s.add(color.FgYellow) }

// FgBlue appends SGR 34, a blue foreground.
func (s *Style) FgBlue() *Style { return s.add(color.FgBlue) }

// FgMagenta appends SGR 35, a magenta foreground.
func (s *Style) FgMagenta() *Style { return s.add(color.FgMagenta) }

// FgCyan appends SGR 36, a cyan foreground.
func (s *Style) FgCyan() *Style { return s.add(color.FgCyan) }

// FgWhite appends SGR 37, a white foreground.
func (s *Style) FgWhite() *Style { return s.add(color.FgWhite) }

// FgDefault appends SGR 39, the default foreground.
func (s *Style) FgDefault() *Style { return s.add(fgDefault) }

// BgBlack appends SGR 40, a black background.
func (s *Style) BgBlack() *Style { return s.add(color.BgBlack) }

// BgRed appends SGR 41, a red background.
func (s *Style) BgRed() *Style { return s.add(color.BgRed) }

// BgGreen appends SGR 42, a green background.
func (s *Style) BgGreen() *Style { return s.add(color.BgGreen) }

// BgYellow appends SGR 43, a yellow background.
func (s *Style) BgYellow() *Style { return s.add(color.BgYellow) }

// BgBlue appends SGR 44, a blue background.
func (s *Style) BgBlue() *Style { return s.add(color.BgBlue) }

// BgMagenta appends SGR 45, a magenta background.
func (s *Style) BgMagenta() *Style { return s.add(color.BgMagenta) }

// BgCyan appends SGR 46, a cyan background.
func (s *Style) BgCyan() *Style { return s.add(color.BgCyan) }

// BgWhite appends SGR 47, a white background.
func (s *Style) BgWhite() *Style { return s.add(color.BgWhite) }

// BgDefault appends SGR 49, the default background.
func (s *Style) BgDefault() *Style { return s.add(bgDefault) }

// String renders the escape sequence, e.g. "\x1b[1;33m".
func (s *Style) String() string {
	if !s.ansi || len(s.codes) == 0 {
		return ""
	}
	parts := make([]string, len(s.codes))
	for i, code := range s.codes {
		parts[i] = strconv.Itoa(int(code))
	}
	return esc + "[" + strings.Join(parts, ";") + "m"
}

// Sprint formats its operands like fmt.Sprint and wraps the result in this
// style followed by a reset. With ANSI disabled the text is returned as is.
func (s *Style) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	prefix := s.String()
	if prefix == "" {
		return text
	}
	return prefix + text + esc + "[0m"
}
