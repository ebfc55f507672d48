package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Capabilities describes what the process output stream supports.
type Capabilities struct {
	// Terminal is true when standard output is attached to an interactive
	// console rather than a file or pipe.
	Terminal bool

	// ANSI is true when SGR escape sequences may be emitted. It is never true
	// unless Terminal is.
	ANSI bool
}

var (
	detectOnce sync.Once
	detected   Capabilities
)

// Detect returns the capabilities of the current process. The result is
// computed on first call and never recomputed, so later changes to the
// environment have no effect.
func Detect() Capabilities {
	detectOnce.Do(func() {
		detected = DetectFrom(os.Stdout.Fd(), os.Getenv)
	})
	return detected
}

// DetectFrom computes capabilities for the given file descriptor using getenv
// to read the environment.
func DetectFrom(fd uintptr, getenv func(string) string) Capabilities {
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return capabilitiesFor(tty, getenv)
}

// capabilitiesFor derives the ANSI decision from the terminal flag and the
// TERM and NO_COLOR variables.
func capabilitiesFor(tty bool, getenv func(string) string) Capabilities {
	if !tty {
		return Capabilities{}
	}
	// NO_COLOR is honored the same way fatih/color honors it.
	ansi := getenv("TERM") != "" && getenv("NO_COLOR") == ""
	return Capabilities{Terminal: true, ANSI: ansi}
}

// IsTerminalOutput reports whether standard output is an interactive console.
func IsTerminalOutput() bool {
	return Detect().Terminal
}

// IsANSIEnabled reports whether ANSI escape sequences should be emitted.
func IsANSIEnabled() bool {
	return Detect().ANSI
}
