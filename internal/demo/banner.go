package demo

import (
	"fmt"
	"io"

	"github.com/harrison/consoleprogress/internal/terminal"
)

// Banner prints the detected capabilities.
func Banner(w io.Writer, caps terminal.Capabilities) {
	fmt.Fprintf(w, "ConsoleOutput: %t\n", caps.Terminal)
	fmt.Fprintf(w, "ANSIEnabled: %t\n", caps.ANSI)
}

// StyleSamples prints a few styled words. Without ANSI the words print plain.
func StyleSamples(w io.Writer, caps terminal.Capabilities) {
	reset := caps.Style().Reset().String()

	fmt.Fprintln(w, "Visual styles:")
	fmt.Fprintln(w, caps.Style().Bold().FgYellow().String()+"brightYellow"+reset)
	fmt.Fprintln(w, caps.Style().BgCyan().Underline().FgBlack().String()+"underlineBlackOnCyan"+reset)
}
