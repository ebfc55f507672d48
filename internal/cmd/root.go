package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/consoleprogress/internal/console"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for consoleprogress
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithConsole(console.Default())
}

// NewRootCommandWithConsole creates the root command bound to a specific
// console instead of the process-wide one.
func NewRootCommandWithConsole(c *console.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consoleprogress",
		Short: "Progress line that coexists with scrolling console output",
		Long: `Consoleprogress keeps a single progress line at the bottom of the
terminal while other output keeps scrolling above it.

Lines written to standard output or standard error while the progress
line is visible are printed above it, and the progress line is redrawn
after every completed line.

Configuration is loaded from .consoleprogress.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .consoleprogress.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("log-dir", "", "Directory for per-run log files")

	// Add subcommands
	cmd.AddCommand(newDemoCommand(c))
	cmd.AddCommand(newStylesCommand(c))

	return cmd
}
