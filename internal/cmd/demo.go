package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/consoleprogress/internal/console"
	"github.com/harrison/consoleprogress/internal/demo"
	"github.com/harrison/consoleprogress/internal/display"
)

// newDemoCommand creates the demo command
func newDemoCommand(c *console.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [basic|workers|styled|all]...",
		Short: "Run progress line demo scenarios",
		Long: `Run one or more demo scenarios that write to standard output and
standard error while a progress line is displayed.

Scenarios:
  basic    partial and complete lines on both streams, spinner then bar
  workers  background goroutines writing while progress updates
  styled   colored solid bar with transfer size and clock readings

Examples:
  consoleprogress demo                      # Run every scenario
  consoleprogress demo basic                # Run one scenario
  consoleprogress demo styled --interval 0  # Run without pauses
  consoleprogress demo --log-dir ./logs     # Also write a run log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args, c)
		},
	}

	cmd.Flags().Int("steps", 0, "Number of progress steps (0 = use config)")
	cmd.Flags().String("interval", "", "Pause between progress steps (e.g., 50ms, 1s)")

	return cmd
}

// runDemo implements the demo command logic
func runDemo(cmd *cobra.Command, args []string, c *console.Console) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var stepsPtr *int
	if cmd.Flags().Changed("steps") {
		steps, _ := cmd.Flags().GetInt("steps")
		stepsPtr = &steps
	}

	var intervalPtr *time.Duration
	if cmd.Flags().Changed("interval") {
		intervalStr, _ := cmd.Flags().GetString("interval")
		interval, err := time.ParseDuration(intervalStr)
		if err != nil {
			return fmt.Errorf("invalid interval format %q: %w", intervalStr, err)
		}
		intervalPtr = &interval
	}

	cfg.MergeWithFlags(nil, nil, intervalPtr, stepsPtr)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	names, err := scenarioNames(args)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, c.Stdout())
	if err != nil {
		return err
	}
	defer closeLog()

	caps := c.Capabilities()
	if !caps.Terminal {
		display.WarnNoTerminal(caps).Display(cmd.ErrOrStderr(), caps)
	}
	demo.Banner(c.Stdout(), caps)

	runner := demo.NewRunner(c, log, demo.Options{
		Steps:    cfg.Steps,
		Interval: cfg.Interval,
		BarWidth: cfg.BarWidth,
		Workers:  cfg.Workers,
	})

	if len(names) == 1 {
		return runner.Run(names[0])
	}

	progress := display.NewProgressIndicator(c.Stdout(), len(names), caps)
	progress.Start("Running demo scenarios")
	for _, name := range names {
		progress.Step(name)
		if err := runner.Run(name); err != nil {
			return err
		}
	}
	progress.Complete("scenarios")

	return nil
}

// scenarioNames expands "all" and rejects unknown names before anything runs.
func scenarioNames(args []string) ([]string, error) {
	if len(args) == 0 {
		return demo.Names(), nil
	}

	var names []string
	for _, arg := range args {
		if strings.EqualFold(arg, "all") {
			names = append(names, demo.Names()...)
			continue
		}
		s, err := demo.Lookup(arg)
		if err != nil {
			return nil, err
		}
		names = append(names, s.Name)
	}
	return names, nil
}
