package demo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/consoleprogress/internal/console"
	"github.com/harrison/consoleprogress/internal/logger"
)

// Sleeper pauses between scenario steps.
type Sleeper func(time.Duration)

// Options control the pace and size of the scenarios.
type Options struct {
	// Steps is the number of progress updates in the basic and workers scenarios
	Steps int

	// Interval is the pause between progress updates
	Interval time.Duration

	// BarWidth is the width of rendered bars in cells
	BarWidth int

	// Workers is the number of background writers in the workers scenario
	Workers int
}

// DefaultOptions mirrors the pacing of the interactive demo.
func DefaultOptions() Options {
	return Options{
		Steps:    50,
		Interval: 50 * time.Millisecond,
		BarWidth: 50,
		Workers:  2,
	}
}

// Scenario is a named demo routine.
type Scenario struct {
	Name        string
	Description string
	run         func(*Runner) error
}

var scenarios = map[string]Scenario{
	"basic": {
		Name:        "basic",
		Description: "partial and complete lines on both streams under a spinner, then a bar",
		run:         (*Runner).basic,
	},
	"workers": {
		Name:        "workers",
		Description: "background goroutines writing while the foreground updates progress",
		run:         (*Runner).workers,
	},
	"styled": {
		Name:        "styled",
		Description: "colored solid bar with transfer size and elapsed/remaining time",
		run:         (*Runner).styled,
	},
}

// Names returns the scenario names in run order.
func Names() []string {
	return []string{"basic", "workers", "styled"}
}

// Lookup returns the scenario called name.
func Lookup(name string) (Scenario, error) {
	s, ok := scenarios[strings.ToLower(name)]
	if !ok {
		known := make([]string, 0, len(scenarios))
		for n := range scenarios {
			known = append(known, n)
		}
		sort.Strings(known)
		return Scenario{}, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(known, ", "))
	}
	return s, nil
}

// Runner runs scenarios against a console.
type Runner struct {
	console *console.Console
	log     logger.Logger
	opts    Options
	sleep   Sleeper
}

// NewRunner creates a Runner that sleeps with time.Sleep.
func NewRunner(c *console.Console, log logger.Logger, opts Options) *Runner {
	return NewRunnerWithSleeper(c, log, opts, time.Sleep)
}

// NewRunnerWithSleeper creates a Runner with a custom Sleeper.
// A nil log discards messages; invalid option values fall back to defaults.
func NewRunnerWithSleeper(c *console.Console, log logger.Logger, opts Options, sleep Sleeper) *Runner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	defaults := DefaultOptions()
	if opts.Steps <= 0 {
		opts.Steps = defaults.Steps
	}
	if opts.Interval < 0 {
		opts.Interval = 0
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = defaults.BarWidth
	}
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}

	return &Runner{
		console: c,
		log:     log,
		opts:    opts,
		sleep:   sleep,
	}
}

// Run runs the named scenario with the console's streams intercepted.
func (r *Runner) Run(name string) error {
	s, err := Lookup(name)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	r.log.LogScenarioStart(s.Name, runID)
	r.log.LogDebug(fmt.Sprintf("%s: steps=%d interval=%s bar_width=%d workers=%d",
		s.Name, r.opts.Steps, r.opts.Interval, r.opts.BarWidth, r.opts.Workers))

	start := time.Now()
	if err := r.console.Intercept(func() error { return s.run(r) }); err != nil {
		r.log.LogError(fmt.Sprintf("%s failed: %v", s.Name, err))
		return fmt.Errorf("scenario %s failed: %w", s.Name, err)
	}

	r.log.LogScenarioComplete(s.Name, time.Since(start))
	return nil
}

// show updates the progress line.
func (r *Runner) show(text string) error {
	if err := r.console.Show(text); err != nil {
		return fmt.Errorf("failed to show progress: %w", err)
	}
	return nil
}

// hide removes the progress line.
func (r *Runner) hide() error {
	if err := r.console.Hide(); err != nil {
		return fmt.Errorf("failed to hide progress: %w", err)
	}
	return nil
}
