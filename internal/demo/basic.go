package demo

import (
	"fmt"

	"github.com/harrison/consoleprogress/internal/display"
)

// spinnerSteps is how many steps show the spinner before the bar takes over.
const spinnerSteps = 10

// basic interleaves partial writes, completed lines and stderr output with
// progress updates on a single goroutine.
func (r *Runner) basic() error {
	out := r.console.Stdout()
	errOut := r.console.Stderr()
	bar := display.NewBar(r.opts.Steps, r.opts.BarWidth, r.console.Capabilities())

	for i := 0; i <= r.opts.Steps; i++ {
		if i%5 == 3 {
			fmt.Fprint(out, "xxx")
		}
		if i%5 == 4 {
			fmt.Fprintln(out, "yyy")
		}
		if i%6 == 5 {
			fmt.Fprint(errOut, "err")
		}
		if i%12 == 11 {
			fmt.Fprintln(errOut)
		}

		r.sleep(r.opts.Interval)
		if err := r.show(stepProgress(i, r.opts.BarWidth, bar)); err != nil {
			return err
		}
		bar.Increment()
	}

	if err := r.hide(); err != nil {
		return err
	}
	r.sleep(4 * r.opts.Interval)

	fmt.Fprintln(out, "Done")
	return nil
}

// stepProgress is a spinner while the run warms up and the bar afterwards.
func stepProgress(step, width int, bar *display.Bar) string {
	if step < spinnerSteps {
		return fmt.Sprintf("[ %c %-*s]", display.Spinner(step), width-3, "waiting...")
	}
	return bar.Render()
}
