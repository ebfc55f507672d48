package demo

import (
	"fmt"
	"sync"

	"github.com/harrison/consoleprogress/internal/display"
)

// workerLines is how many lines each background writer emits.
const workerLines = 10

// workers runs background writers on both streams while the foreground
// goroutine drives the progress line.
func (r *Runner) workers() error {
	out := r.console.Stdout()
	errOut := r.console.Stderr()

	fmt.Fprintln(out, "Begin")

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		if w%2 == 0 {
			go func(id int) {
				defer wg.Done()
				for i := 0; i < workerLines; i++ {
					r.sleep(4 * r.opts.Interval)
					fmt.Fprint(out, "xxx")
					r.sleep(4 * r.opts.Interval)
					fmt.Fprintln(out, "yyy")
				}
				r.log.LogInfo(fmt.Sprintf("worker %d finished writing to stdout", id))
			}(w)
		} else {
			go func(id int) {
				defer wg.Done()
				for i := 0; i < workerLines; i++ {
					r.sleep(6 * r.opts.Interval)
					fmt.Fprint(errOut, "err")
					if i%3 == 2 {
						fmt.Fprintln(errOut)
					}
				}
				fmt.Fprintln(errOut)
				r.log.LogInfo(fmt.Sprintf("worker %d finished writing to stderr", id))
			}(w)
		}
	}

	bar := display.NewBar(r.opts.Steps, r.opts.BarWidth, r.console.Capabilities())
	for i := 0; i <= r.opts.Steps; i++ {
		r.sleep(r.opts.Interval)
		bar.Update(i)
		if err := r.show(stepProgress(i, r.opts.BarWidth, bar)); err != nil {
			wg.Wait()
			return err
		}
	}

	if err := r.hide(); err != nil {
		wg.Wait()
		return err
	}
	r.sleep(4 * r.opts.Interval)

	wg.Wait()

	fmt.Fprintln(out, "Done")
	return nil
}
