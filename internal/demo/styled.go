package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/harrison/consoleprogress/internal/display"
)

// Simulated transfer for the styled scenario, in MiB.
const (
	transferBegin = 167
	transferEnd   = 700
	transferTotal = 5384
	transferStep  = 12
)

const (
	transferDuration = 7 * time.Minute
	transferStart    = 13 * time.Second
	transferTick     = 250 * time.Millisecond
)

// styled draws a colored solid bar with transfer size and clock readings.
func (r *Runner) styled() error {
	elapsed := transferStart
	for cur := transferBegin; cur <= transferEnd; cur += transferStep {
		if err := r.show(r.transferLine(cur, elapsed)); err != nil {
			return err
		}
		r.sleep(r.opts.Interval)
		elapsed += transferTick
	}
	return r.hide()
}

// transferLine renders "Reading  3% │██▍   │ 167 MiB/5.3 GiB (0:00:13 / 0:06:47)".
func (r *Runner) transferLine(cur int, elapsed time.Duration) string {
	caps := r.console.Capabilities()

	var b strings.Builder
	fmt.Fprintf(&b, "Reading %3d%% ", display.Percent(cur, transferTotal))
	b.WriteString(caps.Style().FgYellow().String())
	b.WriteString("│")
	b.WriteString(display.SolidBar(r.opts.BarWidth, float64(cur)/float64(transferTotal)))
	b.WriteString("│")
	b.WriteString(caps.Style().Reset().String())
	fmt.Fprintf(&b, " %s/%s", mebibytes(cur), mebibytes(transferTotal))
	fmt.Fprintf(&b, " (%s / %s)", display.FormatClock(elapsed), display.FormatClock(transferDuration-elapsed))
	return b.String()
}

func mebibytes(n int) string {
	return humanize.IBytes(uint64(n) << 20)
}
