package ticks

import (
	"strconv"

	"gonum.org/v1/plot"
)

var _ plot.Ticker = Ticker{}

// Ticker adapts NiceTicks to gonum's plot.Ticker so plots built with gonum
// share axis labels with the rest of the engine.
type Ticker struct {
	TargetCount int
	Format      func(v float64) string
}

func (t Ticker) Ticks(min, max float64) []plot.Tick {
	format := t.Format
	if format == nil {
		format = FormatValue
	}

	r := NiceTicks(min, max, t.TargetCount)

	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}

	pts := make([]plot.Tick, 0, len(r.Ticks))

	for _, v := range r.Ticks {
		if v < lo || v > hi {
			continue
		}

		pts = append(pts, plot.Tick{Value: v, Label: format(v)})
	}

	return pts
}

// FormatValue renders a tick value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
