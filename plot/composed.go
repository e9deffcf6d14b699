package plot

import (
	"math"

	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/series"
	"github.com/sgostarter/libchart/stack"
	"github.com/sgostarter/libchart/ticks"
)

// PadRightDual leaves room for the labels of a right value axis.
const PadRightDual = PadLeftAxis

type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ComposedSeries is a series of a chart mixing bars and lines on up to two
// value axes.
type ComposedSeries struct {
	series.Series `yaml:",inline"`

	Kind Kind `yaml:"type" json:"type"`
	Axis Side `yaml:"axis" json:"axis"`
}

type ResolvedComposed struct {
	series.Resolved

	Kind Kind
	Axis Side
}

// ResolveComposed fills in labels, colors and styles like series.Resolve and
// binds series without an axis to the left one.
func ResolveComposed(list []ComposedSeries) []ResolvedComposed {
	plain := make([]series.Series, len(list))
	for i, s := range list {
		plain[i] = s.Series
	}

	base := series.Resolve(plain, "", "", nil)

	resolved := make([]ResolvedComposed, len(list))

	for i, s := range list {
		resolved[i] = ResolvedComposed{Resolved: base[i], Kind: s.Kind, Axis: s.Axis}

		if resolved[i].Axis != SideRight {
			resolved[i].Axis = SideLeft
		}
	}

	return resolved
}

// Filter keeps the series drawn as kind.
func Filter(list []ResolvedComposed, kind Kind) []ResolvedComposed {
	var kept []ResolvedComposed

	for _, s := range list {
		if s.Kind == kind {
			kept = append(kept, s)
		}
	}

	return kept
}

// HasRightAxis reports whether any series is bound to the right axis.
func HasRightAxis(list []ResolvedComposed) bool {
	for _, s := range list {
		if s.Axis == SideRight {
			return true
		}
	}

	return false
}

func sideKeys(list []ResolvedComposed, side Side) (keys []string) {
	for _, s := range list {
		if s.Axis == side {
			keys = append(keys, s.Key)
		}
	}

	return
}

// DualAxes derives both value axes of a composed chart. The left axis starts
// at 0 and reaches the largest left value or reference. The right axis covers
// the range of the right series, [0, 1] when there is none.
func DualAxes(rows []map[string]any, list []ResolvedComposed, opts ...Option) (left, right ticks.Result) {
	opt := optionNew(opts...)

	max := math.Inf(-1)
	if _, hi, ok := ValueDomain(rows, sideKeys(list, SideLeft)); ok {
		max = hi
	}

	left = zeroBased(max, opt)
	right = ticks.Result{Min: 0, Max: 1, Ticks: []float64{0, 1}}

	if min, max, ok := ValueDomain(rows, sideKeys(list, SideRight)); ok {
		right = ticks.NiceTicks(min, max, opt.targetCount)
	}

	return
}

// NewDualArea is NewArea with room for a right value axis.
func NewDualArea(width, height float64, xAxis, yAxis, rightAxis bool) Area {
	area := NewArea(width, height, xAxis, yAxis)

	if rightAxis {
		area.Width = math.Max(0, width-area.Left-PadRightDual)
	}

	return area
}

// SlotX is the center of slot i when width is split into n slots. Lines of a
// composed chart run through the middle of each bar group.
func SlotX(i, n int, width float64) float64 {
	if n == 1 {
		return width / 2
	}

	return (float64(i) + 0.5) * width / float64(n)
}

func axisFor(s ResolvedComposed, left, right ticks.Result) ticks.Result {
	if s.Axis == SideRight {
		return right
	}

	return left
}

// ComposedLinePoints maps each line series to plot pixels on its own axis,
// x at the slot centers. Rows without a usable value are left out.
func ComposedLinePoints(rows []map[string]any, lines []ResolvedComposed, left, right ticks.Result,
	width, height float64) [][]curve.Point {
	if width <= 0 || height <= 0 || len(rows) == 0 {
		return nil
	}

	all := make([][]curve.Point, len(lines))

	for li, s := range lines {
		axis := axisFor(s, left, right)

		for i, row := range rows {
			v, ok := stack.Value(row, s.Key)
			if !ok {
				continue
			}

			all[li] = append(all[li], curve.Point{
				X: SlotX(i, len(rows), width),
				Y: scale.Linear(v, axis.Min, axis.Max, height, 0),
			})
		}
	}

	return all
}

// ComposedBarRects lays out grouped bars, each sized from the bottom of its
// own axis. Missing values draw as 0.
func ComposedBarRects(rows []map[string]any, bars []ResolvedComposed, left, right ticks.Result,
	width, height float64) []Bar {
	if width <= 0 || height <= 0 || len(rows) == 0 || len(bars) == 0 {
		return nil
	}

	layout := NewBarLayout(width, len(rows), len(bars), false)
	out := make([]Bar, 0, len(rows)*len(bars))

	for i, row := range rows {
		for si, s := range bars {
			axis := axisFor(s, left, right)
			v := stack.ValueOrZero(row, s.Key)

			var h float64
			if span := axis.Max - axis.Min; span != 0 {
				h = (v - axis.Min) / span * height
			}

			out = append(out, Bar{
				Index:  i,
				Series: si,
				Key:    s.Key,
				Value:  v,
				Rect: Rect{
					X: layout.BarStart(i, si),
					Y: height - h,
					W: layout.Thickness,
					H: math.Max(0, h),
				},
			})
		}
	}

	return out
}
