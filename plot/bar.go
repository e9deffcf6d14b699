package plot

import (
	"math"

	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/stack"
	"github.com/sgostarter/libchart/ticks"
)

const (
	// GroupGap is the share of a slot left empty around its bar group.
	GroupGap = 0.12
	// BarGap is the pixel gap between bars of one group.
	BarGap = 1

	PadLeftCategory = 60
	PadLeftBare     = 12
	PadRightValue   = 40
)

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// NewBarArea lays out a bar chart. Vertical bars follow NewArea; horizontal
// bars put the category labels on the left and the value labels on the right.
func NewBarArea(width, height float64, orientation Orientation, categoryAxis, valueAxis bool) Area {
	if orientation != Horizontal {
		return NewArea(width, height, categoryAxis, valueAxis)
	}

	padLeft, padRight := float64(PadLeftBare), float64(PadRight)

	if categoryAxis {
		padLeft = PadLeftCategory
	}

	if valueAxis {
		padRight = PadRightValue
	}

	return Area{
		Left:   padLeft,
		Top:    PadTop,
		Width:  math.Max(0, width-padLeft-padRight),
		Height: math.Max(0, height-PadTop),
	}
}

// BarLayout splits the category axis into one slot per record. Bars of a
// record share a centered group of Group pixels, each Thickness thick.
type BarLayout struct {
	Slot      float64
	Group     float64
	Thickness float64
}

// NewBarLayout sizes n slots of seriesCount bars along length pixels. Stacked
// bars fill the whole group; grouped bars are at least 1 pixel thick.
func NewBarLayout(length float64, n, seriesCount int, stacked bool) (layout BarLayout) {
	if n > 0 {
		layout.Slot = length / float64(n)
	}

	layout.Group = layout.Slot * (1 - GroupGap)

	switch {
	case seriesCount <= 0:
	case stacked:
		layout.Thickness = layout.Group
	default:
		layout.Thickness = math.Max(1, (layout.Group-BarGap*float64(seriesCount-1))/float64(seriesCount))
	}

	return
}

// GroupStart is where the bar group of record i begins.
func (b BarLayout) GroupStart(i int) float64 {
	return float64(i)*b.Slot + (b.Slot-b.Group)/2
}

// BarStart is where bar si of record i begins in a grouped layout.
func (b BarLayout) BarStart(i, si int) float64 {
	return b.GroupStart(i) + float64(si)*(b.Thickness+BarGap)
}

// Center is the middle of slot i, where its label and tooltip sit.
func (b BarLayout) Center(i int) float64 {
	return (float64(i) + 0.5) * b.Slot
}

// Highlight is the band drawn behind the hovered record.
func (b BarLayout) Highlight(i int) (start, size float64) {
	return b.GroupStart(i), b.Group
}

// Rect is an axis aligned rectangle in plot pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Bar is one drawn bar: the value of Key in record Index.
type Bar struct {
	Index  int     `json:"index"`
	Series int     `json:"series"`
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
	Rect   Rect    `json:"rect"`
}

// BarRects lays out one bar per record and key in a width x height plot on
// the value axis. Missing and non-numeric values draw as 0. Stacked bars
// rest on the running sum of the keys before them; grouped bars grow from
// the plot edge. Negative sizes clamp to 0.
func BarRects(rows []map[string]any, keys []string, axis ticks.Result, width, height float64,
	orientation Orientation, stacked bool) []Bar {
	if width <= 0 || height <= 0 || len(rows) == 0 || len(keys) == 0 {
		return nil
	}

	horizontal := orientation == Horizontal

	length := width
	if horizontal {
		length = height
	}

	layout := NewBarLayout(length, len(rows), len(keys), stacked)
	span := axis.Max - axis.Min

	size := func(v, extent float64) float64 {
		if span == 0 {
			return 0
		}

		return v / span * extent
	}

	bars := make([]Bar, 0, len(rows)*len(keys))

	for i, row := range rows {
		var cum float64

		for si, key := range keys {
			v := stack.ValueOrZero(row, key)
			bar := Bar{Index: i, Series: si, Key: key, Value: v}

			switch {
			case stacked && horizontal:
				cum += v
				bar.Rect = Rect{
					X: scale.Linear(cum-v, axis.Min, axis.Max, 0, width),
					Y: layout.GroupStart(i),
					W: math.Max(0, size(v, width)),
					H: layout.Thickness,
				}
			case stacked:
				cum += v
				bar.Rect = Rect{
					X: layout.GroupStart(i),
					Y: scale.Linear(cum, axis.Min, axis.Max, height, 0),
					W: layout.Thickness,
					H: math.Max(0, size(v, height)),
				}
			case horizontal:
				bar.Rect = Rect{
					X: 0,
					Y: layout.BarStart(i, si),
					W: math.Max(0, size(v, width)),
					H: layout.Thickness,
				}
			default:
				h := size(v, height)
				bar.Rect = Rect{
					X: layout.BarStart(i, si),
					Y: height - h,
					W: layout.Thickness,
					H: math.Max(0, h),
				}
			}

			bars = append(bars, bar)
		}
	}

	return bars
}
