package plot

import "math"

const (
	PadTop        = 8
	PadRight      = 8
	PadBottomAxis = 28
	PadLeftAxis   = 48

	// LabelSpacing is the minimum pixel distance between x axis labels.
	LabelSpacing = 60
)

// Area is the plot rectangle inside a chart, in chart pixels.
type Area struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewArea lays out the plot area of a width x height chart. The x axis takes
// PadBottomAxis below the plot and the y axis PadLeftAxis to its left.
func NewArea(width, height float64, xAxis, yAxis bool) Area {
	var padLeft, padBottom float64

	if yAxis {
		padLeft = PadLeftAxis
	}

	if xAxis {
		padBottom = PadBottomAxis
	}

	return Area{
		Left:   padLeft,
		Top:    PadTop,
		Width:  math.Max(0, width-padLeft-PadRight),
		Height: math.Max(0, height-PadTop-padBottom),
	}
}

// Empty reports whether nothing can be drawn in a.
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
