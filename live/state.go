package live

import "github.com/sgostarter/libchart/curve"

// Point is one sample of the live stream. Time is in unix seconds.
type Point struct {
	Time  float64 `yaml:"time" json:"time"`
	Value float64 `yaml:"value" json:"value"`
}

// Rect is a pixel rectangle.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// State is the animation state carried between frames.
type State struct {
	DisplayValue float64 `json:"displayValue"`
	DisplayMin   float64 `json:"displayMin"`
	DisplayMax   float64 `json:"displayMax"`
	GridInterval float64 `json:"gridInterval"`
	// GridLabels maps round(value*1000) to the label's current alpha.
	GridLabels  map[int64]float64 `json:"gridLabels"`
	ScrubAmount float64           `json:"scrubAmount"`
}

// NewState starts at value with the placeholder [0, 1] range, which the first
// frame with data replaces outright.
func NewState(value float64) State {
	return State{
		DisplayValue: value,
		DisplayMin:   0,
		DisplayMax:   1,
		GridLabels:   make(map[int64]float64),
	}
}

// Input is everything a frame reads from outside.
type Input struct {
	// Now is the wall clock in unix seconds.
	Now float64
	// Points are the samples, ordered by Time.
	Points []Point
	// Value is the latest live value the display eases towards.
	Value float64

	Width  float64
	Height float64

	// Grid enables y grid lines and the time axis.
	Grid bool
	// Scrub enables the hover crosshair.
	Scrub bool
	// Hovering tells whether the pointer is over the chart, at HoverX.
	Hovering bool
	HoverX   float64
}

// Hover is the resolved crosshair of a frame.
type Hover struct {
	Time    float64 `json:"time"`
	Value   float64 `json:"value"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
}

// TimeTick is a time axis label position.
type TimeTick struct {
	Time float64 `json:"time"`
	X    float64 `json:"x"`
}

// Frame is the drawable output of one step.
type Frame struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Plot  Rect    `json:"plot"`

	Visible []Point       `json:"visible"`
	Points  []curve.Point `json:"points"`

	GridLines []GridLine `json:"gridLines"`
	TimeTicks []TimeTick `json:"timeTicks"`

	// Dot is the live dot, valid when HasDot.
	Dot    curve.Point `json:"dot"`
	HasDot bool        `json:"hasDot"`

	Hover *Hover `json:"hover,omitempty"`
}

// Stroke traces the line through the frame's points on c.
func (f *Frame) Stroke(c curve.Canvas) {
	if len(f.Points) < 2 {
		return
	}

	c.MoveTo(f.Points[0].X, f.Points[0].Y)
	curve.DrawSpline(c, f.Points)
}

// Fill traces the area under the line down to the plot bottom on c.
func (f *Frame) Fill(c curve.Canvas) {
	if len(f.Points) < 2 {
		return
	}

	bottom := f.Plot.Y + f.Plot.H
	first, last := f.Points[0], f.Points[len(f.Points)-1]

	c.MoveTo(first.X, bottom)
	c.LineTo(first.X, first.Y)
	curve.DrawSpline(c, f.Points)
	c.LineTo(last.X, bottom)
	c.ClosePath()
}
