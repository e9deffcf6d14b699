package preview

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/sgostarter/libchart/curve"
)

// Layer is one drawn path.
type Layer struct {
	Path        string  `json:"path"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Dash        string  `json:"dash"`
	Opacity     float64 `json:"opacity"`
}

func (layer Layer) style() string {
	fill := layer.Fill
	if fill == "" {
		fill = "none"
	}

	s := "fill:" + fill

	if layer.Stroke != "" {
		width := layer.StrokeWidth
		if width <= 0 {
			width = 2
		}

		s += fmt.Sprintf(";stroke:%s;stroke-width:%s;stroke-linejoin:round;stroke-linecap:round",
			layer.Stroke, curve.FormatCoord(width))
	}

	if layer.Dash != "" {
		s += ";stroke-dasharray:" + layer.Dash
	}

	if layer.Opacity > 0 && layer.Opacity < 1 {
		s += ";opacity:" + curve.FormatCoord(layer.Opacity)
	}

	return s
}

// GridLine is a horizontal rule across the plot with an axis label.
type GridLine struct {
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// XLabel is an x axis label under the plot.
type XLabel struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// Document is a chart's engine output laid out for eyeballing.
type Document struct {
	Width  int
	Height int
	// Left and Top offset the plot inside the document.
	Left float64
	Top  float64
	// PlotWidth and PlotHeight size the grid rules.
	PlotWidth  float64
	PlotHeight float64

	Layers  []Layer
	Grid    []GridLine
	XLabels []XLabel
}

// Render writes doc as a standalone SVG document.
func Render(w io.Writer, doc Document) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(doc.Width, doc.Height)
	canvas.Rect(0, 0, doc.Width, doc.Height, "fill:white")
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", curve.FormatCoord(doc.Left), curve.FormatCoord(doc.Top)))

	if len(doc.Grid) > 0 {
		canvas.Gstyle("font-family:monospace;font-size:11px;fill:#666")

		for _, g := range doc.Grid {
			y := round(g.Y)

			canvas.Line(0, y, round(doc.PlotWidth), y, "stroke:#000;stroke-opacity:0.06;stroke-dasharray:1 3")
			canvas.Text(-8, y, g.Label, "text-anchor:end;dominant-baseline:middle")
		}

		canvas.Gend()
	}

	for _, layer := range doc.Layers {
		if layer.Path == "" {
			continue
		}

		canvas.Path(layer.Path, layer.style())
	}

	if len(doc.XLabels) > 0 {
		canvas.Gstyle("font-family:monospace;font-size:11px;fill:#666;text-anchor:middle")

		for _, label := range doc.XLabels {
			canvas.Text(round(label.X), round(doc.PlotHeight)+20, label.Label)
		}

		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()

	return ew.err
}

func round(v float64) int {
	return int(curve.Round2(v) + 0.5)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}

	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}

	return n, err
}
