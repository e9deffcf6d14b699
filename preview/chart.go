package preview

import (
	"fmt"
	"io"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/plot"
	"github.com/sgostarter/libchart/series"
	"github.com/sgostarter/libchart/stack"
	"github.com/sgostarter/libchart/ticks"
	"github.com/spf13/cast"
)

// Chart describes a line, stacked area or vertical bar chart over records.
type Chart struct {
	Width  int
	Height int

	Rows    []map[string]any
	XKey    string
	DataKey string
	Series  []series.Series
	Mode    curve.Mode
	Stacked bool
	Bars    bool
}

// Build runs the rows through the engine and lays the result out as a
// Document.
func Build(c Chart, logger l.Wrapper) Document {
	resolved := series.Resolve(c.Series, c.DataKey, "", logger)
	keys := series.Keys(resolved)

	area := plot.NewArea(float64(c.Width), float64(c.Height), c.XKey != "", true)

	doc := Document{
		Width:      c.Width,
		Height:     c.Height,
		Left:       area.Left,
		Top:        area.Top,
		PlotWidth:  area.Width,
		PlotHeight: area.Height,
	}

	var axis ticks.Result

	labelX := func(i int) float64 {
		return plot.IndexX(i, len(c.Rows), area.Width)
	}

	switch {
	case c.Bars:
		opts := []plot.Option{plot.ZeroBaseOption()}
		if c.Stacked {
			opts = append(opts, plot.StackedOption())
		}

		axis = plot.YAxis(c.Rows, keys, opts...)

		for _, bar := range plot.BarRects(c.Rows, keys, axis, area.Width, area.Height, plot.Vertical, c.Stacked) {
			doc.Layers = append(doc.Layers, Layer{
				Path: rectPath(bar.Rect),
				Fill: resolved[bar.Series].Color,
			})
		}

		layout := plot.NewBarLayout(area.Width, len(c.Rows), len(keys), c.Stacked)
		labelX = layout.Center
	case c.Stacked:
		bands := stack.Data(c.Rows, keys)
		axis = plot.StackedYAxis(bands)

		for i, path := range plot.BandPaths(bands, axis.Min, axis.Max, area.Width, area.Height, c.Mode) {
			doc.Layers = append(doc.Layers, Layer{
				Path:    path,
				Fill:    resolved[i].Color,
				Opacity: 0.6,
			})
		}
	default:
		axis = plot.YAxis(c.Rows, keys)

		for _, s := range resolved {
			pts := plot.SeriesPoints(c.Rows, s.Key, axis.Min, axis.Max, area.Width, area.Height)

			doc.Layers = append(doc.Layers, Layer{
				Path:   curve.PathString(pts, c.Mode),
				Stroke: s.Color,
				Dash:   series.DashPattern(s.Style),
			})
		}
	}

	for _, tick := range plot.YTicks(axis, area.Height) {
		doc.Grid = append(doc.Grid, GridLine{
			Y:     tick.Y,
			Label: ticks.FormatValue(tick.Value),
		})
	}

	if c.XKey != "" {
		for _, i := range plot.XLabelIndices(len(c.Rows), area.Width, plot.LabelSpacing) {
			doc.XLabels = append(doc.XLabels, XLabel{
				X:     labelX(i),
				Label: cast.ToString(c.Rows[i][c.XKey]),
			})
		}
	}

	return doc
}

func rectPath(r plot.Rect) string {
	return curve.PathString([]curve.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}, curve.ModeLinear) + "Z"
}

// RenderChart builds and renders c.
func RenderChart(w io.Writer, c Chart, logger l.Wrapper) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, c.Width, c.Height)
	}

	return Render(w, Build(c, logger))
}
