package plot

import (
	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/stack"
	"github.com/sgostarter/libchart/ticks"
)

// SeriesPoints maps row values under key to plot pixels: x by record index,
// y by [yMin, yMax] onto [height, 0]. Rows without a usable value are left
// out, so the line bridges the gap.
func SeriesPoints(rows []map[string]any, key string, yMin, yMax, width, height float64) []curve.Point {
	if width <= 0 || height <= 0 || len(rows) == 0 {
		return nil
	}

	points := make([]curve.Point, 0, len(rows))

	for i, row := range rows {
		v, ok := stack.Value(row, key)
		if !ok {
			continue
		}

		points = append(points, curve.Point{
			X: IndexX(i, len(rows), width),
			Y: scale.Linear(v, yMin, yMax, height, 0),
		})
	}

	return points
}

// BandPoints maps each band's topline and baseline to plot pixels.
func BandPoints(bands []stack.Band, yMin, yMax, width, height float64) (top, base [][]curve.Point) {
	if width <= 0 || height <= 0 {
		return
	}

	top = make([][]curve.Point, len(bands))
	base = make([][]curve.Point, len(bands))

	for b, band := range bands {
		n := len(band.Topline)

		top[b] = make([]curve.Point, n)
		base[b] = make([]curve.Point, n)

		for i := 0; i < n; i++ {
			x := IndexX(i, n, width)

			top[b][i] = curve.Point{X: x, Y: scale.Linear(band.Topline[i], yMin, yMax, height, 0)}
			base[b][i] = curve.Point{X: x, Y: scale.Linear(band.Baseline[i], yMin, yMax, height, 0)}
		}
	}

	return
}

// BandPaths outlines every band as a closed area path.
func BandPaths(bands []stack.Band, yMin, yMax, width, height float64, mode curve.Mode) []string {
	top, base := BandPoints(bands, yMin, yMax, width, height)

	paths := make([]string, len(top))
	for i := range top {
		paths[i] = curve.AreaPath(top[i], base[i], mode)
	}

	return paths
}

// TickY is a y axis label position.
type TickY struct {
	Value float64 `json:"value"`
	Y     float64 `json:"y"`
}

// YTicks positions the axis ticks on a plot of the given height.
func YTicks(axis ticks.Result, height float64) []TickY {
	if height <= 0 {
		return nil
	}

	out := make([]TickY, len(axis.Ticks))
	for i, v := range axis.Ticks {
		out[i] = TickY{
			Value: v,
			Y:     scale.Linear(v, axis.Min, axis.Max, height, 0),
		}
	}

	return out
}
