package curve

import bez "honnef.co/go/curve"

// Canvas is an immediate-mode path sink in the style of a 2D canvas context.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Replay issues the path's commands on c, unrounded. Quadratic segments are
// raised to cubics.
func (p *Path) Replay(c Canvas) {
	var start, current Point

	for _, el := range p.BezPath {
		switch el.Kind {
		case bez.MoveToKind:
			start = el.P0

			c.MoveTo(el.P0.X, el.P0.Y)
		case bez.LineToKind:
			c.LineTo(el.P0.X, el.P0.Y)
		case bez.QuadToKind:
			cb := bez.QuadBez{P0: current, P1: el.P0, P2: el.P1}.Raise()
			c.BezierCurveTo(cb.P1.X, cb.P1.Y, cb.P2.X, cb.P2.Y, cb.P3.X, cb.P3.Y)
		case bez.CubicToKind:
			c.BezierCurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case bez.ClosePathKind:
			current = start

			c.ClosePath()
		}

		if end, ok := el.EndPoint(); ok {
			current = end
		}
	}
}

// DrawSpline continues the current subpath of c through points[1:] as a
// monotone spline. The caller has already moved (or lined) to points[0],
// which lets fills prepend their own edges.
func DrawSpline(c Canvas, points []Point) {
	if len(points) < 2 {
		return
	}

	p := Build(points, ModeMonotone)
	p.BezPath = p.BezPath[1:]
	p.Replay(c)
}
