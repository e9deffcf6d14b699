package curve

import bez "honnef.co/go/curve"

// Interpolator evaluates a curve's y at a screen x. It is closed over a fixed
// point set; build a new one when the points change.
type Interpolator func(x float64) float64

func constant(y float64) Interpolator {
	return func(float64) float64 {
		return y
	}
}

// findSegment returns i such that x lies within [points[i].X, points[i+1].X].
// points needs at least two entries.
func findSegment(points []Point, x float64) int {
	lo, hi := 0, len(points)-2

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if x > points[mid+1].X {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// LinearInterpolator follows the straight segments drawn by LinearPath.
// Queries outside the point range clamp to the boundary y.
func LinearInterpolator(points []Point) Interpolator {
	assertOrdered(points)

	switch len(points) {
	case 0:
		return constant(0)
	case 1:
		return constant(points[0].Y)
	}

	pts := append([]Point(nil), points...)
	n := len(pts)

	return func(x float64) float64 {
		if x <= pts[0].X {
			return pts[0].Y
		}

		if x >= pts[n-1].X {
			return pts[n-1].Y
		}

		seg := findSegment(pts, x)

		d := pts[seg+1].X - pts[seg].X
		if d == 0 {
			return pts[seg].Y
		}

		t := (x - pts[seg].X) / d

		return pts[seg].Y + (pts[seg+1].Y-pts[seg].Y)*t
	}
}

// MonotoneInterpolator follows the cubic segments drawn by MonotonePath,
// using the same tangents, so a hover dot sits exactly on the stroke.
func MonotoneInterpolator(points []Point) Interpolator {
	assertOrdered(points)

	switch len(points) {
	case 0:
		return constant(0)
	case 1:
		return constant(points[0].Y)
	case 2:
		p0, p1 := points[0], points[1]

		return func(x float64) float64 {
			d := p1.X - p0.X
			if d == 0 {
				return p0.Y
			}

			t := (x - p0.X) / d
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}

			return p0.Y + (p1.Y-p0.Y)*t
		}
	}

	pts := append([]Point(nil), points...)
	n := len(pts)
	tg := MonotoneTangents(pts)

	cubics := make([]bez.CubicBez, n-1)
	for i := range cubics {
		c1, c2 := tg.controls(pts, i)
		cubics[i] = bez.CubicBez{P0: pts[i], P1: c1, P2: c2, P3: pts[i+1]}
	}

	return func(x float64) float64 {
		if x <= pts[0].X {
			return pts[0].Y
		}

		if x >= pts[n-1].X {
			return pts[n-1].Y
		}

		seg := findSegment(pts, x)

		d := tg.DX[seg]
		if d == 0 {
			return pts[seg].Y
		}

		// The control x values sit at thirds of the segment, so the Bezier x
		// component is linear in t and t maps directly from x.
		return cubics[seg].Eval((x - pts[seg].X) / d).Y
	}
}

func NewInterpolator(points []Point, mode Mode) Interpolator {
	if mode == ModeMonotone {
		return MonotoneInterpolator(points)
	}

	return LinearInterpolator(points)
}
