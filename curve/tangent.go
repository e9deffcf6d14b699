package curve

import "math"

// flatSecant is the slope below which a segment counts as horizontal.
const flatSecant = 1e-10

// Tangents holds the per-segment x spans and per-point tangents of a
// monotone cubic Hermite spline.
type Tangents struct {
	DX []float64
	M  []float64
}

// MonotoneTangents computes Fritsch-Carlson tangents for points.
//
// Interior tangents average the neighbouring secants, but are zero at local
// extrema and next to flat segments. Tangent pairs are then scaled so that
// (alpha² + beta²) <= 9 on every segment, which keeps each cubic piece
// monotone. Endpoint tangents equal their single adjacent secant.
//
// Every builder and interpolator in this package goes through here, so drawn
// paths and hover values stay numerically identical.
func MonotoneTangents(points []Point) Tangents {
	n := len(points)
	if n < 2 {
		return Tangents{}
	}

	dx := make([]float64, n-1)
	slopes := make([]float64, n-1)

	for i := 0; i < n-1; i++ {
		dx[i] = points[i+1].X - points[i].X
		if dx[i] != 0 {
			slopes[i] = (points[i+1].Y - points[i].Y) / dx[i]
		}
	}

	m := make([]float64, n)
	m[0] = slopes[0]
	m[n-1] = slopes[n-2]

	for i := 1; i < n-1; i++ {
		if slopes[i-1]*slopes[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = (slopes[i-1] + slopes[i]) / 2
		}
	}

	for i := 0; i < n-1; i++ {
		if math.Abs(slopes[i]) < flatSecant {
			m[i] = 0
			m[i+1] = 0

			continue
		}

		alpha := m[i] / slopes[i]
		beta := m[i+1] / slopes[i]

		if s := alpha*alpha + beta*beta; s > 9 {
			tau := 3 / math.Sqrt(s)
			m[i] = tau * alpha * slopes[i]
			m[i+1] = tau * beta * slopes[i]
		}
	}

	return Tangents{
		DX: dx,
		M:  m,
	}
}

// controls returns the Bezier control points of segment i.
func (t Tangents) controls(points []Point, i int) (c1, c2 Point) {
	d := t.DX[i]

	c1 = Point{X: points[i].X + d/3, Y: points[i].Y + t.M[i]*d/3}
	c2 = Point{X: points[i+1].X - d/3, Y: points[i+1].Y - t.M[i+1]*d/3}

	return
}
