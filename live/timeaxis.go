package live

import "math"

const maxTimeTicks = 1000

// InterpolateAtTime returns the linearly interpolated value at t, clamped to
// the first and last samples. points must be ordered by Time.
func InterpolateAtTime(points []Point, t float64) float64 {
	n := len(points)

	switch {
	case n == 0:
		return 0
	case n == 1, t <= points[0].Time:
		return points[0].Value
	case t >= points[n-1].Time:
		return points[n-1].Value
	}

	lo, hi := 0, n-1

	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		if points[mid].Time <= t {
			lo = mid
		} else {
			hi = mid
		}
	}

	d := points[hi].Time - points[lo].Time
	if d == 0 {
		return points[lo].Value
	}

	return points[lo].Value + (points[hi].Value-points[lo].Value)*(t-points[lo].Time)/d
}

// TimeTicks returns whole-second label times in [left, right], about count
// per window.
func TimeTicks(left, right, window float64, count int) []float64 {
	if count <= 0 {
		count = 5
	}

	if right < left || math.IsNaN(left) || math.IsNaN(right) || math.IsInf(right-left, 0) {
		return nil
	}

	step := math.Max(1, math.Ceil(window/float64(count)))
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	var ts []float64

	first := math.Ceil(left/step) * step

	for i := 0; i < maxTimeTicks; i++ {
		t := first + float64(i)*step
		if t > right {
			break
		}

		ts = append(ts, t)
	}

	return ts
}
