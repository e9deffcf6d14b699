package arc

import (
	"math"
	"strings"

	"github.com/sgostarter/libchart/curve"
)

// fullCircle is the sweep from which an arc is drawn as two halves: a single
// SVG arc whose end equals its start draws nothing.
const fullCircle = 2*math.Pi - 0.001

// PolarToCartesian returns the point at angle (radians, clockwise from +x in
// screen space) on the circle of radius r around (cx, cy).
func PolarToCartesian(cx, cy, r, angle float64) curve.Point {
	return curve.Point{
		X: cx + r*math.Cos(angle),
		Y: cy + r*math.Sin(angle),
	}
}

// Path is the SVG outline of a donut ring segment between start and end
// angles, or of a pie wedge when innerR is 0.
func Path(cx, cy, outerR, innerR, start, end float64) string {
	sweep := end - start

	if sweep >= fullCircle {
		mid := start + math.Pi

		return Path(cx, cy, outerR, innerR, start, mid) + " " + Path(cx, cy, outerR, innerR, mid, end-0.001)
	}

	largeArc := "0"
	if sweep > math.Pi {
		largeArc = "1"
	}

	outerStart := PolarToCartesian(cx, cy, outerR, start)
	outerEnd := PolarToCartesian(cx, cy, outerR, end)

	var parts []string

	if innerR > 0 {
		innerStart := PolarToCartesian(cx, cy, innerR, end)
		innerEnd := PolarToCartesian(cx, cy, innerR, start)

		parts = []string{
			"M " + xy(outerStart),
			"A " + radii(outerR) + " 0 " + largeArc + " 1 " + xy(outerEnd),
			"L " + xy(innerStart),
			"A " + radii(innerR) + " 0 " + largeArc + " 0 " + xy(innerEnd),
			"Z",
		}
	} else {
		parts = []string{
			"M " + xy(curve.Point{X: cx, Y: cy}),
			"L " + xy(outerStart),
			"A " + radii(outerR) + " 0 " + largeArc + " 1 " + xy(outerEnd),
			"Z",
		}
	}

	return strings.Join(parts, " ")
}

func xy(p curve.Point) string {
	return curve.FormatCoord(p.X) + " " + curve.FormatCoord(p.Y)
}

func radii(r float64) string {
	s := curve.FormatCoord(r)

	return s + " " + s
}
