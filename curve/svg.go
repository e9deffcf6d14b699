package curve

import (
	"math"
	"strconv"
	"strings"

	bez "honnef.co/go/curve"
)

// SVG renders the path as SVG path data: M x,y / L x,y / Q c1x,c1y,x,y /
// C c1x,c1y,c2x,c2y,x,y / Z, coordinates rounded to two decimals.
func (p *Path) SVG() string {
	var sb strings.Builder

	for _, el := range p.BezPath {
		switch el.Kind {
		case bez.MoveToKind:
			sb.WriteByte('M')
			writeCoords(&sb, el.P0)
		case bez.LineToKind:
			sb.WriteByte('L')
			writeCoords(&sb, el.P0)
		case bez.QuadToKind:
			sb.WriteByte('Q')
			writeCoords(&sb, el.P0, el.P1)
		case bez.CubicToKind:
			sb.WriteByte('C')
			writeCoords(&sb, el.P0, el.P1, el.P2)
		case bez.ClosePathKind:
			sb.WriteByte('Z')
		}
	}

	return sb.String()
}

func writeCoords(sb *strings.Builder, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(FormatCoord(pt.X))
		sb.WriteByte(',')
		sb.WriteString(FormatCoord(pt.Y))
	}
}

// Round2 rounds v to two decimals, halves towards +Inf.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// FormatCoord formats a coordinate for path data.
func FormatCoord(v float64) string {
	r := Round2(v)
	if r == 0 {
		return "0"
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

func LinearPath(points []Point) string {
	return Build(points, ModeLinear).SVG()
}

func MonotonePath(points []Point) string {
	return Build(points, ModeMonotone).SVG()
}

func PathString(points []Point, mode Mode) string {
	return Build(points, mode).SVG()
}

// AreaPath outlines the region between top and base: the top edge left to
// right, then the base edge right to left, closed.
func AreaPath(top, base []Point, mode Mode) string {
	if len(top) == 0 {
		return ""
	}

	topPath, basePath := areaEdges(top, base, mode)

	return topPath.SVG() + " " + basePath.SVG() + " Z"
}
