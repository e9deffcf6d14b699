package curve

import bez "honnef.co/go/curve"

// Path is a renderer-agnostic path descriptor over a Bezier path. Emit it as
// SVG path data with SVG, or replay it onto any Canvas.
type Path struct {
	bez.BezPath
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) IsEmpty() bool {
	return len(p.BezPath) == 0
}

// Reverse returns p traced backwards, subpath by subpath.
func (p *Path) Reverse() *Path {
	return &Path{BezPath: p.ReverseSubpaths()}
}

// Build returns the path through points for mode.
//
// Monotone mode needs at least three points to benefit from tangent
// smoothing; with fewer it degrades to straight lines. Otherwise every
// segment becomes one cubic Bezier with controls at p[i] ± (dx/3, m·dx/3).
func Build(points []Point, mode Mode) *Path {
	assertOrdered(points)

	p := NewPath()

	if mode == ModeMonotone && len(points) >= 3 {
		appendMonotone(p, points)
	} else {
		appendLinear(p, points)
	}

	return p
}

func appendLinear(p *Path, points []Point) {
	if len(points) == 0 {
		return
	}

	p.MoveTo(points[0])

	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
}

func appendMonotone(p *Path, points []Point) {
	t := MonotoneTangents(points)

	p.MoveTo(points[0])

	for i := 0; i < len(points)-1; i++ {
		c1, c2 := t.controls(points, i)
		p.CubicTo(c1, c2, points[i+1])
	}
}

// areaEdges builds the top edge left to right and the base edge right to
// left, the base starting with a line so it joins the top.
func areaEdges(top, base []Point, mode Mode) (topPath, basePath *Path) {
	topPath = Build(top, mode)
	basePath = Build(base, mode).Reverse()

	if !basePath.IsEmpty() {
		basePath.BezPath[0].Kind = bez.LineToKind
	}

	return
}

// BuildArea returns the closed outline between top and base.
func BuildArea(top, base []Point, mode Mode) *Path {
	if len(top) == 0 {
		return NewPath()
	}

	topPath, basePath := areaEdges(top, base, mode)

	area := &Path{BezPath: append(topPath.BezPath, basePath.BezPath...)}
	area.ClosePath()

	return area
}
