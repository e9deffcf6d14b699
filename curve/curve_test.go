package curve

import (
	"errors"
	"image"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/ticks"
	"github.com/stretchr/testify/assert"
	bez "honnef.co/go/curve"
)

var numberRe = regexp.MustCompile(`-?\d+(\.\d+)?`)

func TestMonotonePathEmpty(t *testing.T) {
	assert.EqualValues(t, "", MonotonePath(nil))
	assert.EqualValues(t, "", LinearPath([]Point{}))
}

func TestMonotonePathSinglePoint(t *testing.T) {
	assert.EqualValues(t, "M10,20", MonotonePath([]Point{{X: 10, Y: 20}}))
	assert.EqualValues(t, "M10,20", LinearPath([]Point{{X: 10, Y: 20}}))
}

func TestMonotonePathTwoPoints(t *testing.T) {
	assert.EqualValues(t, "M0,0L100,50", MonotonePath([]Point{{0, 0}, {100, 50}}))
}

func TestMonotonePathCubics(t *testing.T) {
	p := MonotonePath([]Point{{0, 0}, {50, 50}, {100, 0}})
	assert.True(t, strings.HasPrefix(p, "M0,0C"))
	assert.EqualValues(t, 2, strings.Count(p, "C"))
	assert.False(t, strings.Contains(p, "L"))
	assert.True(t, strings.HasSuffix(p, ",100,0"))
}

func TestMonotonePathControls(t *testing.T) {
	// Peak in the middle: the interior tangent is zero, so both controls
	// around it are level with the peak.
	p := MonotonePath([]Point{{0, 0}, {30, 30}, {60, 0}})
	assert.EqualValues(t, "M0,0C10,10,20,30,30,30C40,30,50,10,60,0", p)
}

func TestLinearPath(t *testing.T) {
	p := LinearPath([]Point{{0, 10}, {50, 20}, {100, 5}})
	assert.EqualValues(t, "M0,10L50,20L100,5", p)
}

func TestPathRounding(t *testing.T) {
	pts := []Point{{0.123456, 1.98765}, {33.333333, 66.666666}, {99.999, 0.004}, {150.5555, 12.346}}

	for _, p := range []string{LinearPath(pts), MonotonePath(pts)} {
		for _, n := range numberRe.FindAllString(p, -1) {
			if idx := strings.IndexByte(n, '.'); idx >= 0 {
				assert.True(t, len(n)-idx-1 <= 2, "%s in %s", n, p)
			}
		}
	}

	assert.EqualValues(t, "M0.12,1.99L33.33,66.67L100,0L150.56,12.35", LinearPath(pts))
}

func TestFormatCoord(t *testing.T) {
	assert.EqualValues(t, "0", FormatCoord(-0.001))
	assert.EqualValues(t, "-2.5", FormatCoord(-2.5))
	assert.EqualValues(t, "66.67", FormatCoord(200.0/3))
	assert.EqualValues(t, "1234", FormatCoord(1234))
}

func TestPathStartsAndEnds(t *testing.T) {
	pts := []Point{{0, 80}, {25, 10}, {50, 60}, {75, 30}, {100, 45}}

	for _, mode := range []Mode{ModeLinear, ModeMonotone} {
		p := PathString(pts, mode)
		assert.True(t, strings.HasPrefix(p, "M0,80"), p)
		assert.True(t, strings.HasSuffix(p, "100,45"), p)
	}
}

func TestBuildElements(t *testing.T) {
	p := Build([]Point{{0, 0}, {10, 10}, {20, 0}, {30, 10}}, ModeMonotone)
	assert.EqualValues(t, 4, len(p.BezPath))
	assert.EqualValues(t, bez.MoveToKind, p.BezPath[0].Kind)

	for _, el := range p.BezPath[1:] {
		assert.EqualValues(t, bez.CubicToKind, el.Kind)
	}

	assert.True(t, Build(nil, ModeMonotone).IsEmpty())

	l := Build([]Point{{0, 0}, {10, 10}}, ModeMonotone)
	assert.EqualValues(t, bez.LineToKind, l.BezPath[1].Kind)
}

func TestReverseMatchesReversedPoints(t *testing.T) {
	pts := []Point{{0, 80}, {25, 10}, {50, 60}, {75, 30}, {100, 45}}
	reversed := make([]Point, len(pts))

	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}

	// Building from reversed points would trip the ordering check, so the
	// comparison goes through the unchecked builder.
	want := NewPath()
	appendMonotone(want, reversed)

	assert.EqualValues(t, want.SVG(), Build(pts, ModeMonotone).Reverse().SVG())
	assert.EqualValues(t, "M100,45L75,30L50,60L25,10L0,80", Build(pts, ModeLinear).Reverse().SVG())
	assert.EqualValues(t, "M3,4", Build([]Point{{3, 4}}, ModeLinear).Reverse().SVG())
}

func TestAreaPath(t *testing.T) {
	top := []Point{{0, 10}, {50, 20}, {100, 5}}
	base := []Point{{0, 100}, {50, 100}, {100, 100}}

	assert.EqualValues(t, "M0,10L50,20L100,5 L100,100L50,100L0,100 Z", AreaPath(top, base, ModeLinear))
	assert.EqualValues(t, "", AreaPath(nil, base, ModeLinear))

	p := AreaPath(top, base, ModeMonotone)
	assert.True(t, strings.HasPrefix(p, "M0,10C"))
	assert.True(t, strings.Contains(p, " L100,100C"))
	assert.True(t, strings.HasSuffix(p, " Z"))

	assert.EqualValues(t, "M0,10L50,20L100,5  Z", AreaPath(top, nil, ModeLinear))
}

func TestBuildArea(t *testing.T) {
	top := []Point{{0, 10}, {50, 20}, {100, 5}}
	base := []Point{{0, 100}, {50, 100}, {100, 100}}

	area := BuildArea(top, base, ModeLinear)
	assert.EqualValues(t, "M0,10L50,20L100,5L100,100L50,100L0,100Z", area.SVG())
	assert.True(t, BuildArea(nil, base, ModeLinear).IsEmpty())

	bb := area.BoundingBox()
	assert.EqualValues(t, 0, bb.X0)
	assert.EqualValues(t, 100, bb.X1)

	rc := NewRasterCanvas(100, 100)
	area.Replay(rc)

	mask := rc.Mask()
	assert.EqualValues(t, 255, mask.AlphaAt(50, 60).A)
	assert.EqualValues(t, 0, mask.AlphaAt(50, 5).A)
}

func TestMonotoneTangents(t *testing.T) {
	tg := MonotoneTangents([]Point{{0, 0}, {1, 1}, {2, 3}, {3, 3}, {4, 0}})
	assert.EqualValues(t, []float64{1, 1, 1, 1}, tg.DX)
	assert.EqualValues(t, 1, tg.M[0])
	assert.EqualValues(t, 1.5, tg.M[1])
	// Flat segment zeroes the tangents on both of its ends.
	assert.EqualValues(t, 0, tg.M[2])
	assert.EqualValues(t, 0, tg.M[3])
	assert.EqualValues(t, -3, tg.M[4])

	assert.EqualValues(t, Tangents{}, MonotoneTangents([]Point{{1, 1}}))
}

func TestMonotoneTangentsBound(t *testing.T) {
	// A steep step followed by a shallow rise would overshoot without the
	// alpha²+beta² <= 9 constraint.
	pts := []Point{{0, 0}, {1, 100}, {2, 101}, {3, 102}}
	tg := MonotoneTangents(pts)

	for i := 0; i < len(pts)-1; i++ {
		secant := (pts[i+1].Y - pts[i].Y) / tg.DX[i]
		alpha := tg.M[i] / secant
		beta := tg.M[i+1] / secant
		assert.True(t, alpha*alpha+beta*beta <= 9+1e-9)
	}
}

func TestLinearInterpolator(t *testing.T) {
	assert.EqualValues(t, 0, LinearInterpolator(nil)(42))
	assert.EqualValues(t, 7, LinearInterpolator([]Point{{5, 7}})(-100))

	f := LinearInterpolator([]Point{{0, 0}, {100, 50}, {200, 0}})
	assert.InDelta(t, 25, f(50), 1e-9)
	assert.InDelta(t, 50, f(100), 1e-9)
	assert.InDelta(t, 25, f(150), 1e-9)
	assert.EqualValues(t, 0, f(-10))
	assert.EqualValues(t, 0, f(250))
}

func TestLinearInterpolatorCoincident(t *testing.T) {
	f := LinearInterpolator([]Point{{0, 10}, {0, 20}})
	assert.EqualValues(t, 10, f(0))
	assert.False(t, math.IsNaN(f(0)))
}

func TestMonotoneInterpolatorSmall(t *testing.T) {
	assert.EqualValues(t, 0, MonotoneInterpolator(nil)(1))
	assert.EqualValues(t, 3, MonotoneInterpolator([]Point{{1, 3}})(100))

	f := MonotoneInterpolator([]Point{{0, 0}, {100, 100}})
	assert.InDelta(t, 50, f(50), 1e-9)
	assert.EqualValues(t, 0, f(-5))
	assert.EqualValues(t, 100, f(500))

	g := MonotoneInterpolator([]Point{{10, 4}, {10, 8}})
	assert.EqualValues(t, 4, g(10))
}

func TestMonotoneInterpolatorCoincident(t *testing.T) {
	f := MonotoneInterpolator([]Point{{0, 0}, {10, 5}, {10, 9}, {20, 3}})

	for x := -5.0; x <= 25; x += 0.5 {
		assert.False(t, math.IsNaN(f(x)), "x=%v", x)
	}

	assert.EqualValues(t, 5, f(10))
}

func TestInterpolatorsPassThroughPoints(t *testing.T) {
	sets := [][]Point{
		{{0, 80}, {25, 10}, {50, 60}, {75, 30}, {100, 45}},
		{{0, 1}, {1, 2}, {3, 2}, {4, 10}, {10, -4}, {11, -4.5}},
		{{0, 5}, {2, 5}, {4, 5}},
	}

	for _, pts := range sets {
		for _, f := range []Interpolator{LinearInterpolator(pts), MonotoneInterpolator(pts)} {
			for _, p := range pts {
				assert.InDelta(t, p.Y, f(p.X), 1e-5)
			}
		}
	}
}

func TestInterpolatorsClamp(t *testing.T) {
	pts := []Point{{10, 30}, {20, 10}, {30, 50}, {40, 20}}

	for _, mode := range []Mode{ModeLinear, ModeMonotone} {
		f := NewInterpolator(pts, mode)
		assert.EqualValues(t, 30, f(-1000))
		assert.EqualValues(t, 30, f(9.99))
		assert.EqualValues(t, 20, f(40.01))
		assert.EqualValues(t, 20, f(1e9))
	}
}

func assertMonotone(t *testing.T, f Interpolator, from, to float64, increasing bool) {
	t.Helper()

	prev := f(from)

	for x := from; x <= to; x += (to - from) / 2000 {
		y := f(x)
		if increasing {
			assert.True(t, y >= prev-1e-9, "regressed at x=%v: %v < %v", x, y, prev)
		} else {
			assert.True(t, y <= prev+1e-9, "regressed at x=%v: %v > %v", x, y, prev)
		}

		prev = y
	}
}

func TestMonotoneInterpolatorIsMonotone(t *testing.T) {
	up := []Point{{0, 0}, {10, 1}, {20, 1}, {30, 50}, {40, 51}, {50, 200}, {60, 201}}
	assertMonotone(t, MonotoneInterpolator(up), -5, 65, true)

	down := make([]Point, len(up))
	for i, p := range up {
		down[i] = Point{X: p.X, Y: -p.Y}
	}

	assertMonotone(t, MonotoneInterpolator(down), -5, 65, false)
}

func TestMonotoneInterpolatorMatchesPath(t *testing.T) {
	pts := []Point{{0, 80}, {25, 10}, {50, 60}, {75, 30}, {100, 45}}
	f := MonotoneInterpolator(pts)
	p := Build(pts, ModeMonotone)

	// Evaluate the drawn cubics directly and compare.
	i := 0

	for seg := range p.Segments() {
		cb := seg.Cubic()

		for _, u := range []float64{0.25, 0.5, 0.75} {
			mid := cb.Eval(u)
			assert.InDelta(t, mid.Y, f(mid.X), 1e-9, "segment %d t=%v", i, u)
		}

		i++
	}

	assert.EqualValues(t, len(pts)-1, i)
}

func TestInterpolatorIsolatedFromInput(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}, {20, 0}}
	f := MonotoneInterpolator(pts)
	before := f(5)

	pts[1].Y = 1000
	assert.EqualValues(t, before, f(5))
}

type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) MoveTo(x, y float64) {
	c.ops = append(c.ops, "M")
}

func (c *recordingCanvas) LineTo(x, y float64) {
	c.ops = append(c.ops, "L")
}

func (c *recordingCanvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.ops = append(c.ops, "C")
}

func (c *recordingCanvas) ClosePath() {
	c.ops = append(c.ops, "Z")
}

func TestDrawSpline(t *testing.T) {
	c := &recordingCanvas{}
	DrawSpline(c, []Point{{0, 0}})
	assert.EqualValues(t, 0, len(c.ops))

	DrawSpline(c, []Point{{0, 0}, {10, 10}})
	assert.EqualValues(t, []string{"L"}, c.ops)

	c = &recordingCanvas{}
	DrawSpline(c, []Point{{0, 0}, {10, 10}, {20, 5}, {30, 7}})
	assert.EqualValues(t, []string{"C", "C", "C"}, c.ops)
}

func TestReplay(t *testing.T) {
	p := Build([]Point{{0, 0}, {10, 10}, {20, 5}}, ModeMonotone)
	p.ClosePath()

	c := &recordingCanvas{}
	p.Replay(c)
	assert.EqualValues(t, []string{"M", "C", "C", "Z"}, c.ops)

	q := NewPath()
	q.MoveTo(Point{X: 0, Y: 0})
	q.QuadTo(Point{X: 15, Y: 30}, Point{X: 30, Y: 0})

	c = &recordingCanvas{}
	q.Replay(c)
	assert.EqualValues(t, []string{"M", "C"}, c.ops)
	assert.EqualValues(t, "M0,0Q15,30,30,0", q.SVG())
}

func TestRasterCanvas(t *testing.T) {
	rc := NewRasterCanvas(40, 40)
	assert.EqualValues(t, image.Rect(0, 0, 40, 40), rc.Bounds())

	rc.MoveTo(0, 40)
	rc.LineTo(0, 20)
	DrawSpline(rc, []Point{{0, 20}, {20, 10}, {40, 20}})
	rc.LineTo(40, 40)
	rc.ClosePath()

	mask := rc.Mask()
	assert.EqualValues(t, 255, mask.AlphaAt(20, 35).A)
	assert.EqualValues(t, 0, mask.AlphaAt(20, 2).A)

	rc.Reset()
	assert.EqualValues(t, 0, rc.Mask().AlphaAt(20, 35).A)
}

func TestCheckOrdered(t *testing.T) {
	assert.Nil(t, CheckOrdered(nil))
	assert.Nil(t, CheckOrdered([]Point{{0, 0}, {0, 1}, {3, 2}}))

	err := CheckOrdered([]Point{{0, 0}, {5, 1}, {3, 2}})
	assert.True(t, errors.Is(err, ErrUnordered))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("monotone")
	assert.Nil(t, err)
	assert.EqualValues(t, ModeMonotone, m)

	m, err = ParseMode(" Linear ")
	assert.Nil(t, err)
	assert.EqualValues(t, ModeLinear, m)

	_, err = ParseMode("bezier")
	assert.True(t, errors.Is(err, ErrUnknownMode))

	assert.EqualValues(t, "monotone", ModeMonotone.String())
}

func TestWeekdayScenario(t *testing.T) {
	values := []float64{120, 150, 140, 180, 160}
	width, height := 400.0, 100.0

	tr := ticks.NiceTicks(120, 180, 5)
	assert.True(t, tr.Ticks[0] <= 120)
	assert.True(t, tr.Ticks[len(tr.Ticks)-1] >= 180)

	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{
			X: float64(i) / float64(len(values)-1) * width,
			Y: scale.Linear(v, tr.Min, tr.Max, height, 0),
		}
	}

	p := MonotonePath(pts)
	assert.True(t, strings.HasPrefix(p, "M0,"), p)

	last := pts[len(pts)-1]
	assert.True(t, strings.HasSuffix(p, FormatCoord(last.X)+","+FormatCoord(last.Y)), p)
	assert.True(t, strings.HasSuffix(p, ",400,33.33"), p)

	f := MonotoneInterpolator(pts)
	for _, pt := range pts {
		assert.InDelta(t, pt.Y, f(pt.X), 1e-5)
	}
}
