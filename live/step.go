package live

import (
	"math"

	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/smooth"
)

const (
	scrubSpeed    = 0.12
	scrubSnapLow  = 0.01
	scrubSnapHigh = 0.99

	// The crosshair fades out as it nears the live dot: invisible within
	// hoverDeadZone px, fully visible from min(hoverFadeMax, hoverFadeRatio*width).
	hoverDeadZone  = 5
	hoverFadeMax   = 80
	hoverFadeRatio = 0.3
	hoverMinAlpha  = 0.01
)

// Step advances st by one frame of dtMillis and returns the next state with
// what to draw. st is not modified. dtMillis is used as given; Sampler clamps
// it before calling.
func Step(st State, in Input, dtMillis float64, cfg Config) (State, Frame) {
	next := st

	// A non-finite live value holds the display where it is.
	target := in.Value
	if !finite(target) {
		target = st.DisplayValue
	}

	if !finite(st.DisplayValue) {
		next.DisplayValue = target
	} else {
		next.DisplayValue = smooth.Filerp(st.DisplayValue, target, cfg.LerpSpeed, dtMillis)
	}

	if math.Abs(next.DisplayValue-target) < math.Abs(st.DisplayMax-st.DisplayMin)*cfg.SnapRatio {
		next.DisplayValue = target
	}

	if !finite(next.DisplayValue) {
		next.DisplayValue = 0
	}

	var frame Frame

	frame.Right = in.Now + cfg.WindowSecs*cfg.LookaheadRatio
	frame.Left = frame.Right - cfg.WindowSecs
	frame.Visible = visiblePoints(in.Points, frame.Left-cfg.LeftPadSecs, frame.Right)

	targetMin, targetMax := valueRange(frame.Visible, next.DisplayValue, cfg.ValuePadRatio)

	if !finite(st.DisplayMin) || !finite(st.DisplayMax) ||
		(st.DisplayMin == 0 && st.DisplayMax == 1 && len(frame.Visible) > 0) {
		next.DisplayMin, next.DisplayMax = targetMin, targetMax
	} else {
		next.DisplayMin = easeBound(st.DisplayMin, targetMin, targetMin < st.DisplayMin, cfg.LerpSpeed, dtMillis)
		next.DisplayMax = easeBound(st.DisplayMax, targetMax, targetMax > st.DisplayMax, cfg.LerpSpeed, dtMillis)
	}

	frame.Plot = plotRect(in, &cfg)
	plot := frame.Plot

	toX := func(t float64) float64 {
		return scale.Linear(t, frame.Left, frame.Right, plot.X, plot.X+plot.W)
	}
	toY := func(v float64) float64 {
		return scale.Linear(v, next.DisplayMin, next.DisplayMax, plot.Y+plot.H, plot.Y)
	}
	clampY := func(y float64) float64 {
		return scale.Clamp(y, plot.Y, plot.Y+plot.H)
	}

	if in.Grid {
		valRange := next.DisplayMax - next.DisplayMin

		pxPerUnit := plot.H
		if valRange != 0 {
			pxPerUnit = plot.H / valRange
		}

		next.GridInterval = PickInterval(valRange, pxPerUnit, st.GridInterval, cfg.Grid())
		targets := gridTargets(next.DisplayMin, next.DisplayMax, next.GridInterval, toY, plot, &cfg)
		next.GridLabels = fadeGridLabels(st.GridLabels, targets, dtMillis, &cfg)
		frame.GridLines = visibleGridLines(next.GridLabels, toY, &cfg)

		for _, t := range TimeTicks(frame.Left, frame.Right, cfg.WindowSecs, cfg.TimeLabelCount) {
			x := toX(t)
			if x < plot.X+cfg.TimeLabelInset || x > plot.X+plot.W-cfg.TimeLabelInset {
				continue
			}

			frame.TimeTicks = append(frame.TimeTicks, TimeTick{Time: t, X: x})
		}
	}

	frame.Points = screenPoints(frame.Visible, in.Now, next.DisplayValue, toX, toY, clampY)

	if n := len(frame.Points); n > 0 {
		frame.Dot = frame.Points[n-1]
		frame.HasDot = true
	}

	scrubTarget := 0.0
	if in.Hovering && in.Scrub {
		scrubTarget = 1
	}

	next.ScrubAmount = stepScrub(st.ScrubAmount, scrubTarget)

	if next.ScrubAmount > 0 && in.Hovering && frame.HasDot {
		hoverPoints := frame.Visible
		if len(hoverPoints) == 0 {
			hoverPoints = visiblePoints(in.Points, math.Inf(-1), math.Inf(1))
		}

		frame.Hover = resolveHover(in.HoverX, frame.Dot.X, toX(in.Now), next.ScrubAmount, &frame, hoverPoints, toY, clampY)
	}

	return next, frame
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// visiblePoints keeps the samples in [from, to]. Samples with a non-finite
// value are absent.
func visiblePoints(points []Point, from, to float64) []Point {
	visible := make([]Point, 0, len(points))

	for _, p := range points {
		if !finite(p.Value) || math.IsNaN(p.Time) {
			continue
		}

		if p.Time >= from && p.Time <= to {
			visible = append(visible, p)
		}
	}

	return visible
}

// valueRange is the padded y target: the visible values plus the live value,
// [0, 1] without data, widened by 1 either way when flat.
func valueRange(visible []Point, live, padRatio float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)

	for _, p := range visible {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}

	lo = math.Min(lo, live)
	hi = math.Max(hi, live)

	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	}

	if lo == hi {
		lo--
		hi++
	}

	pad := (hi - lo) * padRatio
	lo -= pad
	hi += pad

	return
}

// easeBound jumps to target when it widens the range and eases towards it
// when it narrows, so new data is never clipped and shrinking is smooth.
func easeBound(current, target float64, widens bool, speed, dtMillis float64) float64 {
	if widens {
		return target
	}

	return smooth.Filerp(current, target, speed, dtMillis)
}

func plotRect(in Input, cfg *Config) Rect {
	left := cfg.Padding.Left
	if in.Grid {
		left = cfg.Padding.GridLeft
	}

	return Rect{
		X: left,
		Y: cfg.Padding.Top,
		W: math.Max(0, in.Width-left-cfg.Padding.Right),
		H: math.Max(0, in.Height-cfg.Padding.Top-cfg.Padding.Bottom),
	}
}

// screenPoints maps the visible samples to pixels. The last sample is drawn
// at the eased live value and a trailing point at now keeps the line reaching
// the live dot.
func screenPoints(visible []Point, now, live float64, toX, toY, clampY func(float64) float64) []curve.Point {
	if len(visible) == 0 {
		return nil
	}

	pts := make([]curve.Point, 0, len(visible)+1)

	for i, p := range visible {
		v := p.Value
		if i == len(visible)-1 {
			v = live
		}

		pts = append(pts, curve.Point{X: toX(p.Time), Y: clampY(toY(v))})
	}

	return append(pts, curve.Point{X: toX(now), Y: clampY(toY(live))})
}

func stepScrub(amount, target float64) float64 {
	amount += (target - amount) * scrubSpeed

	if amount < scrubSnapLow {
		return 0
	}

	if amount > scrubSnapHigh {
		return 1
	}

	return amount
}

func resolveHover(hoverX, dotX, nowX, scrub float64, frame *Frame, points []Point,
	toY, clampY func(float64) float64) *Hover {
	plot := frame.Plot
	dist := dotX - hoverX
	fadeStart := math.Min(hoverFadeMax, plot.W*hoverFadeRatio)

	var opacity float64

	switch {
	case dist < hoverDeadZone:
		opacity = 0
	case dist >= fadeStart:
		opacity = scrub
	default:
		opacity = (dist - hoverDeadZone) / (fadeStart - hoverDeadZone) * scrub
	}

	if opacity <= hoverMinAlpha {
		return nil
	}

	x := math.Max(plot.X, math.Min(nowX, hoverX))
	t := scale.Linear(x, plot.X, plot.X+plot.W, frame.Left, frame.Right)
	v := InterpolateAtTime(points, t)

	return &Hover{
		Time:    t,
		Value:   v,
		X:       x,
		Y:       clampY(toY(v)),
		Opacity: opacity,
	}
}
