package live

import (
	"math"
	"sort"

	"github.com/sgostarter/libchart/smooth"
)

type GridConfig struct {
	// MinGap is the smallest pixel spacing between grid lines.
	MinGap float64
	// KeepLow and KeepHigh bound, as multiples of MinGap, the spacing at
	// which the previous interval is kept.
	KeepLow  float64
	KeepHigh float64
	MaxSteps int
}

func DefaultGridConfig() GridConfig {
	cfg := DefaultConfig()

	return cfg.Grid()
}

var intervalDivisors = [3]float64{2, 2.5, 2}

// PickInterval chooses the value step between horizontal grid lines.
//
// prev is kept while its spacing stays within [KeepLow, KeepHigh]·MinGap
// pixels so lines don't jump while the range eases. Otherwise the search
// starts at the power of ten covering span and divides by 2, 2.5, 2, ...
// (10, 5, 2, 1, 0.5, ...) while the next step still spans MinGap pixels.
func PickInterval(span, pxPerUnit, prev float64, cfg GridConfig) float64 {
	if prev > 0 {
		px := prev * pxPerUnit
		if px >= cfg.MinGap*cfg.KeepLow && px <= cfg.MinGap*cfg.KeepHigh {
			return prev
		}
	}

	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		span = 1
	}

	interval := math.Pow(10, math.Ceil(math.Log10(math.Abs(span))))

	for i := 0; i < cfg.MaxSteps; i++ {
		next := interval / intervalDivisors[i%len(intervalDivisors)]
		if next*pxPerUnit < cfg.MinGap {
			break
		}

		interval = next
	}

	return interval
}

// GridLine is a horizontal grid line with its fading label.
type GridLine struct {
	Value float64 `json:"value"`
	Y     float64 `json:"y"`
	Alpha float64 `json:"alpha"`
}

// gridKey identifies a grid value across frames despite float drift.
func gridKey(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// maxGridLines guards the line loop against a degenerate interval.
const maxGridLines = 1000

// gridTargets returns the target alpha of each grid value inside
// [lo, hi]. Lines near the top or bottom of the plot fade out over
// cfg.GridEdgeFade pixels.
func gridTargets(lo, hi, interval float64, toY func(float64) float64, plot Rect, cfg *Config) map[int64]float64 {
	targets := make(map[int64]float64)

	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return targets
	}

	top, bottom := plot.Y, plot.Y+plot.H
	first := math.Ceil(lo/interval) * interval

	for i := 0; i < maxGridLines; i++ {
		v := first + float64(i)*interval
		if v > hi {
			break
		}

		y := toY(v)
		fade := 1.0

		switch {
		case cfg.GridEdgeFade <= 0:
		case y < top+cfg.GridEdgeFade:
			fade = math.Max(0, (y-top)/cfg.GridEdgeFade)
		case y > bottom-cfg.GridEdgeFade:
			fade = math.Max(0, (bottom-y)/cfg.GridEdgeFade)
		}

		targets[gridKey(v)] = fade
	}

	return targets
}

// fadeGridLabels eases every known label towards its target, fading in
// faster than out, drops fully faded labels that are no longer targeted and
// starts new ones at GridMinAlpha. labels is not modified.
func fadeGridLabels(labels, targets map[int64]float64, dtMillis float64, cfg *Config) map[int64]float64 {
	next := make(map[int64]float64, len(targets))

	for key, alpha := range labels {
		target := targets[key]

		speed := cfg.GridFadeOutSpeed
		if target >= alpha {
			speed = cfg.GridFadeInSpeed
		}

		a := smooth.Filerp(alpha, target, speed, dtMillis)
		if a < cfg.GridMinAlpha && target == 0 {
			continue
		}

		next[key] = a
	}

	for key := range targets {
		if _, ok := next[key]; !ok {
			next[key] = cfg.GridMinAlpha
		}
	}

	return next
}

// visibleGridLines lists the labels bright enough to draw, ordered by value.
func visibleGridLines(labels map[int64]float64, toY func(float64) float64, cfg *Config) []GridLine {
	lines := make([]GridLine, 0, len(labels))

	for key, alpha := range labels {
		if alpha < cfg.GridMinAlpha {
			continue
		}

		v := float64(key) / 1000
		lines = append(lines, GridLine{
			Value: v,
			Y:     toY(v),
			Alpha: alpha,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Value < lines[j].Value
	})

	return lines
}
