package ticks

import (
	"math"
	"strconv"
)

const (
	DefaultTargetCount = 5

	// MaxTicks bounds the tick list for pathological tiny steps.
	MaxTicks = 100
)

// Result is a "nice" rounded interval and the ticks covering it.
type Result struct {
	Min   float64   `yaml:"min" json:"min"`
	Max   float64   `yaml:"max" json:"max"`
	Ticks []float64 `yaml:"ticks" json:"ticks"`
}

func defaultResult() Result {
	return Result{
		Min:   0,
		Max:   1,
		Ticks: []float64{0, 1},
	}
}

// NiceNum rounds span to 1, 2, 5 or 10 times a power of ten. With round set it
// picks the nearest ladder value, otherwise the smallest ladder value that is
// not below span.
func NiceNum(span float64, round bool) float64 {
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}

	exp := math.Floor(math.Log10(span))
	frac := span / math.Pow(10, exp)

	var nice float64

	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}

	return nice * math.Pow(10, exp)
}

// stepUp returns the next value on the 1-2-5 ladder above step.
func stepUp(step float64) float64 {
	exp := math.Floor(math.Log10(step))
	base := math.Pow(10, exp)

	switch frac := step / base; {
	case frac < 1.5:
		return 2 * base
	case frac < 3:
		return 5 * base
	default:
		return 10 * base
	}
}

// NiceTicks computes a rounded interval enclosing [dataMin, dataMax] and
// about targetCount evenly spaced ticks across it.
//
// The inputs may come in either order. Equal inputs are padded by 10% of
// their magnitude (or 1 around zero) so there are always at least two ticks.
func NiceTicks(dataMin, dataMax float64, targetCount int) Result {
	if !finite(dataMin) || !finite(dataMax) {
		return defaultResult()
	}

	if targetCount < 2 {
		targetCount = DefaultTargetCount
	}

	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}

	if r, ok := niceTicks(dataMin, dataMax, targetCount); ok {
		return r
	}

	return hugeTicks(dataMin, dataMax, targetCount)
}

// niceTicks runs the tick search on ordered finite inputs. ok is false when
// an intermediate value overflows.
func niceTicks(dataMin, dataMax float64, targetCount int) (r Result, ok bool) {
	if dataMin == dataMax {
		padding := math.Abs(dataMin) * 0.1
		if dataMin == 0 {
			padding = 1
		}

		if dataMin-padding == dataMin || dataMax+padding == dataMax {
			return defaultResult(), true
		}

		dataMin -= padding
		dataMax += padding
	}

	if !finite(dataMin) || !finite(dataMax) || !finite(dataMax-dataMin) {
		return
	}

	span := NiceNum(dataMax-dataMin, false)
	step := NiceNum(span/float64(targetCount-1), true)

	niceMin := math.Floor(dataMin/step) * step
	niceMax := math.Ceil(dataMax/step) * step

	for (niceMax-niceMin)/step+1 > MaxTicks {
		step = stepUp(step)
		niceMin = math.Floor(dataMin/step) * step
		niceMax = math.Ceil(dataMax/step) * step
	}

	if !finite(span) || !finite(niceMin) || !finite(niceMax) || !finite(niceMax+step) {
		return
	}

	precision := int(math.Max(-math.Floor(math.Log10(step)), 0))

	ts := make([]float64, 0, int((niceMax-niceMin)/step)+2)

	for i := 0; len(ts) < MaxTicks; i++ {
		v := niceMin + float64(i)*step
		if v > niceMax+step*0.001 {
			break
		}

		v = roundTo(v, precision)
		if len(ts) > 0 && v <= ts[len(ts)-1] {
			continue
		}

		ts = append(ts, v)
	}

	if len(ts) == 0 {
		return defaultResult(), true
	}

	// Float drift in floor/ceil can leave the data a hair outside the ticks.
	for ts[0] > dataMin && len(ts) < MaxTicks {
		ts = append([]float64{roundTo(ts[0]-step, precision)}, ts...)
	}

	for ts[len(ts)-1] < dataMax && len(ts) < MaxTicks {
		ts = append(ts, roundTo(ts[len(ts)-1]+step, precision))
	}

	if len(ts) < 2 {
		return defaultResult(), true
	}

	return Result{
		Min:   math.Min(niceMin, ts[0]),
		Max:   math.Max(niceMax, ts[len(ts)-1]),
		Ticks: ts,
	}, true
}

// hugeTicks serves inputs near the float64 limit: the search runs a decade
// down and is scaled back up. When even that overflows the inputs are the
// ticks, widened towards zero if they are equal.
func hugeTicks(dataMin, dataMax float64, targetCount int) Result {
	if r, ok := niceTicks(dataMin/10, dataMax/10, targetCount); ok {
		scaled := Result{
			Min:   r.Min * 10,
			Max:   r.Max * 10,
			Ticks: make([]float64, len(r.Ticks)),
		}

		for i, v := range r.Ticks {
			scaled.Ticks[i] = v * 10
		}

		if finite(scaled.Min) && finite(scaled.Max) {
			// Scaling back may leave the data an ulp outside.
			last := len(scaled.Ticks) - 1
			scaled.Ticks[0] = math.Min(scaled.Ticks[0], dataMin)
			scaled.Ticks[last] = math.Max(scaled.Ticks[last], dataMax)
			scaled.Min = math.Min(scaled.Min, scaled.Ticks[0])
			scaled.Max = math.Max(scaled.Max, scaled.Ticks[last])

			return scaled
		}
	}

	lo, hi := dataMin, dataMax
	if lo == hi {
		if hi > 0 {
			lo *= 0.9
		} else {
			hi *= 0.9
		}
	}

	return Result{
		Min:   lo,
		Max:   hi,
		Ticks: []float64{lo, hi},
	}
}

func roundTo(v float64, precision int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}

	if r == 0 {
		return 0
	}

	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
