package ticks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkResult(t *testing.T, r Result, dataMin, dataMax float64) {
	t.Helper()

	assert.True(t, len(r.Ticks) >= 2, "at least two ticks: %v", r.Ticks)
	assert.True(t, len(r.Ticks) <= MaxTicks)
	assert.True(t, r.Min <= r.Max)
	assert.True(t, r.Ticks[0] <= dataMin, "first tick %v > %v", r.Ticks[0], dataMin)
	assert.True(t, r.Ticks[len(r.Ticks)-1] >= dataMax, "last tick %v < %v", r.Ticks[len(r.Ticks)-1], dataMax)

	for i := 1; i < len(r.Ticks); i++ {
		assert.True(t, r.Ticks[i] > r.Ticks[i-1], "ticks not ascending: %v", r.Ticks)
	}
}

func TestNiceNum(t *testing.T) {
	assert.EqualValues(t, 100, NiceNum(60, false))
	assert.EqualValues(t, 20, NiceNum(25, true))
	assert.EqualValues(t, 5, NiceNum(4.2, false))
	assert.EqualValues(t, 5, NiceNum(4.2, true))
	assert.EqualValues(t, 10, NiceNum(8, true))
	assert.EqualValues(t, 1, NiceNum(0, true))
	assert.EqualValues(t, 1, NiceNum(-3, false))
}

func TestNiceTicksTypical(t *testing.T) {
	r := NiceTicks(0, 100, 5)
	checkResult(t, r, 0, 100)
	assert.EqualValues(t, []float64{0, 20, 40, 60, 80, 100}, r.Ticks)
}

func TestNiceTicksWeekdayScenario(t *testing.T) {
	r := NiceTicks(120, 180, 5)
	checkResult(t, r, 120, 180)
	assert.EqualValues(t, []float64{120, 140, 160, 180}, r.Ticks)
	assert.EqualValues(t, 120, r.Min)
	assert.EqualValues(t, 180, r.Max)
}

func TestNiceTicksEqual(t *testing.T) {
	r := NiceTicks(50, 50, 5)
	assert.True(t, r.Min < 50)
	assert.True(t, r.Max > 50)
	checkResult(t, r, 50, 50)

	r = NiceTicks(0, 0, 5)
	assert.True(t, r.Min < 0)
	assert.True(t, r.Max > 0)
	checkResult(t, r, 0, 0)

	r = NiceTicks(-7, -7, 5)
	checkResult(t, r, -7, -7)
}

func TestNiceTicksSwapped(t *testing.T) {
	pairs := [][2]float64{{0, 100}, {3, 97}, {-15, 42}, {0.1, 0.9}, {1000, 5000}, {-100, -20}}

	for _, p := range pairs {
		assert.EqualValues(t, NiceTicks(p[0], p[1], 5), NiceTicks(p[1], p[0], 5))
	}
}

func TestNiceTicksRanges(t *testing.T) {
	cases := [][2]float64{
		{3, 97},
		{-15, 42},
		{0.1, 0.9},
		{1000, 5000},
		{0.001, 0.005},
		{0, 1_000_000},
		{-100, -20},
		{-0.3, 0.7},
		{1e-9, 3e-9},
		{99999, 100001},
	}

	for _, c := range cases {
		checkResult(t, NiceTicks(c[0], c[1], DefaultTargetCount), c[0], c[1])
	}
}

func TestNiceTicksGenerated(t *testing.T) {
	v := 0.37

	for i := 0; i < 500; i++ {
		// Deterministic pseudo-random spread across magnitudes and signs.
		v = math.Mod(v*9301+49297, 233280) / 233280
		lo := (v - 0.5) * math.Pow(10, float64(i%9-3))
		hi := lo + v*math.Pow(10, float64(i%7-2))

		checkResult(t, NiceTicks(lo, hi, 2+i%8), lo, hi)
	}
}

func TestNiceTicksNoBinaryNoise(t *testing.T) {
	r := NiceTicks(0.1, 0.9, 5)
	checkResult(t, r, 0.1, 0.9)

	for _, v := range r.Ticks {
		assert.EqualValues(t, v, math.Round(v*10)/10)
	}
}

func TestNiceTicksMaxTicks(t *testing.T) {
	r := NiceTicks(0, 1000, 200)
	assert.True(t, len(r.Ticks) <= MaxTicks)
	checkResult(t, r, 0, 1000)
}

func TestNiceTicksDefaultCount(t *testing.T) {
	assert.EqualValues(t, NiceTicks(0, 100, DefaultTargetCount), NiceTicks(0, 100, 0))
	assert.EqualValues(t, NiceTicks(0, 100, DefaultTargetCount), NiceTicks(0, 100, 1))
}

func TestNiceTicksNonFinite(t *testing.T) {
	assert.EqualValues(t, []float64{0, 1}, NiceTicks(math.NaN(), 3, 5).Ticks)
	assert.EqualValues(t, []float64{0, 1}, NiceTicks(0, math.Inf(1), 5).Ticks)
}

func TestNiceTicksHugeRange(t *testing.T) {
	cases := [][2]float64{
		{-1e308, 1e308},
		{-math.MaxFloat64, math.MaxFloat64},
		{1.7e308, 1.79e308},
		{1.7e308, 1.7e308},
		{-1.7e308, -1.7e308},
		{0, math.MaxFloat64},
	}

	for _, c := range cases {
		r := NiceTicks(c[0], c[1], 5)
		checkResult(t, r, c[0], c[1])

		for _, v := range r.Ticks {
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "%v: %v", c, r.Ticks)
		}
	}

	r := NiceTicks(-1e308, 1e308, 5)
	assert.True(t, len(r.Ticks) > 2, "%v", r.Ticks)
}
