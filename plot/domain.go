package plot

import (
	"math"

	"github.com/sgostarter/libchart/stack"
	"github.com/sgostarter/libchart/ticks"
)

// ValueDomain is the min and max of the numeric values under keys. Absent,
// non-numeric and non-finite values are skipped; ok is false when none remain.
func ValueDomain(rows []map[string]any, keys []string) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)

	for _, key := range keys {
		for _, row := range rows {
			v, valid := stack.Value(row, key)
			if !valid {
				continue
			}

			min = math.Min(min, v)
			max = math.Max(max, v)
			ok = true
		}
	}

	if !ok {
		min, max = 0, 0
	}

	return
}

// YAxis derives the value axis of a line or bar chart from rows.
//
// By default the axis covers the data range and falls back to [0, 1] with
// ticks [0, 1] without data. With ZeroBaseOption it covers 0 up to the largest
// value (row sum with StackedOption) or reference, 1 without data.
func YAxis(rows []map[string]any, keys []string, opts ...Option) ticks.Result {
	opt := optionNew(opts...)

	if opt.fixed {
		return ticks.NiceTicks(opt.fixedMin, opt.fixedMax, opt.targetCount)
	}

	if !opt.zeroBase {
		min, max, ok := ValueDomain(rows, keys)
		if !ok {
			return ticks.Result{Min: 0, Max: 1, Ticks: []float64{0, 1}}
		}

		return ticks.NiceTicks(min, max, opt.targetCount)
	}

	max := math.Inf(-1)

	if opt.stacked {
		if total, ok := stack.MaxTotal(rows, keys); ok {
			max = total
		}
	} else if _, hi, ok := ValueDomain(rows, keys); ok {
		max = hi
	}

	return zeroBased(max, opt)
}

// StackedYAxis covers 0 up to the highest band topline or reference value.
func StackedYAxis(bands []stack.Band, opts ...Option) ticks.Result {
	opt := optionNew(opts...)

	max := math.Inf(-1)

	for _, band := range bands {
		for _, v := range band.Topline {
			max = math.Max(max, v)
		}
	}

	return zeroBased(max, opt)
}

func zeroBased(max float64, opt *Options) ticks.Result {
	for _, ref := range opt.references {
		max = math.Max(max, ref)
	}

	if math.IsInf(max, -1) {
		max = 1
	}

	return ticks.NiceTicks(0, max, opt.targetCount)
}
