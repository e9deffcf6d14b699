package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestData(t *testing.T) {
	rows := []map[string]any{
		{"a": 10, "b": 20},
		{"a": 5, "b": 15},
	}

	bands := Data(rows, []string{"a", "b"})
	assert.EqualValues(t, 2, len(bands))

	assert.EqualValues(t, "a", bands[0].Key)
	assert.EqualValues(t, []float64{0, 0}, bands[0].Baseline)
	assert.EqualValues(t, []float64{10, 5}, bands[0].Topline)

	assert.EqualValues(t, "b", bands[1].Key)
	assert.EqualValues(t, []float64{10, 5}, bands[1].Baseline)
	assert.EqualValues(t, []float64{30, 20}, bands[1].Topline)
}

func TestDataBandsIndependent(t *testing.T) {
	rows := []map[string]any{
		{"a": 10, "b": 20},
		{"a": 5, "b": 15},
	}

	bands := Data(rows, []string{"a", "b"})
	bands[0].Topline[0] = 99

	assert.EqualValues(t, []float64{10, 5}, bands[1].Baseline)
	assert.EqualValues(t, []float64{30, 20}, bands[1].Topline)
}

func TestDataEmptyRows(t *testing.T) {
	bands := Data(nil, []string{"a", "b", "c"})
	assert.EqualValues(t, 3, len(bands))

	for _, band := range bands {
		assert.EqualValues(t, 0, len(band.Baseline))
		assert.EqualValues(t, 0, len(band.Topline))
	}

	assert.EqualValues(t, 0, len(Data([]map[string]any{{"a": 1}}, nil)))
}

func TestDataCoercion(t *testing.T) {
	rows := []map[string]any{
		{"a": "12", "b": nil},
		{"a": "oops", "b": true},
		{"a": math.NaN(), "b": int64(4)},
		{"b": float32(2.5)},
		{"a": math.Inf(1), "b": uint8(1)},
	}

	bands := Data(rows, []string{"a", "b"})
	assert.EqualValues(t, []float64{12, 0, 0, 0, 0}, bands[0].Topline)
	assert.EqualValues(t, []float64{12, 0, 4, 2.5, 1}, bands[1].Topline)
}

func TestDataContiguous(t *testing.T) {
	rows := []map[string]any{
		{"x": 1, "y": -2, "z": 3},
		{"x": 0.5, "y": 7, "z": 0},
		{"x": 2, "z": 9},
	}
	keys := []string{"x", "y", "z"}

	bands := Data(rows, keys)

	for k := 1; k < len(bands); k++ {
		assert.EqualValues(t, bands[k-1].Topline, bands[k].Baseline)
	}

	for _, band := range bands {
		assert.EqualValues(t, len(rows), len(band.Baseline))
		assert.EqualValues(t, len(rows), len(band.Topline))
	}

	for i, row := range rows {
		for k, key := range keys {
			assert.InDelta(t, ValueOrZero(row, key), bands[k].Topline[i]-bands[k].Baseline[i], 1e-12)
		}
	}
}

func TestDataClampNegative(t *testing.T) {
	rows := []map[string]any{{"a": 3, "b": -5, "c": 1}}

	bands := Data(rows, []string{"a", "b", "c"}, ClampNegativeOption())
	assert.EqualValues(t, []float64{3}, bands[1].Topline)
	assert.EqualValues(t, []float64{4}, bands[2].Topline)
}

func TestTotals(t *testing.T) {
	rows := []map[string]any{
		{"a": 10, "b": 20},
		{"a": 5, "b": "15"},
		{},
	}

	assert.EqualValues(t, []float64{30, 20, 0}, Totals(rows, []string{"a", "b"}))

	max, ok := MaxTotal(rows, []string{"a", "b"})
	assert.True(t, ok)
	assert.EqualValues(t, 30, max)

	_, ok = MaxTotal(nil, []string{"a"})
	assert.False(t, ok)

	assert.EqualValues(t, 30, MaxTopline(Data(rows, []string{"a", "b"})))
	assert.EqualValues(t, 0, MaxTopline(nil))
}

func TestValue(t *testing.T) {
	v, ok := Value(map[string]any{"k": "3.5"}, "k")
	assert.True(t, ok)
	assert.EqualValues(t, 3.5, v)

	_, ok = Value(map[string]any{"k": false}, "k")
	assert.False(t, ok)

	_, ok = Value(map[string]any{}, "k")
	assert.False(t, ok)

	_, ok = Value(nil, "k")
	assert.False(t, ok)
}
