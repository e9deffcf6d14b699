package stack

import (
	"math"

	"github.com/spf13/cast"
)

// Value reads row[key] as a number. Missing keys, nil, booleans, values cast
// cannot parse and non-finite numbers all report ok=false.
func Value(row map[string]any, key string) (v float64, ok bool) {
	raw, exists := row[key]
	if !exists || raw == nil {
		return
	}

	if _, isBool := raw.(bool); isBool {
		return
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}

	v, ok = f, true

	return
}

// ValueOrZero is Value with absent values read as 0.
func ValueOrZero(row map[string]any, key string) float64 {
	v, _ := Value(row, key)

	return v
}
