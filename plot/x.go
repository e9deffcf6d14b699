package plot

import (
	"math"

	"github.com/sgostarter/libchart/scale"
)

// IndexX is the x of record i of n spread across width. A single record is
// centered.
func IndexX(i, n int, width float64) float64 {
	if n == 1 {
		return width / 2
	}

	return float64(i) / float64(n-1) * width
}

// XLabelIndices picks which of n records get an x axis label so labels stay
// at least spacing pixels apart: all of them when they fit, else the first,
// the last and evenly spread ones between.
func XLabelIndices(n int, width, spacing float64) []int {
	if n <= 0 || width <= 0 {
		return nil
	}

	if spacing <= 0 {
		spacing = LabelSpacing
	}

	maxLabels := int(math.Max(2, math.Floor(width/spacing)))

	if n <= maxLabels {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}

		return indices
	}

	indices := make([]int, 0, maxLabels)
	indices = append(indices, 0)

	step := float64(n-1) / float64(maxLabels-1)
	for i := 1; i < maxLabels-1; i++ {
		indices = append(indices, int(math.Round(float64(i)*step)))
	}

	return append(indices, n-1)
}

// ScrubIndex is the record nearest to rawX, clamped to [0, n-1].
// It returns -1 when there are no records.
func ScrubIndex(rawX, width float64, n int) int {
	if n <= 0 {
		return -1
	}

	step := width
	if n > 1 {
		step = width / float64(n-1)
	}

	if step <= 0 {
		return 0
	}

	return scale.Clamp(int(math.Round(rawX/step)), 0, n-1)
}

// SlotIndex is the bar slot under raw when length is split into n equal
// slots, clamped to [0, n-1]. It returns -1 when there are no records.
func SlotIndex(raw, length float64, n int) int {
	if n <= 0 {
		return -1
	}

	slot := length / float64(n)
	if slot <= 0 {
		return 0
	}

	return scale.Clamp(int(math.Floor(raw/slot)), 0, n-1)
}

// ClampX bounds a pointer x to the plot width.
func ClampX(rawX, width float64) float64 {
	return scale.Clamp(rawX, 0, math.Max(0, width))
}
