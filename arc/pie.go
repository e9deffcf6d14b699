package arc

import "math"

const (
	// SegmentGap is the angle left empty between neighbouring slices.
	SegmentGap = 0.02

	// StartAngle puts the first slice at twelve o'clock.
	StartAngle = -math.Pi / 2
)

// Segment is one pie or donut slice.
type Segment struct {
	Index      int     `json:"index"`
	Value      float64 `json:"value"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Percentage float64 `json:"percentage"`
}

// Segments splits the circle among values clockwise from StartAngle. With
// more than one value every slice is inset by gap/2 on both sides. Negative
// and non-finite values get an empty slice. A zero total yields no segments.
func Segments(values []float64, gap float64) []Segment {
	var total float64

	for _, v := range values {
		total += sliceValue(v)
	}

	if total == 0 {
		return nil
	}

	if len(values) <= 1 {
		gap = 0
	}

	available := 2*math.Pi - gap*float64(len(values))
	angle := StartAngle
	segments := make([]Segment, len(values))

	for i, v := range values {
		share := sliceValue(v) / total
		start := angle + gap/2
		end := start + share*available

		segments[i] = Segment{
			Index:      i,
			Value:      v,
			Start:      start,
			End:        end,
			Percentage: share * 100,
		}

		angle = end + gap/2
	}

	return segments
}

func sliceValue(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// Radii returns the outer and inner radius of a pie drawn in a size x size
// box. innerRatio 0 draws a full pie.
func Radii(size, innerRatio float64) (outer, inner float64) {
	outer = math.Max(0, size/2-4)
	inner = outer * math.Max(0, math.Min(1, innerRatio))

	return
}
