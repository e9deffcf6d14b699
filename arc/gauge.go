package arc

import "github.com/sgostarter/libchart/scale"

// GaugeFraction is how far value sits between min and max, clamped to [0, 1].
// A zero-width range is read as width 1.
func GaugeFraction(value, min, max float64) float64 {
	r := max - min
	if r == 0 {
		r = 1
	}

	return scale.Clamp((value-min)/r, 0, 1)
}

// Threshold is a gauge zone ending below UpTo. The last zone extends to the
// gauge max regardless of its UpTo.
type Threshold struct {
	UpTo  float64 `yaml:"upTo" json:"upTo"`
	Color string  `yaml:"color" json:"color"`
	Label string  `yaml:"label" json:"label"`
}

// ActiveThreshold returns the index of the zone value falls in: the first
// whose UpTo exceeds value, else the last. It returns -1 without zones.
func ActiveThreshold(value float64, thresholds []Threshold) int {
	for i, t := range thresholds {
		if i == len(thresholds)-1 || value < t.UpTo {
			return i
		}
	}

	return -1
}

// Span is a zone's extent along the gauge track as fractions of the range.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (s Span) Width() float64 {
	return s.End - s.Start
}

// ThresholdSpans lays the zones out along the track.
func ThresholdSpans(min, max float64, thresholds []Threshold) []Span {
	r := max - min
	if r == 0 {
		r = 1
	}

	spans := make([]Span, len(thresholds))

	for i, t := range thresholds {
		prev := min
		if i > 0 {
			prev = thresholds[i-1].UpTo
		}

		end := 1.0
		if i < len(thresholds)-1 {
			end = (t.UpTo - min) / r
		}

		spans[i] = Span{
			Start: (prev - min) / r,
			End:   end,
		}
	}

	return spans
}
