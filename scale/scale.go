package scale

import "golang.org/x/exp/constraints"

// Linear maps value from [domainMin, domainMax] onto [rangeMin, rangeMax].
//
// A zero-width domain maps everything to the middle of the range. The range
// may be inverted (rangeMin > rangeMax), which is how top-down pixel y axes
// are expressed.
func Linear(value, domainMin, domainMax, rangeMin, rangeMax float64) float64 {
	if domainMax == domainMin {
		return (rangeMin + rangeMax) / 2
	}

	return rangeMin + ((value-domainMin)/(domainMax-domainMin))*(rangeMax-rangeMin)
}

// LinearScale is a Linear mapping bound to a fixed domain and range.
type LinearScale struct {
	DomainMin float64 `yaml:"domainMin" json:"domainMin"`
	DomainMax float64 `yaml:"domainMax" json:"domainMax"`
	RangeMin  float64 `yaml:"rangeMin" json:"rangeMin"`
	RangeMax  float64 `yaml:"rangeMax" json:"rangeMax"`
}

func NewLinearScale(domainMin, domainMax, rangeMin, rangeMax float64) LinearScale {
	return LinearScale{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}
}

// Map converts a domain value to the range.
func (s LinearScale) Map(value float64) float64 {
	return Linear(value, s.DomainMin, s.DomainMax, s.RangeMin, s.RangeMax)
}

// Invert converts a range value (usually a pixel) back to the domain.
func (s LinearScale) Invert(px float64) float64 {
	return Linear(px, s.RangeMin, s.RangeMax, s.DomainMin, s.DomainMax)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
