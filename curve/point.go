package curve

import (
	"fmt"
	"strings"

	bez "honnef.co/go/curve"
)

// Point is a screen-space coordinate in pixels.
type Point = bez.Point

// Mode selects how consecutive points are joined.
type Mode int

const (
	ModeLinear Mode = iota
	ModeMonotone
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeMonotone:
		return "monotone"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return ModeLinear, nil
	case "monotone":
		return ModeMonotone, nil
	default:
		return ModeLinear, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// CheckOrdered reports ErrUnordered when x decreases anywhere in points.
// Path building and interpolation assume non-decreasing x.
func CheckOrdered(points []Point) error {
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return fmt.Errorf("%w: x[%d]=%g < x[%d]=%g", ErrUnordered, i, points[i].X, i-1, points[i-1].X)
		}
	}

	return nil
}

func assertOrdered(points []Point) {
	if !debugOrdering {
		return
	}

	if err := CheckOrdered(points); err != nil {
		panic(err)
	}
}
