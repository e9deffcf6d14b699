package smooth

import "math"

// SnapRatio is the fraction of |target| within which a Scalar lands exactly.
const SnapRatio = 0.001

// Scalar is an eased display value chasing a target, like an animated counter.
type Scalar struct {
	Display float64 `yaml:"display" json:"display"`
	Target  float64 `yaml:"target" json:"target"`
}

func NewScalar(v float64) Scalar {
	return Scalar{
		Display: v,
		Target:  v,
	}
}

// Retarget returns s heading to target from wherever it is now.
func (s Scalar) Retarget(target float64) Scalar {
	s.Target = target

	return s
}

// Settled reports whether the display has reached the target.
func (s Scalar) Settled() bool {
	return s.Display == s.Target
}

// Step advances s by one frame and snaps once the gap falls under
// SnapRatio of |Target| (of 1 when Target is 0).
func Step(s Scalar, speed, dtMillis float64) Scalar {
	s.Display = Filerp(s.Display, s.Target, speed, dtMillis)

	ref := math.Abs(s.Target)
	if ref == 0 {
		ref = 1
	}

	if math.Abs(s.Display-s.Target) < ref*SnapRatio {
		s.Display = s.Target
	}

	return s
}
