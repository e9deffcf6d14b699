package smooth

import "math"

const (
	// FrameMillis is the reference frame the speed constants are tuned at.
	FrameMillis = 16.667

	// MaxDeltaMillis caps a frame delta after a stall (tab switch, resume).
	MaxDeltaMillis = 50
)

// Filerp moves current towards target by speed per reference frame, scaled to
// dtMillis so the approach looks the same at any frame rate:
//
//	current + (target-current) * (1 - (1-speed)^(dt/FrameMillis))
//
// speed <= 0 holds current, speed >= 1 jumps to target. dtMillis is used as
// given; callers clamp it with ClampDelta.
func Filerp(current, target, speed, dtMillis float64) float64 {
	if speed >= 1 {
		return target
	}

	if speed <= 0 || dtMillis <= 0 {
		return current
	}

	factor := 1 - math.Pow(1-speed, dtMillis/FrameMillis)

	return current + (target-current)*factor
}

// ClampDelta bounds a raw frame delta to (0, MaxDeltaMillis]. A non-positive or
// non-finite delta, as on the first frame, reads as one reference frame.
func ClampDelta(dtMillis float64) float64 {
	if dtMillis <= 0 || math.IsNaN(dtMillis) {
		return FrameMillis
	}

	if dtMillis > MaxDeltaMillis {
		return MaxDeltaMillis
	}

	return dtMillis
}
