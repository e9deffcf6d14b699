package live

// Sampler drives a live chart frame by frame. It owns the animation state and
// must be updated from a single goroutine.
type Sampler interface {
	Update(in Input, dtMillis float64) Frame
	State() State
	Reset(value float64)
}

// Stream is a bounded, time-ordered sample buffer that producers append to
// while the frame loop reads snapshots.
type Stream interface {
	Append(points ...Point)
	Snapshot() []Point
	Since(t float64) []Point
	Latest() (Point, bool)
	Len() int
}
