package frameloop

// FrameFunc draws one frame. dtMillis is the clamped time since the previous
// frame.
type FrameFunc func(dtMillis float64)

// Loop calls a FrameFunc at a steady interval on its own goroutine, the way
// a browser drives animation frames.
type Loop interface {
	Start()
	// Pause skips frames until Resume. The first frame after Resume gets a
	// nominal delta instead of the whole pause.
	Pause()
	Resume()
	Frames() int64

	TriggerStop()
	Wait()
}
