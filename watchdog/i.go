package watchdog

import "time"

// WatchDog notices when a live feed stops delivering samples.
type WatchDog interface {
	Touch()

	Start()
	Stop()
	Started() bool
	Stalled() bool
}

type Notify interface {
	NotifyStalled(silence time.Duration)
	NotifyRecovered()
}
