package watchdog

func NewNopWatchDog() WatchDog {
	return &nopWatchDogImpl{}
}

type nopWatchDogImpl struct{}

func (impl *nopWatchDogImpl) Touch() {}

func (impl *nopWatchDogImpl) Start() {}

func (impl *nopWatchDogImpl) Stop() {}

func (impl *nopWatchDogImpl) Started() bool {
	return false
}

func (impl *nopWatchDogImpl) Stalled() bool {
	return false
}
