package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"go.uber.org/atomic"
)

type Config struct {
	CheckInterval time.Duration `yaml:"checkInterval" json:"checkInterval"`
	MaxSilence    time.Duration `yaml:"maxSilence" json:"maxSilence"`
	// CheckFailCount is how many failed checks in a row mark the feed stalled.
	CheckFailCount int `yaml:"checkFailCount" json:"checkFailCount"`
}

func NewWatchDog(cfg Config, notify Notify, logger l.Wrapper) WatchDog {
	if notify == nil {
		return nil
	}

	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Second
	}

	if cfg.MaxSilence <= 0 {
		cfg.MaxSilence = 5 * time.Second
	}

	if cfg.CheckFailCount <= 0 {
		cfg.CheckFailCount = 1
	}

	return &watchDogImpl{
		logger:      logger.WithFields(l.StringField(l.ClsKey, "watchDogImpl")),
		cfg:         cfg,
		notify:      notify,
		now:         time.Now,
		lastTouchAt: atomic.NewInt64(time.Now().UnixNano()),
		started:     atomic.NewBool(false),
		stalled:     atomic.NewBool(false),
	}
}

type watchDogImpl struct {
	logger l.Wrapper
	cfg    Config
	notify Notify
	now    func() time.Time

	// lock serializes Start and Stop around routineMan.
	lock       sync.Mutex
	routineMan routineman.RoutineMan

	lastTouchAt *atomic.Int64
	started     *atomic.Bool
	stalled     *atomic.Bool
}

func (impl *watchDogImpl) Touch() {
	impl.lastTouchAt.Store(impl.now().UnixNano())

	if impl.stalled.CompareAndSwap(true, false) {
		impl.logger.Debug("feed recovered")
		impl.notify.NotifyRecovered()
	}
}

func (impl *watchDogImpl) Start() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.started.Load() {
		return
	}

	impl.lastTouchAt.Store(impl.now().UnixNano())
	impl.stalled.Store(false)

	impl.routineMan = routineman.NewRoutineMan(context.Background(), impl.logger)
	impl.routineMan.StartRoutine(impl.checkRoutine, "checkRoutine")

	impl.started.Store(true)
}

func (impl *watchDogImpl) Stop() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if !impl.started.Load() {
		return
	}

	impl.started.Store(false)

	impl.routineMan.TriggerStop()
	impl.routineMan.Wait()
	impl.routineMan = nil
}

func (impl *watchDogImpl) Started() bool {
	return impl.started.Load()
}

func (impl *watchDogImpl) Stalled() bool {
	return impl.stalled.Load()
}

func (impl *watchDogImpl) silence() time.Duration {
	return impl.now().Sub(time.Unix(0, impl.lastTouchAt.Load()))
}

func (impl *watchDogImpl) checkRoutine(ctx context.Context, _ func() bool) {
	ticker := time.NewTicker(impl.cfg.CheckInterval)
	defer ticker.Stop()

	failCount := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		silence := impl.silence()
		if silence < impl.cfg.MaxSilence {
			failCount = 0

			continue
		}

		failCount++

		if failCount < impl.cfg.CheckFailCount {
			continue
		}

		failCount = 0

		if impl.stalled.CompareAndSwap(false, true) {
			impl.logger.WithFields(l.IntField("silenceMs", int(silence.Milliseconds()))).Warn("feed stalled")
			impl.notify.NotifyStalled(silence)
		}
	}
}
