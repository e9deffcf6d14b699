package frameloop

import (
	"context"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchart/smooth"
	"github.com/sgostarter/libeasygo/routineman"
	"go.uber.org/atomic"
)

type Config struct {
	Interval time.Duration `yaml:"interval" json:"interval"`
}

func NewLoop(cfg Config, frame FrameFunc, logger l.Wrapper) Loop {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg.Interval <= 0 {
		cfg.Interval = 16 * time.Millisecond
	}

	if frame == nil {
		logger.Fatal("no frame func")
	}

	return &loopImpl{
		logger:     logger.WithFields(l.StringField(l.ClsKey, "loopImpl")),
		cfg:        cfg,
		frame:      frame,
		routineMan: routineman.NewRoutineMan(context.Background(), logger),
		started:    atomic.NewBool(false),
		paused:     atomic.NewBool(false),
		resumed:    atomic.NewBool(false),
		frames:     atomic.NewInt64(0),
	}
}

type loopImpl struct {
	logger l.Wrapper
	cfg    Config
	frame  FrameFunc

	routineMan routineman.RoutineMan

	started *atomic.Bool
	paused  *atomic.Bool
	resumed *atomic.Bool
	frames  *atomic.Int64
}

func (impl *loopImpl) Start() {
	if !impl.started.CompareAndSwap(false, true) {
		return
	}

	impl.routineMan.StartRoutine(impl.frameRoutine, "frameRoutine")
}

func (impl *loopImpl) Pause() {
	impl.paused.Store(true)
}

func (impl *loopImpl) Resume() {
	if impl.paused.CompareAndSwap(true, false) {
		impl.resumed.Store(true)
	}
}

func (impl *loopImpl) Frames() int64 {
	return impl.frames.Load()
}

func (impl *loopImpl) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *loopImpl) Wait() {
	impl.routineMan.Wait()
}

func (impl *loopImpl) frameRoutine(ctx context.Context, _ func() bool) {
	impl.logger.WithFields(l.StringField("interval", impl.cfg.Interval.String())).Debug("frame loop started")

	ticker := time.NewTicker(impl.cfg.Interval)
	defer ticker.Stop()

	var last time.Time

	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			continue
		case now := <-ticker.C:
			if impl.paused.Load() {
				continue
			}

			if impl.resumed.CompareAndSwap(true, false) {
				last = time.Time{}
			}

			var dt float64
			if !last.IsZero() {
				dt = float64(now.Sub(last)) / float64(time.Millisecond)
			}

			last = now

			impl.frame(smooth.ClampDelta(dt))
			impl.frames.Inc()
		}
	}

	impl.logger.WithFields(l.IntField("frames", int(impl.frames.Load()))).Debug("frame loop stopped")
}
