package live

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchart/smooth"
)

// millisThreshold is the time above which samples look like unix
// milliseconds instead of seconds (year 33658 in seconds).
const millisThreshold = 1e12

func NewSampler(cfg Config, value float64, logger l.Wrapper) Sampler {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if err := cfg.Validate(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid live config, using defaults")

		cfg = DefaultConfig()
	}

	return &samplerImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "samplerImpl")),
		cfg:    cfg,
		st:     NewState(value),
	}
}

type samplerImpl struct {
	logger l.Wrapper
	cfg    Config

	st           State
	warnedMillis bool
}

func (impl *samplerImpl) Update(in Input, dtMillis float64) Frame {
	impl.checkTimeUnit(in.Points)

	var frame Frame

	impl.st, frame = Step(impl.st, in, smooth.ClampDelta(dtMillis), impl.cfg)

	return frame
}

func (impl *samplerImpl) State() State {
	return impl.st
}

func (impl *samplerImpl) Reset(value float64) {
	impl.st = NewState(value)
}

func (impl *samplerImpl) checkTimeUnit(points []Point) {
	if impl.warnedMillis {
		return
	}

	for idx, p := range points {
		if p.Time > millisThreshold {
			impl.warnedMillis = true

			impl.logger.WithFields(l.IntField("index", idx)).
				Warn("live: time values appear to be in milliseconds, expected unix seconds")

			return
		}
	}
}
