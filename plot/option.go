package plot

import "github.com/sgostarter/libchart/ticks"

type Options struct {
	targetCount int
	fixed       bool
	fixedMin    float64
	fixedMax    float64
	zeroBase    bool
	stacked     bool
	references  []float64
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		targetCount: ticks.DefaultTargetCount,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func TargetCountOption(n int) Option {
	return func(o *Options) {
		o.targetCount = n
	}
}

// DomainOption fixes the y domain instead of reading it from the data.
func DomainOption(min, max float64) Option {
	return func(o *Options) {
		o.fixed = true
		o.fixedMin = min
		o.fixedMax = max
	}
}

// ZeroBaseOption starts the axis at 0, as bars grow from zero.
func ZeroBaseOption() Option {
	return func(o *Options) {
		o.zeroBase = true
	}
}

// StackedOption sizes the axis to the row sums. It implies ZeroBaseOption.
func StackedOption() Option {
	return func(o *Options) {
		o.zeroBase = true
		o.stacked = true
	}
}

// ReferenceOption keeps reference line values on a zero based axis.
func ReferenceOption(values ...float64) Option {
	return func(o *Options) {
		o.references = append(o.references, values...)
	}
}
