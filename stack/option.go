package stack

type Options struct {
	clampNegative bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// ClampNegativeOption reads negative values as 0 so bands never cross.
func ClampNegativeOption() Option {
	return func(o *Options) {
		o.clampNegative = true
	}
}

func (opt *Options) value(row map[string]any, key string) float64 {
	v := ValueOrZero(row, key)
	if opt.clampNegative && v < 0 {
		return 0
	}

	return v
}
