package live

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

// Config holds the hand-tuned constants of the live chart. Their values are
// aesthetic, so all of them can be overridden.
type Config struct {
	// WindowSecs is the visible time span.
	WindowSecs float64 `yaml:"windowSecs" json:"windowSecs"`
	// LerpSpeed eases the live value and the y bounds, per 16.667ms frame.
	LerpSpeed float64 `yaml:"lerpSpeed" json:"lerpSpeed"`
	// LookaheadRatio of the window is left empty right of "now".
	LookaheadRatio float64 `yaml:"lookaheadRatio" json:"lookaheadRatio"`
	// LeftPadSecs keeps points slightly left of the window so the curve
	// enters from off-plot.
	LeftPadSecs   float64 `yaml:"leftPadSecs" json:"leftPadSecs"`
	ValuePadRatio float64 `yaml:"valuePadRatio" json:"valuePadRatio"`

	MinGridGap       float64 `yaml:"minGridGap" json:"minGridGap"`
	GridKeepLow      float64 `yaml:"gridKeepLow" json:"gridKeepLow"`
	GridKeepHigh     float64 `yaml:"gridKeepHigh" json:"gridKeepHigh"`
	GridMaxSteps     int     `yaml:"gridMaxSteps" json:"gridMaxSteps"`
	GridFadeInSpeed  float64 `yaml:"gridFadeInSpeed" json:"gridFadeInSpeed"`
	GridFadeOutSpeed float64 `yaml:"gridFadeOutSpeed" json:"gridFadeOutSpeed"`
	GridEdgeFade     float64 `yaml:"gridEdgeFade" json:"gridEdgeFade"`
	GridMinAlpha     float64 `yaml:"gridMinAlpha" json:"gridMinAlpha"`

	// SnapRatio of the displayed range below which the live value lands on
	// its target.
	SnapRatio float64 `yaml:"snapRatio" json:"snapRatio"`

	TimeLabelCount int     `yaml:"timeLabelCount" json:"timeLabelCount"`
	TimeLabelInset float64 `yaml:"timeLabelInset" json:"timeLabelInset"`

	Padding Padding `yaml:"padding" json:"padding"`
}

// Padding is the space around the plot area, in pixels. GridLeft replaces
// Left when the y grid labels are shown.
type Padding struct {
	Top      float64 `yaml:"top" json:"top"`
	Right    float64 `yaml:"right" json:"right"`
	Bottom   float64 `yaml:"bottom" json:"bottom"`
	Left     float64 `yaml:"left" json:"left"`
	GridLeft float64 `yaml:"gridLeft" json:"gridLeft"`
}

func DefaultConfig() Config {
	return Config{
		WindowSecs:       30,
		LerpSpeed:        0.08,
		LookaheadRatio:   0.05,
		LeftPadSecs:      2,
		ValuePadRatio:    0.1,
		MinGridGap:       36,
		GridKeepLow:      0.5,
		GridKeepHigh:     4,
		GridMaxSteps:     30,
		GridFadeInSpeed:  0.18,
		GridFadeOutSpeed: 0.12,
		GridEdgeFade:     32,
		GridMinAlpha:     0.01,
		SnapRatio:        0.001,
		TimeLabelCount:   5,
		TimeLabelInset:   20,
		Padding: Padding{
			Top:      12,
			Right:    16,
			Bottom:   28,
			Left:     12,
			GridLeft: 48,
		},
	}
}

// LoadConfig parses YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func LoadConfig(data []byte) (cfg Config, err error) {
	cfg = DefaultConfig()

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		err = fmt.Errorf("%w: %v", commerr.ErrInvalidArgument, err) // nolint: errorlint

		return
	}

	err = cfg.Validate()

	return
}

func (cfg *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"windowSecs", cfg.WindowSecs},
		{"minGridGap", cfg.MinGridGap},
		{"gridKeepHigh", cfg.GridKeepHigh},
		{"gridMinAlpha", cfg.GridMinAlpha},
	}

	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", commerr.ErrInvalidArgument, p.name)
		}
	}

	speeds := []struct {
		name string
		v    float64
	}{
		{"lerpSpeed", cfg.LerpSpeed},
		{"gridFadeInSpeed", cfg.GridFadeInSpeed},
		{"gridFadeOutSpeed", cfg.GridFadeOutSpeed},
	}

	for _, s := range speeds {
		if s.v <= 0 || s.v > 1 {
			return fmt.Errorf("%w: %s must be in (0, 1]", commerr.ErrInvalidArgument, s.name)
		}
	}

	if cfg.LookaheadRatio < 0 || cfg.LookaheadRatio >= 1 {
		return fmt.Errorf("%w: lookaheadRatio must be in [0, 1)", commerr.ErrInvalidArgument)
	}

	if cfg.LeftPadSecs < 0 || cfg.ValuePadRatio < 0 || cfg.SnapRatio < 0 || cfg.GridEdgeFade < 0 ||
		cfg.TimeLabelInset < 0 {
		return fmt.Errorf("%w: negative padding", commerr.ErrInvalidArgument)
	}

	if cfg.GridKeepLow < 0 || cfg.GridKeepLow > cfg.GridKeepHigh {
		return fmt.Errorf("%w: gridKeepLow must be in [0, gridKeepHigh]", commerr.ErrInvalidArgument)
	}

	if cfg.GridMaxSteps <= 0 || cfg.TimeLabelCount <= 0 {
		return fmt.Errorf("%w: gridMaxSteps and timeLabelCount must be positive", commerr.ErrInvalidArgument)
	}

	return nil
}

// Grid returns the interval picking part of the config.
func (cfg *Config) Grid() GridConfig {
	return GridConfig{
		MinGap:   cfg.MinGridGap,
		KeepLow:  cfg.GridKeepLow,
		KeepHigh: cfg.GridKeepHigh,
		MaxSteps: cfg.GridMaxSteps,
	}
}
