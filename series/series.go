package series

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
)

// Style is a line stroke style.
type Style string

const (
	StyleSolid  Style = "solid"
	StyleDashed Style = "dashed"
	StyleDotted Style = "dotted"
)

// Palette is the default color cycle, as CSS color values.
var Palette = []string{
	"var(--border-primary)",
	"var(--text-secondary)",
	"var(--surface-blue-strong)",
	"var(--surface-purple-strong)",
	"var(--surface-green-strong)",
	"var(--surface-pink-strong)",
}

// Series configures one plotted data key. Empty fields take defaults.
type Series struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
	Style Style  `yaml:"style" json:"style"`
}

// Resolved is a Series with every field filled in.
type Resolved struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
	Style Style  `yaml:"style" json:"style"`
}

// Resolve turns chart configuration into the series to draw.
//
// A non-nil list wins, even empty. Otherwise a dataKey makes one solid
// series in color (or the first palette color). With neither, nothing is
// drawn and a warning is logged: that is a configuration mistake, not a
// rendering failure.
func Resolve(list []Series, dataKey, color string, logger l.Wrapper) []Resolved {
	if list != nil {
		resolved := make([]Resolved, len(list))

		for i, s := range list {
			resolved[i] = Resolved{
				Key:   s.Key,
				Label: s.Label,
				Color: s.Color,
				Style: s.Style,
			}

			if resolved[i].Label == "" {
				resolved[i].Label = s.Key
			}

			if resolved[i].Color == "" {
				resolved[i].Color = Palette[i%len(Palette)]
			}

			if resolved[i].Style == "" {
				resolved[i].Style = StyleSolid
			}
		}

		return resolved
	}

	if dataKey != "" {
		if color == "" {
			color = Palette[0]
		}

		return []Resolved{{
			Key:   dataKey,
			Label: dataKey,
			Color: color,
			Style: StyleSolid,
		}}
	}

	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger.WithFields(l.StringField(l.ClsKey, "series")).
		Warn("Chart: No series to render. Pass `dataKey` for a single series or `series` for multiple.")

	return []Resolved{}
}

// Keys lists the data keys of resolved series in order.
func Keys(resolved []Resolved) []string {
	keys := make([]string, len(resolved))
	for i, r := range resolved {
		keys[i] = r.Key
	}

	return keys
}

// DashPattern is the SVG stroke-dasharray for style; "" draws a solid line.
func DashPattern(style Style) string {
	switch style {
	case StyleDashed:
		return "4 4"
	case StyleDotted:
		return "1 3"
	default:
		return ""
	}
}

func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case "", StyleSolid:
		return StyleSolid, nil
	case StyleDashed, StyleDotted:
		return st, nil
	default:
		return StyleSolid, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}
