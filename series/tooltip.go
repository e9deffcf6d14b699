package series

import (
	"fmt"
	"strings"
)

// TooltipMode selects how much a hover tooltip shows.
type TooltipMode string

const (
	TooltipOff      TooltipMode = "off"
	TooltipSimple   TooltipMode = "simple"
	TooltipCompact  TooltipMode = "compact"
	TooltipDetailed TooltipMode = "detailed"
	TooltipCustom   TooltipMode = "custom"
)

// ParseTooltipMode maps a configuration value to a mode: "" and "false" are
// off, "true" is detailed.
func ParseTooltipMode(s string) (TooltipMode, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "false", string(TooltipOff):
		return TooltipOff, nil
	case "true", string(TooltipDetailed):
		return TooltipDetailed, nil
	case string(TooltipSimple):
		return TooltipSimple, nil
	case string(TooltipCompact):
		return TooltipCompact, nil
	case string(TooltipCustom):
		return TooltipCustom, nil
	default:
		return TooltipOff, fmt.Errorf("%w: %q", ErrUnknownTooltipMode, s)
	}
}
