package series

import "errors"

var (
	ErrUnknownStyle       = errors.New("unknown line style")
	ErrUnknownTooltipMode = errors.New("unknown tooltip mode")
)
