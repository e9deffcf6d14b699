package plot

import (
	"strconv"

	"github.com/godruoyi/go-snowflake"
)

// ElementIDs are the document-unique ids one chart instance uses for its
// gradient, mask and clip definitions.
type ElementIDs struct {
	Base         string `json:"base"`
	Fade         string `json:"fade"`
	Gradient     string `json:"gradient"`
	ClipActive   string `json:"clipActive"`
	ClipInactive string `json:"clipInactive"`
}

func NewElementIDs() ElementIDs {
	base := "chart-" + strconv.FormatUint(snowflake.ID(), 36)

	return ElementIDs{
		Base:         base,
		Fade:         base + "-fade",
		Gradient:     base + "-gradient",
		ClipActive:   base + "-clip-active",
		ClipInactive: base + "-clip-inactive",
	}
}
