package memo

import "github.com/sgostarter/libchart/curve"

// Cache memoizes curve outputs by point content, so re-renders with an
// unchanged point set skip path building.
type Cache interface {
	Path(points []curve.Point, mode curve.Mode) string
	AreaPath(top, base []curve.Point, mode curve.Mode) string
	Interpolator(points []curve.Point, mode curve.Mode) curve.Interpolator

	Stats() Stats
	Flush()
}

type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Items  int   `json:"items"`
}
