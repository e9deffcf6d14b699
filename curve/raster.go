package curve

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

var _ Canvas = (*RasterCanvas)(nil)

// RasterCanvas rasterizes canvas commands into a coverage mask. Only fills
// are supported, which is what area and band shapes need.
type RasterCanvas struct {
	z *vector.Rasterizer
}

func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		z: vector.NewRasterizer(width, height),
	}
}

func (rc *RasterCanvas) MoveTo(x, y float64) {
	rc.z.MoveTo(float32(x), float32(y))
}

func (rc *RasterCanvas) LineTo(x, y float64) {
	rc.z.LineTo(float32(x), float32(y))
}

func (rc *RasterCanvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	rc.z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

func (rc *RasterCanvas) ClosePath() {
	rc.z.ClosePath()
}

func (rc *RasterCanvas) Bounds() image.Rectangle {
	return rc.z.Bounds()
}

// Fill composites src through the accumulated coverage onto dst.
func (rc *RasterCanvas) Fill(dst draw.Image, src image.Image) {
	rc.z.Draw(dst, rc.z.Bounds(), src, image.Point{})
}

// Mask returns the accumulated coverage as an alpha image.
func (rc *RasterCanvas) Mask() *image.Alpha {
	mask := image.NewAlpha(rc.z.Bounds())
	rc.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// Reset clears the coverage, keeping the size.
func (rc *RasterCanvas) Reset() {
	size := rc.z.Size()
	rc.z.Reset(size.X, size.Y)
}
