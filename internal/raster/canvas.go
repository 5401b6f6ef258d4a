package raster

import (
	"image"
	"math"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raytracer"
)

// Canvas holds the render target as a flat RGBA slice plus the viewport
// geometry used to turn canvas coordinates into ray directions.
//
// Canvas coordinates are centered: x runs over [-W/2, W/2) left to right and
// y over [-H/2, H/2) bottom to top.
type Canvas struct {
	Width            int
	Height           int
	ViewportSize     float64
	ProjectionPlaneZ float64
	Pix              []uint8 // RGBA interleaved, len = W*H*4
}

// NewCanvas allocates a zeroed (transparent black) canvas.
func NewCanvas(w, h int, viewportSize, projectionPlaneZ float64) *Canvas {
	return &Canvas{
		Width:            w,
		Height:           h,
		ViewportSize:     viewportSize,
		ProjectionPlaneZ: projectionPlaneZ,
		Pix:              make([]uint8, w*h*4),
	}
}

// CanvasToViewport maps a canvas coordinate to a point on the projection
// plane, which doubles as the ray direction from an eye at the origin.
func (c *Canvas) CanvasToViewport(x, y float64) mathutil.Vec3 {
	return mathutil.Vec3{
		x * c.ViewportSize / float64(c.Width),
		y * c.ViewportSize / float64(c.Height),
		c.ProjectionPlaneZ,
	}
}

// PutPixel stores col at canvas coordinate (x, y). Coordinates outside the
// canvas are dropped. Channels are clamped to [0, 255] here; the tracer
// never clamps.
func (c *Canvas) PutPixel(x, y int, col raytracer.Color) {
	px := c.Width/2 + x
	py := c.Height/2 - y - 1
	if px < 0 || py < 0 || px >= c.Width || py >= c.Height {
		return
	}

	i := (py*c.Width + px) * 4
	c.Pix[i] = clamp255(col[0])
	c.Pix[i+1] = clamp255(col[1])
	c.Pix[i+2] = clamp255(col[2])
	c.Pix[i+3] = clamp255(col[3])
}

// Image copies the canvas into a new NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	copy(img.Pix, c.Pix)
	return img
}

// clamp255 truncates towards zero after clamping, matching a plain
// float-to-byte cast for in-range values.
func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
