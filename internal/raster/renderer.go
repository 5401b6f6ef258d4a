package raster

import (
	"context"
	"math"

	"sphere-raytracer/internal/raytracer"
)

// PrimaryMinT starts primary rays on the projection plane, so nothing
// between the eye and the viewport is drawn.
const PrimaryMinT = 1.0

// Render traces one ray per canvas pixel, row by row, on the calling
// goroutine. ctx is checked between rows; a cancelled render returns
// ctx.Err() with the rows done so far left in the canvas.
func Render(ctx context.Context, sc *raytracer.Scene, c *Canvas, cam Camera) error {
	halfW, halfH := c.Width/2, c.Height/2

	for y := halfH - 1; y >= halfH-c.Height; y-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := -halfW; x < c.Width-halfW; x++ {
			dir := cam.Direction(c, x, y)
			col := sc.Trace(cam.Position, dir, PrimaryMinT, math.Inf(1))
			c.PutPixel(x, y, col)
		}
	}
	return nil
}
