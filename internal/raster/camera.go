package raster

import "sphere-raytracer/internal/mathutil"

// Camera is the eye of a render. The zero value is not usable; use
// DefaultCamera for the canonical eye at the origin looking down +Z.
type Camera struct {
	Position mathutil.Vec3
	Rotation mathutil.Mat3
}

func DefaultCamera() Camera {
	return Camera{Rotation: mathutil.Mat3Identity()}
}

// Direction returns the world-space ray direction through a canvas point.
func (cam Camera) Direction(c *Canvas, x, y int) mathutil.Vec3 {
	return cam.Rotation.MulVec3(c.CanvasToViewport(float64(x), float64(y)))
}
