package scenefile

import (
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/raytracer"
)

// Description is a fully resolved, validated scene ready to render.
type Description struct {
	Name   string
	Scene  raytracer.Scene
	Canvas CanvasSpec
	Camera CameraSpec
}

// CanvasSpec sizes the render target and the viewport it maps onto.
type CanvasSpec struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	ViewportSize     float64 `json:"viewport_size"`
	ProjectionPlaneZ float64 `json:"projection_plane_z"`
}

// CameraSpec places the eye. Angles are in degrees.
type CameraSpec struct {
	Position mathutil.Vec3 `json:"position"`
	Yaw      float64       `json:"yaw"`
	Pitch    float64       `json:"pitch"`
	Roll     float64       `json:"roll"`
}

// NewCanvas allocates a canvas of the described size.
func (d *Description) NewCanvas() *raster.Canvas {
	return raster.NewCanvas(d.Canvas.Width, d.Canvas.Height, d.Canvas.ViewportSize, d.Canvas.ProjectionPlaneZ)
}

// NewCamera builds the render camera.
func (d *Description) NewCamera() raster.Camera {
	return raster.Camera{
		Position: d.Camera.Position,
		Rotation: mathutil.Orientation(d.Camera.Yaw, d.Camera.Pitch, d.Camera.Roll),
	}
}

// DefaultCanvas matches the examples' square canvas and unit viewport at
// distance 1.
var DefaultCanvas = CanvasSpec{
	Width:            600,
	Height:           600,
	ViewportSize:     1,
	ProjectionPlaneZ: 1,
}

// fileScene is the on-disk JSON layout.
type fileScene struct {
	Background []float64    `json:"background,omitempty"`
	Shadows    bool         `json:"shadows,omitempty"`
	MaxDepth   int          `json:"max_depth,omitempty"`
	Canvas     *CanvasSpec  `json:"canvas,omitempty"`
	Camera     *CameraSpec  `json:"camera,omitempty"`
	Spheres    []fileSphere `json:"spheres"`
	Lights     []fileLight  `json:"lights,omitempty"`
}

type fileSphere struct {
	Center     mathutil.Vec3 `json:"center"`
	Radius     float64       `json:"radius"`
	Color      []float64     `json:"color"`
	Specular   *float64      `json:"specular,omitempty"`
	Reflective *float64      `json:"reflective,omitempty"`
}

type fileLight struct {
	Type      string         `json:"type"`
	Intensity float64        `json:"intensity"`
	Position  *mathutil.Vec3 `json:"position,omitempty"`
	Direction *mathutil.Vec3 `json:"direction,omitempty"`
}
