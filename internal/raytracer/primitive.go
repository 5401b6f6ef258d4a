package raytracer

import "sphere-raytracer/internal/mathutil"

// Color is an RGBA tuple with channels logically in [0, 255].
// Values are not clamped here; the canvas clamps when it stores a pixel.
type Color [4]float64

// Opaque is the alpha written by every shading result.
const Opaque = 255

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, Opaque}
}

// Scale multiplies the RGB channels by k and forces alpha to opaque.
func (c Color) Scale(k float64) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k, Opaque}
}

// Mix returns c*(1-r) + o*r per RGB channel, alpha forced to opaque.
func (c Color) Mix(o Color, r float64) Color {
	return Color{
		c[0]*(1-r) + o[0]*r,
		c[1]*(1-r) + o[1]*r,
		c[2]*(1-r) + o[2]*r,
		Opaque,
	}
}

// Sphere is an immutable scene primitive. Specular and Reflective are
// optional: nil specular means no highlight, nil or zero reflective means
// the surface never spawns a reflected ray.
type Sphere struct {
	Center     mathutil.Vec3
	Radius     float64
	Color      Color
	Specular   *float64
	Reflective *float64
}

// Reflectivity returns the reflective fraction, 0 when absent.
func (s *Sphere) Reflectivity() float64 {
	if s.Reflective == nil {
		return 0
	}
	return *s.Reflective
}

// Float returns a pointer to v, for filling optional sphere fields.
func Float(v float64) *float64 {
	return &v
}

// LightKind selects which payload of a Light is meaningful.
type LightKind int

const (
	Ambient LightKind = iota
	Point
	Directional
)

func (k LightKind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Point:
		return "point"
	case Directional:
		return "directional"
	}
	return "unknown"
}

// Light is a tagged variant. Position is used only by Point lights and
// Direction only by Directional lights. Intensities are summed, never
// normalized.
type Light struct {
	Kind      LightKind
	Intensity float64
	Position  mathutil.Vec3
	Direction mathutil.Vec3
}

func AmbientLight(intensity float64) Light {
	return Light{Kind: Ambient, Intensity: intensity}
}

func PointLight(intensity float64, position mathutil.Vec3) Light {
	return Light{Kind: Point, Intensity: intensity, Position: position}
}

func DirectionalLight(intensity float64, direction mathutil.Vec3) Light {
	return Light{Kind: Directional, Intensity: intensity, Direction: direction}
}
