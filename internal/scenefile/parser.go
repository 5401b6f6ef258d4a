package scenefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raytracer"
)

// Load reads and validates a JSON scene file. The scene is named after the
// file's base name without extension.
func Load(path string) (*Description, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}

	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", path, err)
	}
	d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return d, nil
}

// Parse decodes and validates a JSON scene. Unknown fields are rejected.
func Parse(raw []byte) (*Description, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var f fileScene
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse: unexpected data after the scene object")
	}
	return f.resolve()
}

// Resolve finds a scene by preset name or, failing that, as a file path.
func Resolve(nameOrPath string) (*Description, error) {
	if d, ok := Preset(nameOrPath); ok {
		return d, nil
	}
	return Load(nameOrPath)
}

func (f *fileScene) resolve() (*Description, error) {
	d := &Description{Canvas: DefaultCanvas}
	d.Scene.Options = raytracer.Options{Shadows: f.Shadows, MaxDepth: f.MaxDepth}

	if f.MaxDepth < 0 {
		return nil, fmt.Errorf("max_depth must be >= 0, got %d", f.MaxDepth)
	}

	d.Scene.Background = raytracer.RGB(255, 255, 255)
	if f.Background != nil {
		c, err := parseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		d.Scene.Background = c
	}

	if f.Canvas != nil {
		d.Canvas = *f.Canvas
		if d.Canvas.ViewportSize == 0 {
			d.Canvas.ViewportSize = DefaultCanvas.ViewportSize
		}
		if d.Canvas.ProjectionPlaneZ == 0 {
			d.Canvas.ProjectionPlaneZ = DefaultCanvas.ProjectionPlaneZ
		}
	}
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas: size %dx%d must be positive", d.Canvas.Width, d.Canvas.Height)
	}
	if d.Canvas.ViewportSize < 0 {
		return nil, fmt.Errorf("canvas: viewport_size must be positive")
	}
	if f.Camera != nil {
		d.Camera = *f.Camera
	}

	for i, s := range f.Spheres {
		sp, err := s.resolve()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		d.Scene.Spheres = append(d.Scene.Spheres, sp)
	}

	for i, l := range f.Lights {
		light, err := l.resolve()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		d.Scene.Lights = append(d.Scene.Lights, light)
	}

	return d, nil
}

func (s fileSphere) resolve() (raytracer.Sphere, error) {
	if !(s.Radius > 0) {
		return raytracer.Sphere{}, fmt.Errorf("radius must be positive, got %v", s.Radius)
	}
	c, err := parseColor(s.Color)
	if err != nil {
		return raytracer.Sphere{}, fmt.Errorf("color: %w", err)
	}
	if s.Reflective != nil && (*s.Reflective < 0 || *s.Reflective > 1) {
		return raytracer.Sphere{}, fmt.Errorf("reflective must be in [0, 1], got %v", *s.Reflective)
	}
	return raytracer.Sphere{
		Center:     s.Center,
		Radius:     s.Radius,
		Color:      c,
		Specular:   s.Specular,
		Reflective: s.Reflective,
	}, nil
}

func (l fileLight) resolve() (raytracer.Light, error) {
	if l.Intensity < 0 || math.IsNaN(l.Intensity) {
		return raytracer.Light{}, fmt.Errorf("intensity must be >= 0, got %v", l.Intensity)
	}

	switch strings.ToLower(l.Type) {
	case "ambient":
		return raytracer.AmbientLight(l.Intensity), nil
	case "point":
		if l.Position == nil {
			return raytracer.Light{}, fmt.Errorf("point light needs a position")
		}
		return raytracer.PointLight(l.Intensity, *l.Position), nil
	case "directional":
		if l.Direction == nil || *l.Direction == (mathutil.Vec3{}) {
			return raytracer.Light{}, fmt.Errorf("directional light needs a non-zero direction")
		}
		return raytracer.DirectionalLight(l.Intensity, *l.Direction), nil
	}
	return raytracer.Light{}, fmt.Errorf("unknown light type %q", l.Type)
}

// parseColor accepts [r, g, b] (opaque) or [r, g, b, a].
func parseColor(v []float64) (raytracer.Color, error) {
	switch len(v) {
	case 3:
		return raytracer.RGB(v[0], v[1], v[2]), nil
	case 4:
		return raytracer.Color{v[0], v[1], v[2], v[3]}, nil
	}
	return raytracer.Color{}, fmt.Errorf("want 3 or 4 components, got %d", len(v))
}

// Encode writes d in the JSON scene format, indented.
func Encode(w io.Writer, d *Description) error {
	f := fileScene{
		Background: d.Scene.Background[:],
		Shadows:    d.Scene.Options.Shadows,
		MaxDepth:   d.Scene.Options.MaxDepth,
		Canvas:     &d.Canvas,
		Camera:     &d.Camera,
	}
	for _, s := range d.Scene.Spheres {
		f.Spheres = append(f.Spheres, fileSphere{
			Center:     s.Center,
			Radius:     s.Radius,
			Color:      s.Color[:],
			Specular:   s.Specular,
			Reflective: s.Reflective,
		})
	}
	for _, l := range d.Scene.Lights {
		fl := fileLight{Type: l.Kind.String(), Intensity: l.Intensity}
		switch l.Kind {
		case raytracer.Point:
			p := l.Position
			fl.Position = &p
		case raytracer.Directional:
			dir := l.Direction
			fl.Direction = &dir
		}
		f.Lights = append(f.Lights, fl)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("scenefile: encode: %w", err)
	}
	return nil
}
