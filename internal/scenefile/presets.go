package scenefile

import (
	"sort"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raytracer"
)

// Built-in scenes. Each one adds a feature to the previous:
// flat colors, diffuse lighting, specular highlights, shadows, reflections.
var presets = map[string]func() *Description{
	"basic":      basicScene,
	"diffuse":    diffuseScene,
	"specular":   specularScene,
	"shadows":    shadowScene,
	"reflection": reflectionScene,
}

// Preset returns a fresh copy of a built-in scene.
func Preset(name string) (*Description, bool) {
	build, ok := presets[name]
	if !ok {
		return nil, false
	}
	d := build()
	d.Name = name
	return d, true
}

// PresetNames lists the built-in scenes in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func threeSpheres() []raytracer.Sphere {
	return []raytracer.Sphere{
		{Center: mathutil.Vec3{0, -1, 3}, Radius: 1, Color: raytracer.RGB(255, 0, 0)},
		{Center: mathutil.Vec3{-2, 0, 4}, Radius: 1, Color: raytracer.RGB(0, 255, 0)},
		{Center: mathutil.Vec3{2, 0, 4}, Radius: 1, Color: raytracer.RGB(0, 0, 255)},
	}
}

func standardLights() []raytracer.Light {
	return []raytracer.Light{
		raytracer.AmbientLight(0.2),
		raytracer.PointLight(0.6, mathutil.Vec3{2, 1, 0}),
		raytracer.DirectionalLight(0.2, mathutil.Vec3{1, 4, 4}),
	}
}

func ground() raytracer.Sphere {
	return raytracer.Sphere{Center: mathutil.Vec3{0, -5001, 0}, Radius: 5000, Color: raytracer.RGB(255, 255, 0)}
}

func basicScene() *Description {
	return &Description{
		Scene: raytracer.Scene{
			Spheres:    threeSpheres(),
			Background: raytracer.RGB(255, 255, 255),
		},
		Canvas: DefaultCanvas,
	}
}

func diffuseScene() *Description {
	d := basicScene()
	d.Scene.Spheres = append(d.Scene.Spheres, ground())
	d.Scene.Lights = standardLights()
	return d
}

func specularScene() *Description {
	d := diffuseScene()
	for i, s := range []float64{500, 10, 500, 1000} {
		d.Scene.Spheres[i].Specular = raytracer.Float(s)
	}
	return d
}

func shadowScene() *Description {
	d := specularScene()
	d.Scene.Options.Shadows = true
	return d
}

func reflectionScene() *Description {
	d := shadowScene()
	for i, r := range []float64{0.2, 0.3, 0.4, 0.5} {
		d.Scene.Spheres[i].Reflective = raytracer.Float(r)
	}
	d.Scene.Background = raytracer.RGB(0, 0, 0)
	d.Scene.Options.MaxDepth = 3
	return d
}
