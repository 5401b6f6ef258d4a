package raytracer

import (
	"math"

	"sphere-raytracer/internal/mathutil"
)

// Epsilon is the minimum ray parameter for secondary rays (shadow and
// reflection) leaving a surface, to keep them from hitting that surface.
const Epsilon = 0.001

// Options selects the optional tracing features.
type Options struct {
	Shadows  bool
	MaxDepth int // reflection recursion budget; 0 disables reflection
}

// Scene is the read-only input of a render. It must not be mutated while
// tracing; any number of goroutines may trace the same Scene.
type Scene struct {
	Spheres    []Sphere
	Lights     []Light
	Background Color
	Options    Options
}

// ClosestIntersection scans every sphere and returns the nearest hit with
// tMin < t < tMax. On equal t the sphere listed first wins.
func (sc *Scene) ClosestIntersection(origin, dir mathutil.Vec3, tMin, tMax float64) (*Sphere, float64, bool) {
	closestT := math.Inf(1)
	var closest *Sphere

	for i := range sc.Spheres {
		s := &sc.Spheres[i]
		t1, t2 := IntersectRaySphere(origin, dir, s)

		if t1 > tMin && t1 < tMax && t1 < closestT {
			closestT = t1
			closest = s
		}
		if t2 > tMin && t2 < tMax && t2 < closestT {
			closestT = t2
			closest = s
		}
	}

	if closest == nil {
		return nil, 0, false
	}
	return closest, closestT, true
}

// Trace casts a ray using the scene's configured reflection depth.
func (sc *Scene) Trace(origin, dir mathutil.Vec3, tMin, tMax float64) Color {
	return sc.TraceRay(origin, dir, tMin, tMax, sc.Options.MaxDepth)
}

// TraceRay returns the color seen along origin + t*dir for t in (tMin, tMax).
// Each level of reflection consumes one unit of depth, so at most depth+1
// surfaces are shaded along any path.
func (sc *Scene) TraceRay(origin, dir mathutil.Vec3, tMin, tMax float64, depth int) Color {
	sphere, t, ok := sc.ClosestIntersection(origin, dir, tMin, tMax)
	if !ok {
		return sc.Background
	}

	p := origin.Add(dir.Scale(t))
	n := p.Sub(sphere.Center).Normalize()
	view := dir.Neg()

	local := sphere.Color
	if len(sc.Lights) > 0 {
		local = sphere.Color.Scale(sc.ComputeLighting(p, n, view, sphere.Specular))
	}

	r := sphere.Reflectivity()
	if depth <= 0 || r <= 0 {
		return local
	}

	reflected := sc.TraceRay(p, view.Reflect(n), Epsilon, math.Inf(1), depth-1)
	return local.Mix(reflected, r)
}
