package raytracer

import (
	"math"

	"sphere-raytracer/internal/mathutil"
)

// ComputeLighting sums the light intensity arriving at point p with surface
// normal n, seen from direction view. specular is the surface's shininess
// exponent, or nil for a matte surface. The sum is not clamped.
func (sc *Scene) ComputeLighting(p, n, view mathutil.Vec3, specular *float64) float64 {
	intensity := 0.0

	for _, light := range sc.Lights {
		var l mathutil.Vec3
		var tMax float64

		switch light.Kind {
		case Ambient:
			intensity += light.Intensity
			continue
		case Point:
			l = light.Position.Sub(p)
			tMax = 1
		case Directional:
			l = light.Direction
			tMax = math.Inf(1)
		default:
			continue
		}

		if sc.Options.Shadows {
			if _, _, blocked := sc.ClosestIntersection(p, l, Epsilon, tMax); blocked {
				continue
			}
		}

		// Diffuse
		if nDotL := n.Dot(l); nDotL > 0 {
			intensity += light.Intensity * nDotL / (n.Len() * l.Len())
		}

		// Specular
		if specular != nil {
			r := l.Reflect(n)
			if rDotV := r.Dot(view); rDotV > 0 {
				intensity += light.Intensity * math.Pow(rDotV/(r.Len()*view.Len()), *specular)
			}
		}
	}

	return intensity
}
