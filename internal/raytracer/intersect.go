package raytracer

import (
	"math"

	"sphere-raytracer/internal/mathutil"
)

// IntersectRaySphere solves |origin + t*dir - center|² = radius² for t.
// t1 uses the +√disc root. A miss returns (+Inf, +Inf).
// dir must be non-zero; it does not need to be normalized.
func IntersectRaySphere(origin, dir mathutil.Vec3, s *Sphere) (t1, t2 float64) {
	oc := origin.Sub(s.Center)

	k1 := dir.Dot(dir)
	k2 := 2 * oc.Dot(dir)
	k3 := oc.Dot(oc) - s.Radius*s.Radius

	disc := k2*k2 - 4*k1*k3
	if disc < 0 {
		return math.Inf(1), math.Inf(1)
	}

	sq := math.Sqrt(disc)
	t1 = (-k2 + sq) / (2 * k1)
	t2 = (-k2 - sq) / (2 * k1)
	return t1, t2
}
