// Package physics implements the sphere broadphase used for proximity
// checks between tracked objects. It is a first-pass test: spheres are
// deliberately crude bounds, and overlap means "close enough to care",
// not an exact contact manifold.
package physics

import "github.com/alexgoldie09/stardrift/pkg/math3d"

// Sphere is a world-space bounding sphere.
type Sphere struct {
	Center math3d.Vec3
	Radius float64
}

// BoundingRadius derives a sphere radius from an object's local scale:
// half the scale vector's norm, padded by extra. The norm-based estimate
// over- or under-shoots elongated objects; that is accepted for a
// broadphase.
func BoundingRadius(scale math3d.Vec3, extra float64) float64 {
	return scale.Len()/2 + extra
}

// Intersects reports whether the two spheres overlap or touch.
// The comparison is squared distance against summed radii, so no square
// root is taken and exact boundary contact counts as a hit.
func (s Sphere) Intersects(o Sphere) bool {
	r := s.Radius + o.Radius
	return o.Center.Sub(s.Center).LenSq() <= r*r
}

// Contact describes the overlap between two spheres.
type Contact struct {
	Hit         bool
	Normal      math3d.Vec3 // unit vector from the first sphere toward the second
	Penetration float64     // overlap depth along Normal
	Point       math3d.Vec3 // point on the first sphere's surface along Normal
}

// Collide computes contact details for two spheres. Concentric spheres
// have no usable direction; they report a hit with an arbitrary fixed
// normal so callers can still separate them.
func Collide(s, o Sphere) Contact {
	if !s.Intersects(o) {
		return Contact{}
	}

	delta := o.Center.Sub(s.Center)
	dist := delta.Len()

	normal, ok := delta.TryNormalize()
	if !ok {
		normal = math3d.Up()
	}

	return Contact{
		Hit:         true,
		Normal:      normal,
		Penetration: s.Radius + o.Radius - dist,
		Point:       s.Center.Add(normal.Scale(s.Radius)),
	}
}
