package render

import (
	"github.com/alexgoldie09/stardrift/pkg/math3d"
)

// Plane is the set of points p where Normal.Dot(p) + D == 0. Frustum
// planes keep Normal pointing into the visible volume.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// newPlane builds a normalized plane from the raw coefficients of
// ax + by + cz + d = 0.
func newPlane(a, b, c, d float64) Plane {
	n := math3d.V3(a, b, c)
	l := n.Len()
	if l == 0 {
		return Plane{Normal: n, D: d}
	}
	return Plane{Normal: n.Div(l), D: d / l}
}

// Distance returns the signed distance from the plane to a point:
// positive on the normal's side, negative behind.
func (p Plane) Distance(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is a view volume bounded by six inward-facing planes.
type Frustum [6]Plane

const (
	planeLeft = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

// frustumFromMatrix extracts the clip planes from a view-projection
// matrix using the Gribb/Hartmann method. With row-major storage row i
// is m[4i..4i+3], and each plane is row 3 plus or minus another row.
func frustumFromMatrix(m math3d.Mat4) Frustum {
	row := func(i int) (float64, float64, float64, float64) {
		return m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]
	}
	x0, y0, z0, w0 := row(0)
	x1, y1, z1, w1 := row(1)
	x2, y2, z2, w2 := row(2)
	x3, y3, z3, w3 := row(3)

	var f Frustum
	f[planeLeft] = newPlane(x3+x0, y3+y0, z3+z0, w3+w0)
	f[planeRight] = newPlane(x3-x0, y3-y0, z3-z0, w3-w0)
	f[planeBottom] = newPlane(x3+x1, y3+y1, z3+z1, w3+w1)
	f[planeTop] = newPlane(x3-x1, y3-y1, z3-z1, w3-w1)
	f[planeNear] = newPlane(x3+x2, y3+y2, z3+z2, w3+w2)
	f[planeFar] = newPlane(x3-x2, y3-y2, z3-z2, w3-w2)
	return f
}

// ContainsPoint reports whether p lies inside all six planes.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := range f {
		if f[i].Distance(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether any part of the sphere is inside
// the frustum. Spheres straddling a plane count as visible.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float64) bool {
	for i := range f {
		if f[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

// Frustum returns the view frustum for the camera's current view and
// projection, for culling before lines are projected.
func (c *Camera) Frustum() Frustum {
	return frustumFromMatrix(c.ViewProjectionMatrix())
}
