package math3d

import "math"

// Quat represents a rotation as a quaternion.
// Components are X, Y, Z (vector part) and W (scalar part). Only a
// unit-length quaternion is a rotation; the type does not enforce this,
// so callers normalize after long composition chains to avoid drift.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity quaternion (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatAxisAngle creates a quaternion rotating by the given angle in
// degrees around axis. The axis is normalized first and the result is
// normalized again to absorb rounding.
func QuatAxisAngle(axis Vec3, degrees float64) Quat {
	axis = axis.Normalize()
	half := DegToRad(degrees) / 2
	s := math.Sin(half)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}.Normalize()
}

// QuatEuler creates a quaternion from pitch (X), yaw (Y) and roll (Z)
// in degrees, composed as yaw * pitch * roll: roll is applied first,
// then pitch, then yaw. RotationYXZ builds the same rotation in matrix
// form.
func QuatEuler(pitch, yaw, roll float64) Quat {
	qx := QuatAxisAngle(V3(1, 0, 0), pitch)
	qy := QuatAxisAngle(V3(0, 1, 0), yaw)
	qz := QuatAxisAngle(V3(0, 0, 1), roll)
	return qy.Mul(qx).Mul(qz).Normalize()
}

// QuatFromMat4 extracts the rotation from the upper-left 3x3 block of m
// using the trace-based method, branching on the largest diagonal
// element when the trace is not positive to stay numerically stable.
// The block is assumed orthonormal: scale or shear baked into m produces
// a meaningless (but finite) result, not an error.
func QuatFromMat4(m Mat4) Quat {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	trace := m00 + m11 + m22

	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{
			X: (m21 - m12) * s,
			Y: (m02 - m20) * s,
			Z: (m10 - m01) * s,
			W: 0.25 / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quat{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quat{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quat{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}
	return q.Normalize()
}

// Mul returns the Hamilton product a * b. Composition is right-to-left:
// a.Mul(b) applies rotation b first, then a, matching Mat4.Mul.
//
//nolint:st1016 // a*b naming convention is clearer for quaternion composition
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y + a.Y*b.W + a.Z*b.X - a.X*b.Z,
		Z: a.W*b.Z + a.Z*b.W + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Dot returns the four-component dot product a · b.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Quat) Dot(b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the magnitude of the quaternion.
func (q Quat) Len() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// LenSq returns the squared magnitude (faster, no sqrt).
func (q Quat) LenSq() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns the unit quaternion.
// A zero quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// TryNormalize returns the unit quaternion and true, or the identity and
// false when q has zero magnitude. Use this where the degenerate case
// must be detected rather than silently absorbed.
func (q Quat) TryNormalize() (Quat, bool) {
	l := q.Len()
	if l == 0 {
		return QuatIdentity(), false
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}, true
}

// Negate returns -q, which represents the same rotation.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Conjugate returns the conjugate (-x, -y, -z, w), the inverse rotation
// for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse.
// A zero quaternion inverts to the identity.
func (q Quat) Inverse() Quat {
	l2 := q.LenSq()
	if l2 == 0 {
		return QuatIdentity()
	}
	return Quat{-q.X / l2, -q.Y / l2, -q.Z / l2, q.W / l2}
}

// Rotate applies the rotation to v. q should be unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(qv x v) + 2(qv x (qv x v))
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// Mat4 converts the rotation to a 4x4 matrix with zero translation.
// q should be unit length.
func (q Quat) Mat4() Mat4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// Slerp returns the spherical interpolation between a and b by t,
// taking the shorter arc. t is clamped to [0, 1]. Nearly parallel
// inputs fall back to normalized linear interpolation.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Quat) Slerp(b Quat, t float64) Quat {
	t = Clamp01(t)

	dot := a.Dot(b)
	if dot < 0 {
		b = b.Negate()
		dot = -dot
	}

	if dot > 0.9995 {
		return Quat{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
			W: a.W + (b.W-a.W)*t,
		}.Normalize()
	}

	theta0 := math.Acos(Clamp(dot, -1, 1))
	theta := theta0 * t
	sin0 := math.Sin(theta0)

	s0 := math.Cos(theta) - dot*math.Sin(theta)/sin0
	s1 := math.Sin(theta) / sin0

	return Quat{
		X: a.X*s0 + b.X*s1,
		Y: a.Y*s0 + b.Y*s1,
		Z: a.Z*s0 + b.Z*s1,
		W: a.W*s0 + b.W*s1,
	}
}
