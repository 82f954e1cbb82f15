package math3d

import "math"

// Mat4 is a 4x4 matrix stored in row-major order, used for affine and
// homogeneous 3D transforms with column vectors (v' = M * v).
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation (last column)
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale creates a non-uniform scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float64) Mat4 {
	return Scale(V3(s, s, s))
}

// RotateX creates a rotation matrix around the X axis.
// angle is in radians; positive angles rotate right-handed.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
// angle is in radians; positive angles rotate right-handed.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
// angle is in radians; positive angles rotate right-handed.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate creates a rotation matrix around an arbitrary axis.
// angle is in radians. The axis is normalized first.
func Rotate(axis Vec3, angle float64) Mat4 {
	axis = axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// RotationXYZ creates a combined rotation from pitch (X), yaw (Y) and
// roll (Z) in degrees, composed as Rz * Ry * Rx: pitch is applied first,
// then yaw, then roll.
func RotationXYZ(pitch, yaw, roll float64) Mat4 {
	return RotateZ(DegToRad(roll)).
		Mul(RotateY(DegToRad(yaw))).
		Mul(RotateX(DegToRad(pitch)))
}

// RotationYXZ creates a combined rotation from pitch (X), yaw (Y) and
// roll (Z) in degrees, composed as Ry * Rx * Rz: roll is applied first,
// then pitch, then yaw. This is the matrix twin of QuatEuler; the two
// agree for all angles.
func RotationYXZ(pitch, yaw, roll float64) Mat4 {
	return RotateY(DegToRad(yaw)).
		Mul(RotateX(DegToRad(pitch))).
		Mul(RotateZ(DegToRad(roll)))
}

// Perspective creates a perspective projection matrix.
// fovy is vertical field of view in radians.
// aspect is width/height.
// near and far are clipping planes.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovy/2)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Add returns the element-wise sum a + b.
//
//nolint:st1016 // a+b naming convention is clearer for matrix operations
func (a Mat4) Add(b Mat4) Mat4 {
	var m Mat4
	for i := range a {
		m[i] = a[i] + b[i]
	}
	return m
}

// Mul multiplies two matrices: a * b. With column vectors this composes
// right-to-left, so a.Mul(b) applies b first, then a.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// MulVec3 transforms a Vec3 as a point with implicit w=1, so the
// translation column is always applied. The matrix is assumed affine
// (bottom row 0,0,0,1); projective matrices go through MulVec4 and
// Vec4.PerspectiveDivide instead.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// det3 returns the determinant of the 3x3 matrix
// | a b c |
// | d e f |
// | g h i |
func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	return m[0]*det3(m[5], m[6], m[7], m[9], m[10], m[11], m[13], m[14], m[15]) -
		m[1]*det3(m[4], m[6], m[7], m[8], m[10], m[11], m[12], m[14], m[15]) +
		m[2]*det3(m[4], m[5], m[7], m[8], m[9], m[11], m[12], m[13], m[15]) -
		m[3]*det3(m[4], m[5], m[6], m[8], m[9], m[10], m[12], m[13], m[14])
}

// Inverse returns the inverse of the matrix via the adjugate.
// Returns identity if the matrix is singular (det=0).
func (m Mat4) Inverse() Mat4 {
	// Signed cofactors, cRC = cofactor of element (row R, col C).
	c00 := det3(m[5], m[6], m[7], m[9], m[10], m[11], m[13], m[14], m[15])
	c01 := -det3(m[4], m[6], m[7], m[8], m[10], m[11], m[12], m[14], m[15])
	c02 := det3(m[4], m[5], m[7], m[8], m[9], m[11], m[12], m[13], m[15])
	c03 := -det3(m[4], m[5], m[6], m[8], m[9], m[10], m[12], m[13], m[14])

	det := m[0]*c00 + m[1]*c01 + m[2]*c02 + m[3]*c03
	if det == 0 {
		return Identity()
	}

	c10 := -det3(m[1], m[2], m[3], m[9], m[10], m[11], m[13], m[14], m[15])
	c11 := det3(m[0], m[2], m[3], m[8], m[10], m[11], m[12], m[14], m[15])
	c12 := -det3(m[0], m[1], m[3], m[8], m[9], m[11], m[12], m[13], m[15])
	c13 := det3(m[0], m[1], m[2], m[8], m[9], m[10], m[12], m[13], m[14])

	c20 := det3(m[1], m[2], m[3], m[5], m[6], m[7], m[13], m[14], m[15])
	c21 := -det3(m[0], m[2], m[3], m[4], m[6], m[7], m[12], m[14], m[15])
	c22 := det3(m[0], m[1], m[3], m[4], m[5], m[7], m[12], m[13], m[15])
	c23 := -det3(m[0], m[1], m[2], m[4], m[5], m[6], m[12], m[13], m[14])

	c30 := -det3(m[1], m[2], m[3], m[5], m[6], m[7], m[9], m[10], m[11])
	c31 := det3(m[0], m[2], m[3], m[4], m[6], m[7], m[8], m[10], m[11])
	c32 := -det3(m[0], m[1], m[3], m[4], m[5], m[7], m[8], m[9], m[11])
	c33 := det3(m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10])

	// Adjugate is the transposed cofactor matrix.
	d := 1.0 / det
	return Mat4{
		c00 * d, c10 * d, c20 * d, c30 * d,
		c01 * d, c11 * d, c21 * d, c31 * d,
		c02 * d, c12 * d, c22 * d, c32 * d,
		c03 * d, c13 * d, c23 * d, c33 * d,
	}
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row*4+col] = val
}

// Translation extracts the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// SetTranslation sets the translation column.
func (m *Mat4) SetTranslation(v Vec3) {
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
}
