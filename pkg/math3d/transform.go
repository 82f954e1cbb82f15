package math3d

// Transform is a position, rotation and scale composing one affine
// transform.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: One3()}
}

// Mat4 composes the transform as translation * rotation * scale,
// so scale is applied first and translation last.
func (t Transform) Mat4() Mat4 {
	return Translate(t.Position).Mul(t.Rotation.Mat4()).Mul(Scale(t.Scale))
}

// TransformFromMat4 decomposes an affine TRS matrix back into position,
// rotation and scale. Scale components are the norms of the basis
// columns; the rotation is extracted from the scale-normalized 3x3
// block. Shear is not representable. If any basis column has zero
// length the rotation falls back to identity.
func TransformFromMat4(m Mat4) Transform {
	sx := V3(m[0], m[4], m[8]).Len()
	sy := V3(m[1], m[5], m[9]).Len()
	sz := V3(m[2], m[6], m[10]).Len()

	// A negative determinant means a mirrored transform; fold the flip
	// into the X scale so the remaining block is a pure rotation.
	if m.Determinant() < 0 {
		sx = -sx
	}

	t := Transform{
		Position: m.Translation(),
		Rotation: QuatIdentity(),
		Scale:    V3(sx, sy, sz),
	}
	if sx == 0 || sy == 0 || sz == 0 {
		return t
	}

	t.Rotation = QuatFromMat4(Mat4{
		m[0] / sx, m[1] / sy, m[2] / sz, 0,
		m[4] / sx, m[5] / sy, m[6] / sz, 0,
		m[8] / sx, m[9] / sy, m[10] / sz, 0,
		0, 0, 0, 1,
	})
	return t
}
