// Package engine bridges stardrift's math3d types and the mgl64 types
// spoken by OpenGL-facing tooling. Every conversion is a pure reshape:
// field copies for vectors and quaternions, an index remap for matrices
// (math3d stores row-major, mgl64 column-major). No numeric
// transformation happens at this boundary.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
)

// ToVec3 converts a math3d vector to its mgl64 equivalent.
func ToVec3(v math3d.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec3 converts an mgl64 vector to its math3d equivalent.
func FromVec3(v mgl64.Vec3) math3d.Vec3 {
	return math3d.V3(v.X(), v.Y(), v.Z())
}

// ToVec4 converts a math3d homogeneous vector to its mgl64 equivalent.
func ToVec4(v math3d.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromVec4 converts an mgl64 homogeneous vector to its math3d equivalent.
func FromVec4(v mgl64.Vec4) math3d.Vec4 {
	return math3d.V4(v.X(), v.Y(), v.Z(), v.W())
}

// ToQuat converts a math3d quaternion to its mgl64 equivalent. Both
// represent the same rotation; only the field layout differs.
func ToQuat(q math3d.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromQuat converts an mgl64 quaternion to its math3d equivalent.
func FromQuat(q mgl64.Quat) math3d.Quat {
	return math3d.Quat{X: q.V.X(), Y: q.V.Y(), Z: q.V.Z(), W: q.W}
}

// ToMat4 converts a row-major math3d matrix to a column-major mgl64
// matrix. The element at row r, column c keeps its meaning; only its
// flat index changes.
func ToMat4(m math3d.Mat4) mgl64.Mat4 {
	var out mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// FromMat4 converts a column-major mgl64 matrix to a row-major math3d
// matrix.
func FromMat4(m mgl64.Mat4) math3d.Mat4 {
	var out math3d.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = m[col*4+row]
		}
	}
	return out
}
