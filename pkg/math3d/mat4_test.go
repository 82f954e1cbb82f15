package math3d

import (
	"math"
	"testing"
)

func mat4Near(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat4Identity(t *testing.T) {
	id := Identity()
	v := V3(1, -2, 3)

	if got := id.MulVec3(v); got != v {
		t.Errorf("identity moved %v to %v", v, got)
	}
	m := Translate(V3(4, 5, 6))
	if got := m.Mul(id); !mat4Near(got, m, eps) {
		t.Error("M * I should be M")
	}
	if got := id.Mul(m); !mat4Near(got, m, eps) {
		t.Error("I * M should be M")
	}
}

func TestMat4Add(t *testing.T) {
	a := Translate(V3(1, 2, 3))
	b := Scale(V3(2, 2, 2))

	got := a.Add(b)
	for i := range got {
		want := a[i] + b[i]
		if got[i] != want {
			t.Errorf("Add[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestMat4Builders(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		m := Translate(V3(10, 20, 30))
		if got := m.MulVec3(V3(1, 2, 3)); !vec3Near(got, V3(11, 22, 33), eps) {
			t.Errorf("translate = %v, want (11, 22, 33)", got)
		}
		if got := m.Translation(); got != (Vec3{10, 20, 30}) {
			t.Errorf("Translation() = %v, want (10, 20, 30)", got)
		}
	})

	t.Run("scale", func(t *testing.T) {
		m := Scale(V3(2, 3, 4))
		if got := m.MulVec3(V3(1, 1, 1)); !vec3Near(got, V3(2, 3, 4), eps) {
			t.Errorf("scale = %v, want (2, 3, 4)", got)
		}
		if got := ScaleUniform(2).MulVec3(V3(1, 2, 3)); !vec3Near(got, V3(2, 4, 6), eps) {
			t.Errorf("uniform scale = %v, want (2, 4, 6)", got)
		}
	})

	t.Run("rotations", func(t *testing.T) {
		tests := []struct {
			name    string
			m       Mat4
			in, out Vec3
		}{
			{"x carries y to z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
			{"y carries x to -z", RotateY(math.Pi / 2), V3(1, 0, 0), V3(0, 0, -1)},
			{"y carries z to x", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
			{"z carries x to y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		}
		for _, tc := range tests {
			if got := tc.m.MulVec3(tc.in); !vec3Near(got, tc.out, 1e-9) {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.out)
			}
		}
	})

	t.Run("arbitrary axis", func(t *testing.T) {
		// Rotating about Y through the generic axis path matches RotateY.
		if !mat4Near(Rotate(V3(0, 2, 0), 0.7), RotateY(0.7), 1e-9) {
			t.Error("Rotate about (0,1,0) should equal RotateY")
		}
	})
}

func TestMat4MulAppliesRightFirst(t *testing.T) {
	r := RotateZ(math.Pi / 2)
	tr := Translate(V3(1, 0, 0))
	v := V3(1, 0, 0)

	// tr.Mul(r): rotate first (x to y), then translate.
	if got := tr.Mul(r).MulVec3(v); !vec3Near(got, V3(1, 1, 0), 1e-9) {
		t.Errorf("T*R = %v, want (1, 1, 0)", got)
	}

	// r.Mul(tr): translate first (to (2,0,0)), then rotate to (0,2,0).
	if got := r.Mul(tr).MulVec3(v); !vec3Near(got, V3(0, 2, 0), 1e-9) {
		t.Errorf("R*T = %v, want (0, 2, 0)", got)
	}
}

func TestMat4Associativity(t *testing.T) {
	a := Translate(V3(1, 2, 3))
	b := RotateY(0.6)
	c := Scale(V3(2, 0.5, 1.5))

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !mat4Near(left, right, 1e-12) {
		t.Error("(A*B)*C != A*(B*C)")
	}
}

func TestMat4MulVec3AlwaysTranslates(t *testing.T) {
	m := Translate(V3(5, 5, 5))

	// Points pick up the translation even for the zero vector.
	if got := m.MulVec3(Zero3()); !vec3Near(got, V3(5, 5, 5), eps) {
		t.Errorf("MulVec3(0) = %v, want (5, 5, 5)", got)
	}

	// Directions do not.
	if got := m.MulVec3Dir(V3(1, 2, 3)); !vec3Near(got, V3(1, 2, 3), eps) {
		t.Errorf("MulVec3Dir = %v, want (1, 2, 3)", got)
	}
}

func TestMat4RotationXYZ(t *testing.T) {
	// Single angles reduce to the plain axis rotations (degrees in).
	if !mat4Near(RotationXYZ(90, 0, 0), RotateX(math.Pi/2), 1e-12) {
		t.Error("RotationXYZ(90,0,0) should equal RotateX(pi/2)")
	}
	if !mat4Near(RotationXYZ(0, 90, 0), RotateY(math.Pi/2), 1e-12) {
		t.Error("RotationXYZ(0,90,0) should equal RotateY(pi/2)")
	}
	if !mat4Near(RotationXYZ(0, 0, 90), RotateZ(math.Pi/2), 1e-12) {
		t.Error("RotationXYZ(0,0,90) should equal RotateZ(pi/2)")
	}

	// Composition order is Rz * Ry * Rx: pitch applied first.
	p, y, r := 30.0, 45.0, 60.0
	want := RotateZ(DegToRad(r)).Mul(RotateY(DegToRad(y))).Mul(RotateX(DegToRad(p)))
	if !mat4Near(RotationXYZ(p, y, r), want, 1e-12) {
		t.Error("RotationXYZ must compose as Rz*Ry*Rx")
	}

	// RotationYXZ composes the other way around.
	wantYXZ := RotateY(DegToRad(y)).Mul(RotateX(DegToRad(p))).Mul(RotateZ(DegToRad(r)))
	if !mat4Near(RotationYXZ(p, y, r), wantYXZ, 1e-12) {
		t.Error("RotationYXZ must compose as Ry*Rx*Rz")
	}
}

func TestMat4InverseDeterminant(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 2, 2)))

	if got := m.Mul(m.Inverse()); !mat4Near(got, Identity(), 1e-9) {
		t.Error("M * M^-1 should be identity")
	}
	if got := m.Inverse().Mul(m); !mat4Near(got, Identity(), 1e-9) {
		t.Error("M^-1 * M should be identity")
	}

	// Rotations have determinant 1, scales the product of factors.
	if got := RotateX(1.1).Determinant(); math.Abs(got-1) > 1e-12 {
		t.Errorf("rotation determinant = %v, want 1", got)
	}
	if got := Scale(V3(2, 3, 4)).Determinant(); math.Abs(got-24) > 1e-12 {
		t.Errorf("scale determinant = %v, want 24", got)
	}

	// A singular matrix inverts to identity rather than exploding.
	singular := Scale(V3(1, 1, 0))
	if got := singular.Inverse(); !mat4Near(got, Identity(), eps) {
		t.Error("singular inverse should fall back to identity")
	}
}

func TestMat4TransposeGetSet(t *testing.T) {
	m := Translate(V3(1, 2, 3))

	tr := m.Transpose()
	for row := range 4 {
		for col := range 4 {
			if tr.Get(row, col) != m.Get(col, row) {
				t.Fatalf("Transpose mismatch at (%d,%d)", row, col)
			}
		}
	}

	var s Mat4
	s.Set(1, 3, 42)
	if s.Get(1, 3) != 42 || s[7] != 42 {
		t.Error("Set(1,3) should write row-major index 7")
	}

	s.SetTranslation(V3(7, 8, 9))
	if s.Translation() != (Vec3{7, 8, 9}) {
		t.Errorf("Translation = %v, want (7, 8, 9)", s.Translation())
	}
}

func TestMat4Perspective(t *testing.T) {
	proj := Perspective(math.Pi/2, 1, 1, 100)

	// A point on the optical axis projects to the screen center with
	// w = -z.
	clip := proj.MulVec4(V4(0, 0, -10, 1))
	if math.Abs(clip.X) > eps || math.Abs(clip.Y) > eps {
		t.Errorf("axis point off center: (%v, %v)", clip.X, clip.Y)
	}
	if math.Abs(clip.W-10) > eps {
		t.Errorf("clip.W = %v, want 10", clip.W)
	}

	// Points on the near and far planes map to NDC depth -1 and +1.
	near := proj.MulVec4(V4(0, 0, -1, 1)).PerspectiveDivide()
	far := proj.MulVec4(V4(0, 0, -100, 1)).PerspectiveDivide()
	if math.Abs(near.Z+1) > 1e-9 {
		t.Errorf("near depth = %v, want -1", near.Z)
	}
	if math.Abs(far.Z-1) > 1e-9 {
		t.Errorf("far depth = %v, want 1", far.Z)
	}
}

func TestVec4Basics(t *testing.T) {
	v := V4FromV3(V3(1, 2, 3), 1)
	if v != (Vec4{1, 2, 3, 1}) {
		t.Errorf("V4FromV3 = %v, want (1, 2, 3, 1)", v)
	}
	if got := v.Vec3(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec3() = %v, want (1, 2, 3)", got)
	}

	if got := V4(2, 4, 6, 2).PerspectiveDivide(); !vec3Near(got, V3(1, 2, 3), eps) {
		t.Errorf("PerspectiveDivide = %v, want (1, 2, 3)", got)
	}
	// w=0 skips the divide instead of producing infinities.
	if got := V4(2, 4, 6, 0).PerspectiveDivide(); !vec3Near(got, V3(2, 4, 6), eps) {
		t.Errorf("PerspectiveDivide(w=0) = %v, want (2, 4, 6)", got)
	}

	a := V4(1, 2, 3, 4)
	b := V4(5, 6, 7, 8)
	if got := a.Add(b); got != (Vec4{6, 8, 10, 12}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec4{-4, -4, -4, -4}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 70 {
		t.Errorf("Dot = %v, want 70", got)
	}
	if got := a.Scale(2); got != (Vec4{2, 4, 6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := V4(0, 3, 0, 4).Normalize().Len(); math.Abs(got-1) > eps {
		t.Errorf("Normalize length = %v, want 1", got)
	}
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Normalize of zero = %v, want zero", got)
	}
}
