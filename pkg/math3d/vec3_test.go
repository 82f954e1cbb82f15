package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vec3Near(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Constructors(t *testing.T) {
	if V3(1, 2, 3) != (Vec3{1, 2, 3}) {
		t.Error("V3 should set components in order")
	}
	if Zero3() != (Vec3{}) {
		t.Error("Zero3 should be the zero vector")
	}
	if One3() != (Vec3{1, 1, 1}) {
		t.Error("One3 should be all ones")
	}
	if Up() != (Vec3{0, 1, 0}) || Right() != (Vec3{1, 0, 0}) || Forward() != (Vec3{0, 0, -1}) {
		t.Error("world basis vectors are wrong")
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add = %v, want (5, -3, 9)", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub = %v, want (-3, 7, -3)", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v, want (2, 4, 6)", got)
	}
	if got := a.Mul(b); got != (Vec3{4, -10, 18}) {
		t.Errorf("Mul = %v, want (4, -10, 18)", got)
	}
	if got := a.Div(2); got != (Vec3{0.5, 1, 1.5}) {
		t.Errorf("Div = %v, want (0.5, 1, 1.5)", got)
	}
	if got := a.Negate(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Negate = %v, want (-1, -2, -3)", got)
	}
}

func TestVec3DotSymmetric(t *testing.T) {
	pairs := []struct {
		a, b Vec3
		want float64
	}{
		{V3(1, 0, 0), V3(0, 1, 0), 0},
		{V3(1, 2, 3), V3(4, 5, 6), 32},
		{V3(-2, 1, 0.5), V3(3, -7, 2), -12},
	}

	for _, tc := range pairs {
		if got := tc.a.Dot(tc.b); math.Abs(got-tc.want) > eps {
			t.Errorf("Dot(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		// Dot is symmetric.
		if tc.a.Dot(tc.b) != tc.b.Dot(tc.a) {
			t.Errorf("Dot(%v, %v) != Dot(%v, %v)", tc.a, tc.b, tc.b, tc.a)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	// Right-handed axes: X x Y = Z.
	if got := Right().Cross(Up()); !vec3Near(got, V3(0, 0, 1), eps) {
		t.Errorf("X x Y = %v, want (0, 0, 1)", got)
	}

	pairs := []struct{ a, b Vec3 }{
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-1, 0.5, 2), V3(3, 3, -1)},
		{V3(0, 1, 0), V3(0, 0, 1)},
	}
	for _, tc := range pairs {
		c := tc.a.Cross(tc.b)

		// Antisymmetric: a x b = -(b x a).
		if !vec3Near(c, tc.b.Cross(tc.a).Negate(), eps) {
			t.Errorf("Cross(%v, %v) is not antisymmetric", tc.a, tc.b)
		}
		// Orthogonal to both operands.
		if math.Abs(c.Dot(tc.a)) > eps || math.Abs(c.Dot(tc.b)) > eps {
			t.Errorf("Cross(%v, %v) = %v is not orthogonal to its operands", tc.a, tc.b, c)
		}
	}
}

func TestVec3LenNormalize(t *testing.T) {
	if got := V3(3, 4, 0).Len(); math.Abs(got-5) > eps {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V3(3, 4, 0).LenSq(); math.Abs(got-25) > eps {
		t.Errorf("LenSq = %v, want 25", got)
	}

	vectors := []Vec3{
		V3(1, 0, 0),
		V3(3, 4, 0),
		V3(-2, 7, 0.001),
		V3(1e-8, 0, 0),
	}
	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > eps {
			t.Errorf("Normalize(%v).Len() = %v, want 1", v, n.Len())
		}
	}

	// The zero vector normalizes to itself, not an error.
	if Zero3().Normalize() != Zero3() {
		t.Error("Normalize of the zero vector should be the zero vector")
	}
}

func TestVec3TryNormalize(t *testing.T) {
	if n, ok := V3(0, 0, 9).TryNormalize(); !ok || !vec3Near(n, V3(0, 0, 1), eps) {
		t.Errorf("TryNormalize = %v, %v, want (0, 0, 1), true", n, ok)
	}
	if n, ok := Zero3().TryNormalize(); ok || n != Zero3() {
		t.Errorf("TryNormalize of zero = %v, %v, want (0, 0, 0), false", n, ok)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -20, 30)

	tests := []struct {
		name string
		t    float64
		want Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"middle", 0.5, V3(5, -10, 15)},
		{"clamped below", -2.5, a},
		{"clamped above", 1.5, b},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Lerp(b, tc.t); !vec3Near(got, tc.want, eps) {
				t.Errorf("Lerp(t=%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestVec3Angle(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 90},
		{"same direction", V3(1, 1, 0), V3(2, 2, 0), 0},
		{"opposite", V3(0, 0, 1), V3(0, 0, -3), 180},
		{"diagonal", V3(1, 0, 0), V3(1, 1, 0), 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Angle(tc.b); math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("Angle = %v, want %v", got, tc.want)
			}
		})
	}

	// Near-parallel vectors must not push acos outside its domain.
	a := V3(1, 1e-9, 0)
	b := V3(1, 0, 0)
	if got := a.Angle(b); math.IsNaN(got) {
		t.Error("Angle of near-parallel vectors returned NaN")
	}
}

func TestVec3DistanceReflect(t *testing.T) {
	if got := V3(1, 1, 1).Distance(V3(1, 5, 1)); math.Abs(got-4) > eps {
		t.Errorf("Distance = %v, want 4", got)
	}

	// Bounce a falling vector off the floor plane.
	v := V3(1, -1, 0)
	n := V3(0, 1, 0)
	if got := v.Reflect(n); !vec3Near(got, V3(1, 1, 0), eps) {
		t.Errorf("Reflect = %v, want (1, 1, 0)", got)
	}
}

func TestVec3MinMaxAbs(t *testing.T) {
	a := V3(1, -5, 3)
	b := V3(-2, 4, 3)

	if got := a.Min(b); got != (Vec3{-2, -5, 3}) {
		t.Errorf("Min = %v, want (-2, -5, 3)", got)
	}
	if got := a.Max(b); got != (Vec3{1, 4, 3}) {
		t.Errorf("Max = %v, want (1, 4, 3)", got)
	}
	if got := a.Abs(); got != (Vec3{1, 5, 3}) {
		t.Errorf("Abs = %v, want (1, 5, 3)", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(math.Pi / 2); math.Abs(got-90) > eps {
		t.Errorf("RadToDeg(pi/2) = %v, want 90", got)
	}
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.25, 0, 1) != 0.25 {
		t.Error("Clamp is wrong")
	}
	if Clamp01(2) != 1 || Clamp01(-1) != 0 {
		t.Error("Clamp01 is wrong")
	}
}
