package mathutil

import (
	"math"
	"testing"
)

func mat3Close(t *testing.T, got, want Mat3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("matrix mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{2, 0, 1, 0, 3, 0, 1, 0, 1}
	mat3Close(t, Mat3Mul(m, m.Inverse()), Mat3Identity())
}

func TestMat3InverseSingular(t *testing.T) {
	// Singular matrices fall back to identity, never divide by zero.
	singular := Mat3{1, 2, 3, 2, 4, 6, 0, 0, 0}
	mat3Close(t, singular.Inverse(), Mat3Identity())
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	mat3Close(t, m.Transpose().Transpose(), m)
}

func TestRotZ(t *testing.T) {
	v := RotZ(math.Pi / 2).MulVec3(Vec3{1, 0, 0})
	if math.Abs(v[0]) > 1e-9 || math.Abs(v[1]-1) > 1e-9 || math.Abs(v[2]) > 1e-9 {
		t.Errorf("RotZ(90°)·x = %v, want y", v)
	}
}

func TestRotationsPreserveLength(t *testing.T) {
	v := Vec3{0.3, -1.2, 2.5}
	for _, m := range []Mat3{RotX(0.7), RotY(-1.3), RotZ(2.1)} {
		got := m.MulVec3(v).Len()
		if math.Abs(got-v.Len()) > 1e-9 {
			t.Errorf("rotation changed length: %v vs %v", got, v.Len())
		}
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	if got := Mat4Mul(m, Mat4Identity()); got != m {
		t.Errorf("M·I = %v, want M", got)
	}
	if got := Mat4Mul(Mat4Identity(), m); got != m {
		t.Errorf("I·M = %v, want M", got)
	}
}

func TestModelMatrix(t *testing.T) {
	m := ModelMatrix(Vec3{10, 20, 30}, 2, Vec3{})

	// Translation sits in the last column.
	p := m.MulPoint(Vec3{0, 0, 0})
	if p != (Vec3{10, 20, 30}) {
		t.Errorf("origin maps to %v, want translation", p)
	}

	// Uniform scale applies before translation.
	p = m.MulPoint(Vec3{1, 0, 0})
	if p != (Vec3{12, 20, 30}) {
		t.Errorf("unit x maps to %v, want (12,20,30)", p)
	}
}

func TestLookAtCenterOnAxis(t *testing.T) {
	view := LookAt(Vec3{0, 0, 100}, Vec3{}, Vec3{0, 1, 0})
	p := view.MulPoint(Vec3{})
	// The look-at center lies straight ahead on the view -z axis.
	if math.Abs(p[0]) > 1e-9 || math.Abs(p[1]) > 1e-9 || math.Abs(p[2]+100) > 1e-9 {
		t.Errorf("center in view space = %v, want (0,0,-100)", p)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 1000.0
	proj := Perspective(Deg2Rad(45), 1, near, far)

	ndcZ := func(z float64) float64 {
		clip := proj.MulVec4(Vec4{0, 0, z, 1})
		return clip.PerspectiveDivide()[2]
	}

	if got := ndcZ(-near); math.Abs(got+1) > 1e-9 {
		t.Errorf("near plane maps to %v, want -1", got)
	}
	if got := ndcZ(-far); math.Abs(got-1) > 1e-9 {
		t.Errorf("far plane maps to %v, want +1", got)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(200, 100)

	center := vp.MulVec4(Vec4{0, 0, 0.5, 1})
	if center[0] != 100 || center[1] != 50 {
		t.Errorf("NDC origin maps to (%v, %v), want (100, 50)", center[0], center[1])
	}
	if center[2] != 0.5 {
		t.Errorf("NDC z changed to %v, want passthrough", center[2])
	}

	// y is flipped: NDC +1 is the top of the image.
	top := vp.MulVec4(Vec4{0, 1, 0, 1})
	if top[1] != 0 {
		t.Errorf("NDC y=+1 maps to row %v, want 0", top[1])
	}
}

func TestVec3Normalize(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Normalize().Len(); math.Abs(got-1) > 1e-12 {
		t.Errorf("normalized length = %v", got)
	}
	// The zero vector stays zero instead of producing NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero normalize = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("x × y = %v, want z", got)
	}
}
