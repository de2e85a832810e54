package geom_test

import (
	"math"
	"testing"

	"github.com/automoto/chaseview/geom"
)

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	view := geom.LookAt(geom.Vec3{3, -2, 5}, geom.Vec3{10, 4, 1}, geom.Vec3{Z: 1})
	x, y, z, w := view.MulVec4(3, -2, 5, 1)
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 || math.Abs(z) > 1e-12 || math.Abs(w-1) > 1e-12 {
		t.Fatalf("eye in view space: got (%g,%g,%g,%g), want origin", x, y, z, w)
	}
}

func TestLookAtMapsCenterDownNegZ(t *testing.T) {
	eye := geom.Vec3{1, 2, 3}
	center := geom.Vec3{1, 8, 3}
	view := geom.LookAt(eye, center, geom.Vec3{Z: 1})
	x, y, z, _ := view.MulVec4(center.X, center.Y, center.Z, 1)
	d := center.Sub(eye).Length()
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 || math.Abs(z+d) > 1e-12 {
		t.Fatalf("center in view space: got (%g,%g,%g), want (0,0,%g)", x, y, z, -d)
	}
}

func TestLookAtPreservesHandedness(t *testing.T) {
	// Looking along +X with Z up, world +Y must land on the left half
	// of the image (negative view x).
	view := geom.LookAt(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Z: 1})
	x, _, _, _ := view.MulVec4(1, 1, 0, 1)
	if x >= 0 {
		t.Fatalf("world left in view space: x = %g, want < 0", x)
	}
}

func TestLookAtDegenerateUp(t *testing.T) {
	// Up parallel to the view direction must still produce a usable
	// orthonormal basis.
	view := geom.LookAt(geom.Vec3{}, geom.Vec3{Z: 5}, geom.Vec3{Z: 1})
	x, y, z, _ := view.MulVec4(0, 0, 5, 1)
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 || math.Abs(z+5) > 1e-9 {
		t.Fatalf("degenerate up: center at (%g,%g,%g), want (0,0,-5)", x, y, z)
	}
}

func TestPerspectiveProjectsOnAxisToCenter(t *testing.T) {
	proj := geom.Perspective(60, 4.0/3.0, 0.1, 100)
	view := geom.LookAt(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Z: 1})
	ndc, ok := proj.Mul(view).ProjectPoint(geom.Vec3{X: 10})
	if !ok {
		t.Fatal("on-axis point rejected")
	}
	if math.Abs(ndc.X) > 1e-12 || math.Abs(ndc.Y) > 1e-12 {
		t.Fatalf("on-axis point off center: (%g,%g)", ndc.X, ndc.Y)
	}
	if ndc.Z < -1 || ndc.Z > 1 {
		t.Fatalf("depth outside NDC: %g", ndc.Z)
	}
}

func TestProjectPointRejectsBehindEye(t *testing.T) {
	proj := geom.Perspective(60, 1, 0.1, 100)
	view := geom.LookAt(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Z: 1})
	if _, ok := proj.Mul(view).ProjectPoint(geom.Vec3{X: -5}); ok {
		t.Fatal("point behind the eye accepted")
	}
}

func TestProjectPointAboveCenterIsUp(t *testing.T) {
	proj := geom.Perspective(60, 1, 0.1, 100)
	view := geom.LookAt(geom.Vec3{}, geom.Vec3{X: 1}, geom.Vec3{Z: 1})
	ndc, ok := proj.Mul(view).ProjectPoint(geom.Vec3{X: 10, Z: 2})
	if !ok {
		t.Fatal("visible point rejected")
	}
	if ndc.Y <= 0 {
		t.Fatalf("point above the axis: ndc y = %g, want > 0", ndc.Y)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := geom.Perspective(45, 1.5, 0.5, 200)
	got := m.Mul(geom.Identity())
	if got != m {
		t.Fatalf("M * I != M")
	}
	if got := geom.Identity().Mul(m); got != m {
		t.Fatalf("I * M != M")
	}
}
