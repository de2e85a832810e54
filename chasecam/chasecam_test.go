package chasecam_test

import (
	"math"
	"testing"

	"github.com/automoto/chaseview/chasecam"
	"github.com/automoto/chaseview/geom"
)

// stubChassis is a freely movable body pose.
type stubChassis struct {
	pos geom.Vec3
	rot geom.Quat
}

func (s *stubChassis) Pos() geom.Vec3 { return s.pos }
func (s *stubChassis) Rot() geom.Quat { return s.rot }

func newStub() *stubChassis {
	return &stubChassis{rot: geom.QuatIdentity()}
}

func mustCamera(t *testing.T, ch chasecam.Chassis) *chasecam.Camera {
	t.Helper()
	c, err := chasecam.New(ch, chasecam.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func near(a, b geom.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestNewRejectsNilChassis(t *testing.T) {
	if _, err := chasecam.New(nil, chasecam.Params{}); err == nil {
		t.Fatal("expected error for nil chassis")
	}
}

func TestInitializePlacement(t *testing.T) {
	c := mustCamera(t, newStub())
	if err := c.Initialize(geom.Vec3{Z: 1}, geom.FrameIdentity(), 6.0, 0.5); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if got, want := c.Target(), (geom.Vec3{Z: 1}); !near(got, want, 1e-12) {
		t.Fatalf("target = %v, want %v", got, want)
	}
	if got, want := c.Pos(), (geom.Vec3{X: -6, Z: 1.5}); !near(got, want, 1e-12) {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestInitializeFollowsChassisFrame(t *testing.T) {
	ch := newStub()
	ch.pos = geom.Vec3{X: 10, Y: -3}
	ch.rot = geom.RotZ(math.Pi / 2) // facing +Y

	c := mustCamera(t, ch)
	if err := c.Initialize(geom.Vec3{Z: 1}, geom.FrameIdentity(), 6.0, 0.5); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if got, want := c.Target(), (geom.Vec3{X: 10, Y: -3, Z: 1}); !near(got, want, 1e-9) {
		t.Fatalf("target = %v, want %v", got, want)
	}
	// Behind a +Y-facing chassis means offset toward -Y.
	if got, want := c.Pos(), (geom.Vec3{X: 10, Y: -9, Z: 1.5}); !near(got, want, 1e-9) {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestInitializeRejectsNonPositiveDistance(t *testing.T) {
	c := mustCamera(t, newStub())
	for _, d := range []float64{0, -1, -6} {
		if err := c.Initialize(geom.Vec3{Z: 1}, geom.FrameIdentity(), d, 0.5); err == nil {
			t.Fatalf("Initialize accepted distance %v", d)
		}
	}
}

func TestAdvanceSubstepConsistency(t *testing.T) {
	ch := newStub()
	ch.pos = geom.Vec3{X: 25, Y: 4}

	one := mustCamera(t, ch)
	many := mustCamera(t, ch)

	one.Advance(0.01)
	for i := 0; i < 10; i++ {
		many.Advance(0.001)
	}
	if !near(one.Pos(), many.Pos(), 1e-9) || !near(one.Target(), many.Target(), 1e-9) {
		t.Fatalf("one call %v/%v, split calls %v/%v",
			one.Pos(), one.Target(), many.Pos(), many.Target())
	}

	// Splits that do not land on the sub-step boundary.
	a := mustCamera(t, ch)
	b := mustCamera(t, ch)
	a.Advance(0.0035)
	b.Advance(0.002)
	b.Advance(0.0015)
	if !near(a.Pos(), b.Pos(), 1e-6) {
		t.Fatalf("uneven split diverged: %v vs %v", a.Pos(), b.Pos())
	}
}

func TestZoomRoundTrip(t *testing.T) {
	c := mustCamera(t, newStub())
	before := c.Dist()
	c.Zoom(1)
	c.Zoom(-1)
	if got := c.Dist(); math.Abs(got-before) > 1e-12 {
		t.Fatalf("dist = %v after zoom round trip, want %v", got, before)
	}
}

func TestZoomDistanceStaysPositive(t *testing.T) {
	c := mustCamera(t, newStub())
	for i := 0; i < 10000; i++ {
		c.Zoom(-1)
	}
	if d := c.Dist(); d <= 0 {
		t.Fatalf("dist = %v, want > 0", d)
	}
	// And the floor releases: zooming out again still round-trips.
	d0 := c.Dist()
	c.Zoom(1)
	if c.Dist() <= d0 {
		t.Fatal("zoom out had no effect at the floor")
	}
}

func TestZoomIgnoredInside(t *testing.T) {
	c := mustCamera(t, newStub())
	c.SetMode(chasecam.Inside)
	before := c.Dist()
	c.Zoom(1)
	c.Zoom(1)
	if got := c.Dist(); got != before {
		t.Fatalf("dist changed to %v inside", got)
	}
}

func TestSetModeIdempotent(t *testing.T) {
	ch := newStub()
	c := mustCamera(t, ch)
	c.Advance(0.5)

	c.SetMode(chasecam.Follow)
	pos, tgt, d := c.Pos(), c.Target(), c.Dist()
	c.SetMode(chasecam.Follow)
	if c.Pos() != pos || c.Target() != tgt || c.Dist() != d || c.Mode() != chasecam.Follow {
		t.Fatal("second SetMode(Follow) changed state")
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	c := mustCamera(t, newStub())
	c.SetMode(chasecam.Mode(42))
	if got := c.Mode(); got != chasecam.Chase {
		t.Fatalf("mode = %v after bogus request", got)
	}
}

func TestModeNamesRoundTrip(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range []chasecam.Mode{chasecam.Chase, chasecam.Follow, chasecam.Track, chasecam.Inside} {
		name := m.String()
		if seen[name] {
			t.Fatalf("duplicate mode name %q", name)
		}
		seen[name] = true

		back, ok := chasecam.ParseMode(name)
		if !ok || back != m {
			t.Fatalf("ParseMode(%q) = %v, %v", name, back, ok)
		}
	}
	if _, ok := chasecam.ParseMode("Orbit"); ok {
		t.Fatal("ParseMode accepted an unknown name")
	}
}

func TestChaseConvergesBehindVehicle(t *testing.T) {
	ch := newStub()
	ch.pos = geom.Vec3{X: 3, Y: 7}
	c := mustCamera(t, ch)

	c.Advance(10)

	want := geom.Vec3{X: 3 - 6, Y: 7, Z: 1.5}
	if !near(c.Pos(), want, 1e-3) {
		t.Fatalf("pos = %v, want ~%v", c.Pos(), want)
	}
	if !near(c.Target(), geom.Vec3{X: 3, Y: 7, Z: 1}, 1e-3) {
		t.Fatalf("target = %v", c.Target())
	}
}

func TestSmoothingMasksTeleport(t *testing.T) {
	ch := newStub()
	c := mustCamera(t, ch)
	c.Advance(1)

	before := c.Pos()
	ch.pos = geom.Vec3{X: 500}
	c.Advance(0.001)

	moved := c.Pos().Sub(before).Length()
	if moved > 5 {
		t.Fatalf("camera jumped %.2f in one millisecond after teleport", moved)
	}
}

func TestTrackHoldsPerch(t *testing.T) {
	ch := newStub()
	c := mustCamera(t, ch)
	c.Advance(5)

	c.SetMode(chasecam.Track)
	perch := c.Pos()

	ch.pos = geom.Vec3{X: 40, Y: 12}
	c.Advance(5)

	if !near(c.Pos(), perch, 1e-3) {
		t.Fatalf("perch drifted from %v to %v", perch, c.Pos())
	}
	if !near(c.Target(), geom.Vec3{X: 40, Y: 12, Z: 1}, 1e-2) {
		t.Fatalf("target = %v, want to keep aiming at the vehicle", c.Target())
	}
}

func TestInsideIsRigid(t *testing.T) {
	ch := newStub()
	c := mustCamera(t, ch)
	driver := geom.Frame{Pos: geom.Vec3{X: 0.3, Z: 1.1}, Rot: geom.QuatIdentity()}
	if err := c.Initialize(geom.Vec3{Z: 1}, driver, 6.0, 0.5); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	c.SetMode(chasecam.Inside)

	ch.pos = geom.Vec3{X: 100, Y: -2}
	c.Update(0.001)

	want := geom.Vec3{X: 100.3, Y: -2, Z: 1.1}
	if !near(c.Pos(), want, 1e-12) {
		t.Fatalf("pos = %v, want exactly %v", c.Pos(), want)
	}
	if !near(c.Target(), geom.Vec3{X: 101.3, Y: -2, Z: 1.1}, 1e-12) {
		t.Fatalf("target = %v", c.Target())
	}
}

func TestTurnWrapsWithinRevolution(t *testing.T) {
	c := mustCamera(t, newStub())
	for i := 0; i < 500; i++ {
		c.Turn(1)
	}
	if a := c.Angle(); a <= -2*math.Pi || a >= 2*math.Pi {
		t.Fatalf("angle = %v, want within (-2pi, 2pi)", a)
	}
	for i := 0; i < 1000; i++ {
		c.Turn(-1)
	}
	if a := c.Angle(); a <= -2*math.Pi || a >= 2*math.Pi {
		t.Fatalf("angle = %v after negative turns", a)
	}
}

func TestTurnIgnoredWhenHeadingNotOwned(t *testing.T) {
	c := mustCamera(t, newStub())
	c.SetMode(chasecam.Track)
	c.Turn(1)
	if c.Angle() != 0 {
		t.Fatalf("angle = %v in Track", c.Angle())
	}
	c.SetMode(chasecam.Inside)
	c.Turn(-1)
	if c.Angle() != 0 {
		t.Fatalf("angle = %v in Inside", c.Angle())
	}
}
