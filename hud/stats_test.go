package hud_test

import (
	"math"
	"testing"

	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/hud"
	"github.com/automoto/chaseview/vehicle"
)

type stubChassis struct{ speed float64 }

func (s stubChassis) Pos() geom.Vec3          { return geom.Vec3{} }
func (s stubChassis) Rot() geom.Quat          { return geom.QuatIdentity() }
func (s stubChassis) DriverFrame() geom.Frame { return geom.FrameIdentity() }
func (s stubChassis) Speed() float64          { return s.speed }

type stubPower struct {
	ms, mt, slip, tin, tout float64
	gear                    int
	mode                    vehicle.DriveMode
}

func (s stubPower) MotorSpeed() float64          { return s.ms }
func (s stubPower) MotorTorque() float64         { return s.mt }
func (s stubPower) ConverterSlip() float64       { return s.slip }
func (s stubPower) ConverterTorqueIn() float64   { return s.tin }
func (s stubPower) ConverterTorqueOut() float64  { return s.tout }
func (s stubPower) Gear() int                    { return s.gear }
func (s stubPower) DriveMode() vehicle.DriveMode { return s.mode }

type stubDrive struct {
	axles []int
	tq    map[[2]int]float64
}

func (s stubDrive) DrivenAxles() []int { return s.axles }
func (s stubDrive) WheelTorque(axle int, side vehicle.Side) float64 {
	return s.tq[[2]int{axle, int(side)}]
}

func texts(s *fakeSurface) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

func TestPanelColumnLayout(t *testing.T) {
	var s fakeSurface
	p := hud.NewPanel(740, 20)
	power := stubPower{
		ms:   3000 * 2 * math.Pi / 60, // 3000 rpm
		mt:   250.5,
		slip: 0.5,
		tin:  240.25,
		tout: 456.5,
		gear: 2,
		mode: vehicle.Forward,
	}
	drive := stubDrive{
		axles: []int{1},
		tq: map[[2]int]float64{
			{1, int(vehicle.Left)}:  1200.5,
			{1, int(vehicle.Right)}: 1100.25,
		},
	}
	p.Draw(&s, "Chase", stubChassis{speed: 12.25}, power, drive)

	want := []struct {
		s string
		y int
	}{
		{"Camera mode: Chase", 23},
		{"Speed: +12.25", 53},
		{"Eng. RPM: +3000.00", 73},
		{"Eng. Nm: +250.50", 93},
		{"T.conv. slip: +0.50", 113},
		{"T.conv. in  Nm: +240.25", 133},
		{"T.conv. out Nm: +456.50", 153},
		{"Gear: forward, n.gear: 2", 173},
		{"Torque wheel L: +1200.50", 193},
		{"Torque wheel R: +1100.25", 213},
	}
	got := texts(&s)
	if len(got) != len(want) {
		t.Fatalf("row count: got %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].s != w.s {
			t.Fatalf("row %d: got %q, want %q", i, got[i].s, w.s)
		}
		if got[i].x != 743 || got[i].y != w.y {
			t.Fatalf("row %q at (%d,%d), want (743,%d)", w.s, got[i].x, got[i].y, w.y)
		}
	}
}

func TestPanelSpeedBarFactor(t *testing.T) {
	var s fakeSurface
	hud.NewPanel(0, 0).Draw(&s, "Chase",
		stubChassis{speed: 15}, stubPower{mode: vehicle.Neutral}, stubDrive{})
	// Speed row background sits at y=30; its bar fills half of 116px.
	for _, op := range s.rects() {
		if op.c == barColor && op.r.Y == 32 {
			if op.r.W != 58 {
				t.Fatalf("speed bar width: got %d, want 58", op.r.W)
			}
			return
		}
	}
	t.Fatal("speed bar not drawn")
}

func TestPanelGearLabels(t *testing.T) {
	cases := []struct {
		mode vehicle.DriveMode
		gear int
		want string
	}{
		{vehicle.Forward, 3, "Gear: forward, n.gear: 3"},
		{vehicle.Neutral, 0, "Gear: neutral"},
		{vehicle.Reverse, -1, "Gear: reverse"},
		{vehicle.DriveMode(7), 0, "Gear:"},
	}
	for _, c := range cases {
		var s fakeSurface
		hud.NewPanel(0, 0).Draw(&s, "Chase",
			stubChassis{}, stubPower{gear: c.gear, mode: c.mode}, stubDrive{})
		found := false
		for _, op := range texts(&s) {
			if op.s == c.want {
				found = true
				if op.y != 153 {
					t.Fatalf("%q at y=%d, want 153", c.want, op.y)
				}
			}
		}
		if !found {
			t.Fatalf("mode %v: %q not drawn", c.mode, c.want)
		}
	}
}

func TestPanelTwoDrivenAxles(t *testing.T) {
	var s fakeSurface
	drive := stubDrive{
		axles: []int{0, 1},
		tq: map[[2]int]float64{
			{0, int(vehicle.Left)}:  100,
			{0, int(vehicle.Right)}: 200,
			{1, int(vehicle.Left)}:  300,
			{1, int(vehicle.Right)}: 400,
		},
	}
	hud.NewPanel(0, 0).Draw(&s, "Chase", stubChassis{}, stubPower{}, drive)

	want := []struct {
		s string
		y int
	}{
		{"Torque wheel FL: +100.00", 213},
		{"Torque wheel FR: +200.00", 233},
		{"Torque wheel RL: +300.00", 253},
		{"Torque wheel RR: +400.00", 273},
	}
	got := texts(&s)
	for _, w := range want {
		found := false
		for _, op := range got {
			if op.s == w.s && op.y == w.y {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing row %q at y=%d", w.s, w.y)
		}
	}
}

func TestPanelNoDrivenAxles(t *testing.T) {
	var s fakeSurface
	hud.NewPanel(0, 0).Draw(&s, "Chase", stubChassis{}, stubPower{}, stubDrive{})
	for _, op := range texts(&s) {
		if len(op.s) >= 6 && op.s[:6] == "Torque" {
			t.Fatalf("unexpected torque row %q with no driven axles", op.s)
		}
	}
}
