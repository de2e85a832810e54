package record_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/record"
	"github.com/automoto/chaseview/vehicle"
)

const csvHeader = "time,posx,posy,posz,qw,qx,qy,qz,speed," +
	"motorspeed,motortorque,tcslip,tctorquein,tctorqueout," +
	"gear,drivemode,drivenaxles,torquefl,torquefr,torquerl,torquerr"

func TestRecorderWritesStableHeader(t *testing.T) {
	var buf bytes.Buffer
	rec := record.NewRecorder(&buf)
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	got := strings.SplitN(buf.String(), "\n", 2)[0]
	if got != csvHeader {
		t.Fatalf("header drifted:\n got %s\nwant %s", got, csvHeader)
	}
}

func TestRecordReplayRoundTrip(t *testing.T) {
	rig := vehicle.NewRig()
	rig.SetDriveMode(vehicle.Forward)
	rig.SetThrottle(1)

	type snap struct {
		t     float64
		pos   geom.Vec3
		speed float64
		gear  int
	}
	var buf bytes.Buffer
	rec := record.NewRecorder(&buf)
	var snaps []snap
	for i := 0; i < 20; i++ {
		now := float64(i) * 0.1
		if err := rec.Sample(now, rig, rig.Power, rig); err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		snaps = append(snaps, snap{now, rig.Pos(), rig.Speed(), rig.Power.Gear()})
		for j := 0; j < 10; j++ {
			rig.Update(0.01)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	p, err := record.NewPlayer(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse recording: %v", err)
	}
	if d := p.Duration(); math.Abs(d-1.9) > 1e-9 {
		t.Fatalf("duration: got %g, want 1.9", d)
	}
	for _, s := range snaps {
		p.Seek(s.t)
		if got := p.Pos(); got.Sub(s.pos).Length() > 1e-9 {
			t.Fatalf("pos at t=%g: got %+v, want %+v", s.t, got, s.pos)
		}
		if got := p.Speed(); math.Abs(got-s.speed) > 1e-9 {
			t.Fatalf("speed at t=%g: got %g, want %g", s.t, got, s.speed)
		}
		if got := p.Gear(); got != s.gear {
			t.Fatalf("gear at t=%g: got %d, want %d", s.t, got, s.gear)
		}
	}
	if mode := p.DriveMode(); mode != vehicle.Forward {
		t.Fatalf("drive mode: got %v, want forward", mode)
	}
	if axles := p.DrivenAxles(); len(axles) != 1 || axles[0] != 1 {
		t.Fatalf("driven axles: got %v, want [1]", axles)
	}
	if tq := p.WheelTorque(1, vehicle.Left); tq <= 0 {
		t.Fatalf("replayed wheel torque: got %g, want > 0", tq)
	}
}

func row(fields map[string]string) string {
	cols := strings.Split(csvHeader, ",")
	out := make([]string, len(cols))
	for i, c := range cols {
		v, ok := fields[c]
		if !ok {
			switch c {
			case "qw":
				v = "1"
			case "gear":
				v = "0"
			case "drivemode":
				v = "neutral"
			case "drivenaxles":
				v = "1"
			default:
				v = "0"
			}
		}
		out[i] = v
	}
	return strings.Join(out, ",")
}

func TestPlayerInterpolatesBetweenSamples(t *testing.T) {
	// 90 degrees of yaw over two seconds, moving 4 m along +X.
	data := csvHeader + "\n" +
		row(map[string]string{"time": "0", "speed": "0", "gear": "1", "drivemode": "forward"}) + "\n" +
		row(map[string]string{
			"time": "2", "posx": "4", "speed": "4", "gear": "2", "drivemode": "forward",
			"qw": "0.7071067811865476", "qz": "0.7071067811865476",
		}) + "\n"

	p, err := record.NewPlayer(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p.Seek(1)
	if x := p.Pos().X; math.Abs(x-2) > 1e-9 {
		t.Fatalf("midpoint x: got %g, want 2", x)
	}
	if v := p.Speed(); math.Abs(v-2) > 1e-9 {
		t.Fatalf("midpoint speed: got %g, want 2", v)
	}
	if yaw := p.Rot().Yaw(); math.Abs(yaw-math.Pi/4) > 1e-9 {
		t.Fatalf("midpoint yaw: got %g, want %g", yaw, math.Pi/4)
	}
	// Discrete channels hold the earlier sample.
	if g := p.Gear(); g != 1 {
		t.Fatalf("midpoint gear: got %d, want 1", g)
	}
}

func TestPlayerClampsAtBothEnds(t *testing.T) {
	data := csvHeader + "\n" +
		row(map[string]string{"time": "1", "posx": "10"}) + "\n" +
		row(map[string]string{"time": "2", "posx": "20"}) + "\n"
	p, err := record.NewPlayer(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p.Seek(-100)
	if x := p.Pos().X; x != 10 {
		t.Fatalf("clamp before start: got x=%g, want 10", x)
	}
	if p.Done() {
		t.Fatal("done at start")
	}
	p.Advance(1000)
	if x := p.Pos().X; x != 20 {
		t.Fatalf("clamp past end: got x=%g, want 20", x)
	}
	if !p.Done() {
		t.Fatal("not done past end")
	}
}

func TestPlayerIgnoresColumnOrder(t *testing.T) {
	data := "drivemode,time,posx,posy,posz,qw,qx,qy,qz,speed," +
		"motorspeed,motortorque,tcslip,tctorquein,tctorqueout," +
		"gear,drivenaxles,torquefl,torquefr,torquerl,torquerr\n" +
		"reverse,0,1,2,3,1,0,0,0,-2,100,50,0.5,40,60,-1,0;1,1,2,3,4\n" +
		"reverse,1,1,2,3,1,0,0,0,-2,100,50,0.5,40,60,-1,0;1,1,2,3,4\n"
	p, err := record.NewPlayer(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Pos() != (geom.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("pos: got %+v", p.Pos())
	}
	if p.DriveMode() != vehicle.Reverse || p.Gear() != -1 {
		t.Fatalf("mode/gear: got %v/%d", p.DriveMode(), p.Gear())
	}
	if axles := p.DrivenAxles(); len(axles) != 2 {
		t.Fatalf("driven axles: got %v, want [0 1]", axles)
	}
	if tq := p.WheelTorque(0, vehicle.Right); tq != 2 {
		t.Fatalf("torque FR: got %g, want 2", tq)
	}
}

func TestNewPlayerRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"header only", csvHeader + "\n"},
		{"missing column", "time,posx\n1,2\n"},
		{"time not increasing", csvHeader + "\n" +
			row(map[string]string{"time": "2"}) + "\n" +
			row(map[string]string{"time": "2"}) + "\n"},
		{"bad mode", csvHeader + "\n" +
			row(map[string]string{"time": "0", "drivemode": "sideways"}) + "\n"},
		{"bad number", csvHeader + "\n" +
			row(map[string]string{"time": "0", "speed": "fast"}) + "\n"},
	}
	for _, c := range cases {
		if _, err := record.NewPlayer(strings.NewReader(c.data)); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}
