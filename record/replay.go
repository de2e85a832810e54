package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/vehicle"
)

type sample struct {
	t      float64
	pos    geom.Vec3
	rot    geom.Quat
	speed  float64
	motor  float64
	torque float64
	slip   float64
	tcIn   float64
	tcOut  float64
	gear   int
	mode   vehicle.DriveMode
	driven []int
	wheel  [2][2]float64
}

// Player replays a recorded run as live telemetry. Pose and scalar
// channels interpolate between samples; gear, drive mode and the driven
// axle set hold the earlier sample of each segment.
type Player struct {
	// Seat is the chassis-local eye point reported to the Inside view;
	// the recording does not carry one.
	Seat geom.Vec3

	samples []sample
	clock   float64
	cur     sample
}

// Open reads a whole recording from path.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewPlayer(f)
}

// NewPlayer parses a recording. Columns are matched by header name, so
// column order does not matter; times must increase strictly.
func NewPlayer(r io.Reader) (*Player, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("record: no samples")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("record: missing column %q", name)
		}
	}

	p := &Player{
		Seat:    geom.Vec3{X: 0.5, Y: 0.35, Z: 0.55},
		samples: make([]sample, 0, len(rows)-1),
	}
	for n, row := range rows[1:] {
		s, err := parseSample(row, idx)
		if err != nil {
			return nil, fmt.Errorf("record: row %d: %w", n+2, err)
		}
		if len(p.samples) > 0 && s.t <= p.samples[len(p.samples)-1].t {
			return nil, fmt.Errorf("record: row %d: time %g does not increase", n+2, s.t)
		}
		p.samples = append(p.samples, s)
	}

	p.clock = p.samples[0].t
	p.cur = p.samples[0]
	return p, nil
}

func parseSample(row []string, idx map[string]int) (sample, error) {
	var s sample
	var err error

	get := func(name string) string { return row[idx[name]] }
	f := func(name string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(get(name), 64)
		if err != nil {
			err = fmt.Errorf("column %q: %w", name, err)
		}
		return v
	}

	for _, name := range header {
		if idx[name] >= len(row) {
			return s, fmt.Errorf("short row")
		}
	}

	s.t = f("time")
	s.pos = geom.Vec3{X: f("posx"), Y: f("posy"), Z: f("posz")}
	s.rot = geom.Quat{W: f("qw"), X: f("qx"), Y: f("qy"), Z: f("qz")}.Normalize()
	s.speed = f("speed")
	s.motor = f("motorspeed")
	s.torque = f("motortorque")
	s.slip = f("tcslip")
	s.tcIn = f("tctorquein")
	s.tcOut = f("tctorqueout")
	s.wheel[0][vehicle.Left] = f("torquefl")
	s.wheel[0][vehicle.Right] = f("torquefr")
	s.wheel[1][vehicle.Left] = f("torquerl")
	s.wheel[1][vehicle.Right] = f("torquerr")
	if err != nil {
		return s, err
	}

	s.gear, err = strconv.Atoi(get("gear"))
	if err != nil {
		return s, fmt.Errorf("column %q: %w", "gear", err)
	}
	mode, ok := vehicle.ParseDriveMode(get("drivemode"))
	if !ok {
		return s, fmt.Errorf("column %q: unknown mode %q", "drivemode", get("drivemode"))
	}
	s.mode = mode
	s.driven, err = parseAxles(get("drivenaxles"))
	if err != nil {
		return s, fmt.Errorf("column %q: %w", "drivenaxles", err)
	}
	return s, nil
}

func parseAxles(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, ";")
	axles := make([]int, len(parts))
	for i, p := range parts {
		a, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		axles[i] = a
	}
	return axles, nil
}

// Time is the current playback time in recording coordinates.
func (p *Player) Time() float64 { return p.clock }

// Duration is the recorded span.
func (p *Player) Duration() float64 {
	return p.samples[len(p.samples)-1].t - p.samples[0].t
}

// Done reports whether playback reached the final sample.
func (p *Player) Done() bool {
	return p.clock >= p.samples[len(p.samples)-1].t
}

// Advance moves playback by dt seconds, clamping at both ends.
func (p *Player) Advance(dt float64) {
	p.Seek(p.clock + dt)
}

// Seek jumps to absolute recording time t.
func (p *Player) Seek(t float64) {
	lo, hi := p.samples[0].t, p.samples[len(p.samples)-1].t
	if t < lo {
		t = lo
	} else if t > hi {
		t = hi
	}
	p.clock = t
	p.cur = p.at(t)
}

func (p *Player) at(t float64) sample {
	last := len(p.samples) - 1
	if t <= p.samples[0].t {
		return p.samples[0]
	}
	if t >= p.samples[last].t {
		return p.samples[last]
	}
	i := sort.Search(len(p.samples), func(i int) bool { return p.samples[i].t > t })
	s0, s1 := p.samples[i-1], p.samples[i]
	f := (t - s0.t) / (s1.t - s0.t)

	out := s0
	out.t = t
	out.pos = s0.pos.Lerp(s1.pos, f)
	out.rot = s0.rot.Nlerp(s1.rot, f)
	out.speed = lerp(s0.speed, s1.speed, f)
	out.motor = lerp(s0.motor, s1.motor, f)
	out.torque = lerp(s0.torque, s1.torque, f)
	out.slip = lerp(s0.slip, s1.slip, f)
	out.tcIn = lerp(s0.tcIn, s1.tcIn, f)
	out.tcOut = lerp(s0.tcOut, s1.tcOut, f)
	for a := 0; a < 2; a++ {
		for w := 0; w < 2; w++ {
			out.wheel[a][w] = lerp(s0.wheel[a][w], s1.wheel[a][w], f)
		}
	}
	return out
}

func lerp(a, b, f float64) float64 { return a + (b-a)*f }

// Chassis.

func (p *Player) Pos() geom.Vec3 { return p.cur.pos }
func (p *Player) Rot() geom.Quat { return p.cur.rot }
func (p *Player) DriverFrame() geom.Frame {
	return geom.Frame{Pos: p.Seat, Rot: geom.QuatIdentity()}
}
func (p *Player) Speed() float64 { return p.cur.speed }

// Powertrain.

func (p *Player) MotorSpeed() float64         { return p.cur.motor }
func (p *Player) MotorTorque() float64        { return p.cur.torque }
func (p *Player) ConverterSlip() float64      { return p.cur.slip }
func (p *Player) ConverterTorqueIn() float64  { return p.cur.tcIn }
func (p *Player) ConverterTorqueOut() float64 { return p.cur.tcOut }
func (p *Player) Gear() int                   { return p.cur.gear }
func (p *Player) DriveMode() vehicle.DriveMode {
	return p.cur.mode
}

// Driveline.

func (p *Player) DrivenAxles() []int { return p.cur.driven }

func (p *Player) WheelTorque(axle int, side vehicle.Side) float64 {
	if axle < 0 || axle > 1 || side < 0 || side > 1 {
		return 0
	}
	return p.cur.wheel[axle][side]
}
