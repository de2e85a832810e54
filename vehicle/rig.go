package vehicle

import (
	"math"

	"github.com/automoto/chaseview/diag"
	"github.com/automoto/chaseview/geom"
)

// Rig is the built-in demo vehicle: a kinematic bicycle chassis with a
// synthesized powertrain and a small suspension link set. It implements
// every telemetry contract the viewer consumes, so the viewer runs
// standalone.
type Rig struct {
	Motion MotionModel
	Power  *SynthPowertrain

	Wheelbase   float64
	Track       float64
	WheelRadius float64
	WheelWidth  float64
	RideHeight  float64
	MaxSteer    float64   // road wheel angle at full lock, rad
	DriverSeat  geom.Vec3 // chassis-local eye point
	Driven      []int     // driven axle indices, front = 0

	PitchGain float64 // body pitch per m/s^2 of longitudinal accel, rad
	RollGain  float64 // body roll per m/s^2 of lateral accel, rad
	PoseLag   float64 // pitch/roll time constant, s

	pos   geom.Vec3
	yaw   float64
	pitch float64
	roll  float64
	speed float64
	spin  float64 // wheel rotation about the axle, rad

	throttle float64
	brake    float64
	steer    float64 // current road wheel angle, rad

	springFL, springFR *SpringLink
	springRL, springRR *MapSpringLink
	tieL, tieR         *RevSphereLink
	dropF, dropR       *DistanceLink
	mount              *BushingLink
	links              []Link

	hubs [2][2]geom.Vec3 // world hub centers by [axle][side]
}

// NewRig assembles the demo vehicle at the origin, facing +X, in
// neutral.
func NewRig() *Rig {
	r := &Rig{
		Motion: ConstantAccel{
			Accel:      4.5,
			Brake:      8.0,
			Drag:       0.05,
			TopSpeed:   35,
			TopReverse: 8,
		},
		Power:       NewSynthPowertrain(),
		Wheelbase:   2.6,
		Track:       1.6,
		WheelRadius: 0.3,
		WheelWidth:  0.22,
		RideHeight:  0.5,
		MaxSteer:    0.5,
		DriverSeat:  geom.Vec3{X: 0.5, Y: 0.35, Z: 0.55},
		Driven:      []int{1},
		PitchGain:   0.004,
		RollGain:    0.006,
		PoseLag:     0.25,
	}
	r.pos = geom.Vec3{Z: r.RideHeight}

	r.springFL = &SpringLink{Label: "spring FL", Stiffness: 35000, Damping: 2600}
	r.springFR = &SpringLink{Label: "spring FR", Stiffness: 35000, Damping: 2600}
	curve := [][2]float64{{-0.10, -3000}, {0, 0}, {0.05, 2200}, {0.10, 5400}}
	r.springRL = &MapSpringLink{Label: "spring RL", Curve: curve}
	r.springRR = &MapSpringLink{Label: "spring RR", Curve: curve}
	r.tieL = &RevSphereLink{Label: "tierod L"}
	r.tieR = &RevSphereLink{Label: "tierod R"}
	r.dropF = &DistanceLink{Label: "ARB link F"}
	r.dropR = &DistanceLink{Label: "ARB link R"}
	r.mount = &BushingLink{Label: "subframe bushing"}

	r.links = []Link{
		r.springFL, r.springFR, r.springRL, r.springRR,
		r.tieL, r.tieR, r.dropF, r.dropR, r.mount,
	}

	// Calibrate rest lengths from the as-built geometry so every
	// violation reads zero at rest.
	r.refreshLinks()
	r.springFL.RestLen = r.springFL.End2.Sub(r.springFL.End1).Length()
	r.springFR.RestLen = r.springFR.End2.Sub(r.springFR.End1).Length()
	r.springRL.RestLen = r.springRL.End2.Sub(r.springRL.End1).Length()
	r.springRR.RestLen = r.springRR.End2.Sub(r.springRR.End1).Length()
	r.tieL.ArmLen = r.tieL.P2.Sub(r.tieL.P1).Length()
	r.tieR.ArmLen = r.tieR.P2.Sub(r.tieR.P1).Length()
	r.dropF.Target = r.dropF.End2.Sub(r.dropF.End1).Length()
	r.dropR.Target = r.dropR.End2.Sub(r.dropR.End1).Length()
	return r
}

// Control setters. Pedals clamp to [0,1], steer to [-1,1] of full lock.

func (r *Rig) SetThrottle(v float64) { r.throttle = clamp(v, 0, 1) }
func (r *Rig) SetBrake(v float64)    { r.brake = clamp(v, 0, 1) }
func (r *Rig) SetSteer(v float64)    { r.steer = clamp(v, -1, 1) * r.MaxSteer }

func (r *Rig) Throttle() float64   { return r.throttle }
func (r *Rig) Brake() float64      { return r.brake }
func (r *Rig) SteerAngle() float64 { return r.steer }

func (r *Rig) SetDriveMode(m DriveMode) { r.Power.SetDriveMode(m) }

// Update advances the rig by dt seconds.
func (r *Rig) Update(dt float64) {
	if dt <= 0 {
		return
	}

	dir := 0
	switch r.Power.DriveMode() {
	case Forward:
		dir = 1
	case Reverse:
		dir = -1
	}
	v := r.Motion.Step(r.speed, dir, r.throttle, r.brake, dt)
	accel := (v - r.speed) / dt
	r.speed = v

	yawRate := 0.0
	if r.steer != 0 {
		yawRate = v / r.Wheelbase * math.Tan(r.steer)
	}
	r.yaw = wrapAngle(r.yaw + yawRate*dt)
	r.pos.X += v * math.Cos(r.yaw) * dt
	r.pos.Y += v * math.Sin(r.yaw) * dt
	r.pos.Z = r.RideHeight
	r.spin -= v / r.WheelRadius * dt

	lat := v * yawRate
	k := 1.0
	if r.PoseLag > 0 {
		k = math.Min(1, dt/r.PoseLag)
	}
	r.pitch += k * (-r.PitchGain*accel - r.pitch)
	r.roll += k * (-r.RollGain*lat - r.roll)

	r.Power.Step(v/r.WheelRadius, r.throttle, dt)
	r.mount.Residual = math.Abs(r.Power.axleTorque()) * 2e-6
	r.refreshLinks()
}

// Chassis.

func (r *Rig) Pos() geom.Vec3 { return r.pos }

func (r *Rig) Rot() geom.Quat {
	q := geom.RotZ(r.yaw)
	q = q.Mul(geom.QuatFromAxisAngle(geom.Vec3{Y: 1}, r.pitch))
	q = q.Mul(geom.QuatFromAxisAngle(geom.Vec3{X: 1}, r.roll))
	return q.Normalize()
}

func (r *Rig) DriverFrame() geom.Frame {
	return geom.Frame{Pos: r.DriverSeat, Rot: geom.QuatIdentity()}
}

func (r *Rig) Speed() float64 { return r.speed }

// Driveline.

func (r *Rig) DrivenAxles() []int { return r.Driven }

func (r *Rig) WheelTorque(axle int, _ Side) float64 {
	for _, a := range r.Driven {
		if a == axle {
			return r.Power.axleTorque() / float64(2*len(r.Driven))
		}
	}
	return 0
}

// LinkSource.

func (r *Rig) Links() []Link {
	out := make([]Link, len(r.links))
	copy(out, r.links)
	return out
}

// LogConstraintViolations dumps the current residual of every link.
func (r *Rig) LogConstraintViolations() {
	for _, l := range r.links {
		diag.Logger.Info().
			Str("link", l.Name()).
			Float64("violation", l.Violation()).
			Msg("constraint")
	}
}

// WheelPoser.

func (r *Rig) NumAxles() int { return 2 }

func (r *Rig) WheelSize(int) (float64, float64) { return r.WheelRadius, r.WheelWidth }

// WheelFrame reports the world pose of one wheel for drawing. Axle 0
// steers with the rack.
func (r *Rig) WheelFrame(axle int, side Side) geom.Frame {
	heading := r.yaw
	if axle == 0 {
		heading += r.steer
	}
	rot := geom.RotZ(heading).Mul(geom.QuatFromAxisAngle(geom.Vec3{Y: 1}, r.spin))
	return geom.Frame{Pos: r.hubs[axle][side], Rot: rot}
}

// refreshLinks recomputes every endpoint from the current pose. Bodies
// ride on the sprung frame; hubs stay at wheel height over the ground,
// so pitch and roll stretch the springs.
func (r *Rig) refreshLinks() {
	body := geom.Frame{Pos: r.pos, Rot: r.Rot()}
	ground := geom.Frame{
		Pos: geom.Vec3{X: r.pos.X, Y: r.pos.Y},
		Rot: geom.RotZ(r.yaw),
	}

	halfWB := r.Wheelbase / 2
	halfTR := r.Track / 2
	hubZ := r.WheelRadius

	hub := func(x, y float64) geom.Vec3 {
		return ground.TransformPoint(geom.Vec3{X: x, Y: y, Z: hubZ})
	}
	r.hubs[0][Left] = hub(halfWB, halfTR)
	r.hubs[0][Right] = hub(halfWB, -halfTR)
	r.hubs[1][Left] = hub(-halfWB, halfTR)
	r.hubs[1][Right] = hub(-halfWB, -halfTR)

	tower := func(x, y float64) geom.Vec3 {
		return body.TransformPoint(geom.Vec3{X: x, Y: y, Z: 0.15})
	}
	r.springFL.End1, r.springFL.End2 = tower(halfWB, halfTR), r.hubs[0][Left]
	r.springFR.End1, r.springFR.End2 = tower(halfWB, -halfTR), r.hubs[0][Right]
	r.springRL.End1, r.springRL.End2 = tower(-halfWB, halfTR), r.hubs[1][Left]
	r.springRR.End1, r.springRR.End2 = tower(-halfWB, -halfTR), r.hubs[1][Right]

	// Steering: rack ends on the body, knuckle arms swing with the
	// road wheels.
	rackX := halfWB - 0.15
	r.tieL.P1 = body.TransformPoint(geom.Vec3{X: rackX, Y: 0.3, Z: -0.1})
	r.tieR.P1 = body.TransformPoint(geom.Vec3{X: rackX, Y: -0.3, Z: -0.1})
	arm := func(side float64) geom.Vec3 {
		return body.TransformPoint(geom.Vec3{
			X: halfWB - 0.15*math.Cos(r.steer),
			Y: side*halfTR - 0.15*math.Sin(r.steer),
			Z: -0.1,
		})
	}
	r.tieL.P2 = arm(1)
	r.tieR.P2 = arm(-1)

	// Anti-roll drop links: bar end on the body, lower eye on the hub
	// carrier.
	r.dropF.End1 = body.TransformPoint(geom.Vec3{X: halfWB - 0.1, Y: halfTR - 0.15, Z: 0})
	r.dropF.End2 = r.hubs[0][Left].Add(geom.Vec3{X: -0.1})
	r.dropR.End1 = body.TransformPoint(geom.Vec3{X: -halfWB + 0.1, Y: halfTR - 0.15, Z: 0})
	r.dropR.End2 = r.hubs[1][Left].Add(geom.Vec3{X: 0.1})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
