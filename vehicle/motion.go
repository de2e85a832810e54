package vehicle

// MotionModel integrates the signed longitudinal speed of the rig over
// one step. dir is +1 in Forward, 0 in Neutral, -1 in Reverse; throttle
// and brake are pedal positions in [0,1].
type MotionModel interface {
	Step(v float64, dir int, throttle, brake, dt float64) float64
}

// ConstantAccel is a constant-acceleration law with speed-proportional
// drag. Braking stops at zero rather than reversing through it, and a
// transition inside a step lands on the boundary, not past it.
type ConstantAccel struct {
	Accel      float64 // full-throttle acceleration, m/s^2
	Brake      float64 // full-brake deceleration, m/s^2
	Drag       float64 // rolling/aero resistance per unit speed, 1/s
	TopSpeed   float64 // forward limit, m/s
	TopReverse float64 // reverse limit (positive magnitude), m/s
}

func (m ConstantAccel) Step(v float64, dir int, throttle, brake, dt float64) float64 {
	drive := 0.0
	if dir > 0 {
		drive = throttle * m.Accel
	} else if dir < 0 {
		drive = -throttle * m.Accel
	}

	a := drive - m.Drag*v
	switch {
	case v > 0:
		a -= brake * m.Brake
	case v < 0:
		a += brake * m.Brake
	default:
		// At rest the brake holds the vehicle; only drive moves it.
		a = drive
	}

	next := v + a*dt

	// Brake-induced sign flips stop on the boundary.
	if drive == 0 || (v > 0 && drive < 0) || (v < 0 && drive > 0) {
		if v > 0 && next < 0 {
			next = 0
		} else if v < 0 && next > 0 {
			next = 0
		}
	}

	if next > m.TopSpeed {
		next = m.TopSpeed
	}
	if next < -m.TopReverse {
		next = -m.TopReverse
	}
	return next
}
