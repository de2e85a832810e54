package vehicle

import "math"

// SynthPowertrain synthesizes engine and torque-converter telemetry
// from wheel speed: a first-order engine coupled to the driveline
// through a slipping converter and a fixed-ratio gearbox with simple
// speed-threshold shifting. It exists to feed the gauges, not to model
// combustion.
type SynthPowertrain struct {
	Idle       float64 // idle engine speed, rad/s
	Redline    float64 // maximum engine speed, rad/s
	PeakTorque float64 // peak engine torque, N·m
	StallSpeed float64 // impeller lead over the turbine at full throttle, rad/s
	StallRatio float64 // converter torque multiplication at full slip
	Lag        float64 // engine speed time constant, s

	Ratios       []float64 // forward gear ratios
	ReverseRatio float64
	FinalDrive   float64

	Upshift   float64 // engine speed above which to shift up, rad/s
	Downshift float64 // engine speed below which to shift down, rad/s
	ShiftHold float64 // minimum time between shifts, s

	mode       DriveMode
	gear       int // index into Ratios
	sinceShift float64

	motorSpeed float64
	throttle   float64
	shaftSpeed float64
}

// NewSynthPowertrain returns a four-speed automatic sized so its gauges
// sit comfortably inside the stats panel scales.
func NewSynthPowertrain() *SynthPowertrain {
	return &SynthPowertrain{
		Idle:         84,  // ~800 rpm
		Redline:      628, // ~6000 rpm
		PeakTorque:   400,
		StallSpeed:   160,
		StallRatio:   1.9,
		Lag:          0.3,
		Ratios:       []float64{3.5, 2.2, 1.5, 1.0},
		ReverseRatio: 3.2,
		FinalDrive:   3.7,
		Upshift:      500,
		Downshift:    150,
		ShiftHold:    1.0,
		mode:         Neutral,
		motorSpeed:   84,
	}
}

// SetDriveMode selects the transmission direction. Changing direction
// drops back to first gear.
func (p *SynthPowertrain) SetDriveMode(m DriveMode) {
	if m == p.mode {
		return
	}
	p.mode = m
	p.gear = 0
	p.sinceShift = 0
}

// Step advances the model by dt. wheelSpeed is the signed spindle speed
// of the driven axle in rad/s; throttle is the pedal position in [0,1].
func (p *SynthPowertrain) Step(wheelSpeed, throttle, dt float64) {
	p.throttle = throttle
	p.shaftSpeed = math.Abs(wheelSpeed) * p.FinalDrive * p.ratio()

	goal := p.shaftSpeed
	if goal < p.Idle {
		goal = p.Idle
	}
	goal += throttle * p.StallSpeed
	if goal > p.Redline {
		goal = p.Redline
	}

	k := 1.0
	if p.Lag > 0 {
		k = math.Min(1, dt/p.Lag)
	}
	p.motorSpeed += k * (goal - p.motorSpeed)

	p.sinceShift += dt
	if p.mode == Forward && p.sinceShift >= p.ShiftHold {
		if p.motorSpeed > p.Upshift && p.gear < len(p.Ratios)-1 {
			p.gear++
			p.sinceShift = 0
		} else if p.motorSpeed < p.Downshift && p.gear > 0 {
			p.gear--
			p.sinceShift = 0
		}
	}
}

func (p *SynthPowertrain) ratio() float64 {
	switch p.mode {
	case Forward:
		return p.Ratios[p.gear]
	case Reverse:
		return p.ReverseRatio
	}
	return 0
}

// engineTorque follows a broad bell over the working range, scaled by
// throttle elsewhere.
func (p *SynthPowertrain) engineTorque(w float64) float64 {
	span := p.Redline - p.Idle
	if span <= 0 {
		return p.PeakTorque
	}
	x := (w - p.Idle) / span
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	bell := 1 - (2*x-1)*(2*x-1)
	return p.PeakTorque * (0.5 + 0.5*bell)
}

func (p *SynthPowertrain) MotorSpeed() float64 { return p.motorSpeed }

func (p *SynthPowertrain) MotorTorque() float64 {
	return p.throttle * p.engineTorque(p.motorSpeed)
}

// ConverterSlip is (impeller - turbine) / impeller: 1 at stall, toward
// 0 at lockup.
func (p *SynthPowertrain) ConverterSlip() float64 {
	if p.motorSpeed < 1e-6 {
		return 0
	}
	s := (p.motorSpeed - p.shaftSpeed) / p.motorSpeed
	if s < 0 {
		s = 0
	}
	return s
}

func (p *SynthPowertrain) ConverterTorqueIn() float64 { return p.MotorTorque() }

func (p *SynthPowertrain) ConverterTorqueOut() float64 {
	return p.ConverterTorqueIn() * (1 + (p.StallRatio-1)*p.ConverterSlip())
}

// Gear numbers forward gears from 1; neutral reports 0 and reverse -1.
func (p *SynthPowertrain) Gear() int {
	switch p.mode {
	case Forward:
		return p.gear + 1
	case Reverse:
		return -1
	}
	return 0
}

func (p *SynthPowertrain) DriveMode() DriveMode { return p.mode }

// axleTorque is the torque delivered past the gearbox and final drive.
func (p *SynthPowertrain) axleTorque() float64 {
	return p.ConverterTorqueOut() * p.ratio() * p.FinalDrive
}
