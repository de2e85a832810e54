// Package vehicle defines the read-only telemetry contracts the viewer
// consumes, the mechanical-link model, and a self-contained demo rig
// that implements all of them so the viewer runs without an external
// simulation attached.
package vehicle

import "github.com/automoto/chaseview/geom"

// DriveMode is the transmission direction.
type DriveMode int

const (
	Forward DriveMode = iota
	Neutral
	Reverse
)

func (m DriveMode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Neutral:
		return "neutral"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// ParseDriveMode maps a String() name back to its mode.
func ParseDriveMode(s string) (DriveMode, bool) {
	switch s {
	case "forward":
		return Forward, true
	case "neutral":
		return Neutral, true
	case "reverse":
		return Reverse, true
	}
	return Neutral, false
}

// Side selects a wheel on an axle.
type Side int

const (
	Left Side = iota
	Right
)

// Chassis reports the world pose and speed of the vehicle body.
type Chassis interface {
	Pos() geom.Vec3
	Rot() geom.Quat
	// DriverFrame is the seated viewpoint in the chassis frame.
	DriverFrame() geom.Frame
	// Speed is the signed longitudinal speed in m/s.
	Speed() float64
}

// WheelPoser is an optional capability of a Chassis source: when the
// simulation knows where the wheels are, the renderer draws them.
type WheelPoser interface {
	NumAxles() int
	// WheelFrame is the wheel pose in world space. Local Y is the
	// spin axis.
	WheelFrame(axle int, side Side) geom.Frame
	// WheelSize reports tire radius and width for drawing.
	WheelSize(axle int) (radius, width float64)
}

// Powertrain reports engine and torque-converter scalars.
type Powertrain interface {
	// MotorSpeed is the engine angular speed in rad/s.
	MotorSpeed() float64
	// MotorTorque is the engine output torque in N·m.
	MotorTorque() float64
	ConverterSlip() float64
	ConverterTorqueIn() float64
	ConverterTorqueOut() float64
	Gear() int
	DriveMode() DriveMode
}

// Driveline reports which axles receive torque and how much reaches
// each wheel. DrivenAxles may legitimately be empty.
type Driveline interface {
	DrivenAxles() []int
	WheelTorque(axle int, side Side) float64
}

// LinkSource exposes the current mechanical link set. The slice is
// rebuilt by the simulation and must be re-read every frame.
type LinkSource interface {
	Links() []Link
}
