package hud

import (
	"fmt"
	"math"

	"github.com/automoto/chaseview/vehicle"
)

// Gauge column geometry shared by every row.
const (
	gaugeW = 120
	gaugeH = 15
)

// Panel is the telemetry readout: camera mode on top, then speed,
// engine, torque converter, gear and per-wheel torque gauges in a
// fixed column.
type Panel struct {
	X, Y int
}

func NewPanel(x, y int) Panel { return Panel{X: x, Y: y} }

// Draw renders every row for the current telemetry. mode is the camera
// mode name shown in the header box.
func (p Panel) Draw(dst Surface, mode string, ch vehicle.Chassis, pw vehicle.Powertrain, dr vehicle.Driveline) {
	TextBox(dst, "Camera mode: "+mode, Rect{p.X, p.Y, gaugeW, gaugeH}, TextColor)

	row := func(msg string, factor float64, dy int) {
		LinGauge(dst, msg, factor, false, Rect{p.X, p.Y + dy, gaugeW, gaugeH})
	}

	speed := ch.Speed()
	row(fmt.Sprintf("Speed: %+.2f", speed), speed/30, 30)

	rpm := pw.MotorSpeed() * 60 / (2 * math.Pi)
	row(fmt.Sprintf("Eng. RPM: %+.2f", rpm), rpm/7000, 50)

	torque := pw.MotorTorque()
	row(fmt.Sprintf("Eng. Nm: %+.2f", torque), torque/600, 70)

	slip := pw.ConverterSlip()
	row(fmt.Sprintf("T.conv. slip: %+.2f", slip), slip/1, 90)

	tcIn := pw.ConverterTorqueIn()
	row(fmt.Sprintf("T.conv. in  Nm: %+.2f", tcIn), tcIn/600, 110)

	tcOut := pw.ConverterTorqueOut()
	row(fmt.Sprintf("T.conv. out Nm: %+.2f", tcOut), tcOut/600, 130)

	gear := pw.Gear()
	var gearMsg string
	switch pw.DriveMode() {
	case vehicle.Forward:
		gearMsg = fmt.Sprintf("Gear: forward, n.gear: %d", gear)
	case vehicle.Neutral:
		gearMsg = "Gear: neutral"
	case vehicle.Reverse:
		gearMsg = "Gear: reverse"
	default:
		gearMsg = "Gear:"
	}
	row(gearMsg, float64(gear)/4.0, 150)

	axles := dr.DrivenAxles()
	switch len(axles) {
	case 1:
		tq := dr.WheelTorque(axles[0], vehicle.Left)
		row(fmt.Sprintf("Torque wheel L: %+.2f", tq), tq/5000, 170)
		tq = dr.WheelTorque(axles[0], vehicle.Right)
		row(fmt.Sprintf("Torque wheel R: %+.2f", tq), tq/5000, 190)
	case 2:
		tq := dr.WheelTorque(axles[0], vehicle.Left)
		row(fmt.Sprintf("Torque wheel FL: %+.2f", tq), tq/5000, 210)
		tq = dr.WheelTorque(axles[0], vehicle.Right)
		row(fmt.Sprintf("Torque wheel FR: %+.2f", tq), tq/5000, 230)
		tq = dr.WheelTorque(axles[1], vehicle.Left)
		row(fmt.Sprintf("Torque wheel RL: %+.2f", tq), tq/5000, 250)
		tq = dr.WheelTorque(axles[1], vehicle.Right)
		row(fmt.Sprintf("Torque wheel RR: %+.2f", tq), tq/5000, 270)
	}
}
