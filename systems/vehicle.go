package systems

import (
	"math"

	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/diag"
	"github.com/automoto/chaseview/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVehicle advances the telemetry source by one tick: the demo rig
// under pedal control when driving live, the playback clock when
// replaying.
func UpdateVehicle(ecs *ecs.ECS) {
	entry, ok := components.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(entry)
	dt := 1.0 / float64(ebiten.TPS())

	if v.Player != nil {
		v.Player.Advance(dt)
		v.Clock = v.Player.Time()
		return
	}
	if v.Rig == nil {
		return
	}

	input := getOrCreateInput(ecs)
	applyPedals(v.Rig, input, dt)
	applyShift(v.Rig, input)

	v.Rig.Update(dt)
	v.Clock += dt

	if v.Rec != nil {
		if err := v.Rec.Sample(v.Clock, v.Chassis, v.Power, v.Drive); err != nil {
			diag.Logger.Warn().Err(err).Msg("recording stopped")
			v.Rec = nil
		}
	}
}

// applyPedals ramps throttle, brake and steering toward the held keys,
// so a tap nudges and a hold saturates.
func applyPedals(r *vehicle.Rig, in *components.InputData, dt float64) {
	r.SetThrottle(ramp(r.Throttle(), GetAction(in, cfg.ActionThrottle).Pressed, cfg.Vehicle.PedalRate*dt))
	r.SetBrake(ramp(r.Brake(), GetAction(in, cfg.ActionBrake).Pressed, cfg.Vehicle.PedalRate*dt))

	steer := 0.0
	if r.MaxSteer != 0 {
		steer = r.SteerAngle() / r.MaxSteer
	}
	left := GetAction(in, cfg.ActionSteerLeft).Pressed
	right := GetAction(in, cfg.ActionSteerRight).Pressed
	switch {
	case left && !right:
		steer = math.Min(1, steer+cfg.Vehicle.SteerRate*dt)
	case right && !left:
		steer = math.Max(-1, steer-cfg.Vehicle.SteerRate*dt)
	case steer > 0:
		steer = math.Max(0, steer-cfg.Vehicle.SteerReturn*dt)
	case steer < 0:
		steer = math.Min(0, steer+cfg.Vehicle.SteerReturn*dt)
	}
	r.SetSteer(steer)
}

func ramp(cur float64, held bool, step float64) float64 {
	if held {
		return math.Min(1, cur+step)
	}
	return math.Max(0, cur-step)
}

// applyShift latches the drive mode on shift key edges.
func applyShift(r *vehicle.Rig, in *components.InputData) {
	switch {
	case GetAction(in, cfg.ActionShiftForward).JustPressed:
		r.SetDriveMode(vehicle.Forward)
	case GetAction(in, cfg.ActionShiftNeutral).JustPressed:
		r.SetDriveMode(vehicle.Neutral)
	case GetAction(in, cfg.ActionShiftReverse).JustPressed:
		r.SetDriveMode(vehicle.Reverse)
	}
}
