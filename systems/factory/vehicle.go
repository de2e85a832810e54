package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/record"
	"github.com/automoto/chaseview/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVehicle spawns the live demo rig, tuned from config. rec may be
// nil; when set, every sim step is appended to it.
func CreateVehicle(ecs *ecs.ECS, rec *record.Recorder) *donburi.Entry {
	e := archetypes.Vehicle.Spawn(ecs)

	rig := vehicle.NewRig()
	rig.Motion = vehicle.ConstantAccel{
		Accel:      cfg.Vehicle.Accel,
		Brake:      cfg.Vehicle.Brake,
		Drag:       cfg.Vehicle.Drag,
		TopSpeed:   cfg.Vehicle.TopSpeed,
		TopReverse: cfg.Vehicle.TopReverse,
	}
	rig.MaxSteer = cfg.Vehicle.MaxSteer
	rig.Driven = cfg.Vehicle.DrivenAxles

	components.Vehicle.Set(e, &components.VehicleData{
		Chassis:  rig,
		Power:    rig.Power,
		Drive:    rig,
		LinksSrc: rig,
		Rig:      rig,
		Rec:      rec,
	})
	return e
}

// CreateReplayVehicle spawns a vehicle whose telemetry comes from a
// recording instead of the rig.
func CreateReplayVehicle(ecs *ecs.ECS, p *record.Player) *donburi.Entry {
	e := archetypes.Vehicle.Spawn(ecs)
	components.Vehicle.Set(e, &components.VehicleData{
		Chassis: p,
		Power:   p,
		Drive:   p,
		Player:  p,
		Clock:   p.Time(),
	})
	return e
}
