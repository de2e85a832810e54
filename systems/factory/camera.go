package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/chasecam"
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/control"
	"github.com/automoto/chaseview/scene"
	"github.com/automoto/chaseview/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the chase camera anchored on chassis. diag may be
// nil when the telemetry source has no constraint state to dump.
func CreateCamera(ecs *ecs.ECS, chassis vehicle.Chassis, diag control.Diagnostics) *donburi.Entry {
	e := archetypes.Camera.Spawn(ecs)

	cam, err := chasecam.New(chassis, chasecam.Params{
		MaxStep:   cfg.Camera.MaxStep,
		HorizGain: cfg.Camera.HorizGain,
		VertGain:  cfg.Camera.VertGain,
		ZoomRate:  cfg.Camera.ZoomRate,
		TurnRate:  cfg.Camera.TurnRate,
		MinMult:   cfg.Camera.MinMult,
		MaxMult:   cfg.Camera.MaxMult,
	})
	if err != nil {
		panic(err)
	}
	if err := cam.Initialize(cfg.Camera.Anchor, chassis.DriverFrame(), cfg.Camera.ChaseDist, cfg.Camera.ChaseHeight); err != nil {
		panic(err)
	}

	router := control.NewRouter(cam, diag, control.Bindings{
		ZoomOut:    cfg.CameraKeys.ZoomOut,
		ZoomIn:     cfg.CameraKeys.ZoomIn,
		TurnLeft:   cfg.CameraKeys.TurnLeft,
		TurnRight:  cfg.CameraKeys.TurnRight,
		ModeChase:  cfg.CameraKeys.ModeChase,
		ModeFollow: cfg.CameraKeys.ModeFollow,
		ModeTrack:  cfg.CameraKeys.ModeTrack,
		ModeInside: cfg.CameraKeys.ModeInside,
		Dump:       cfg.CameraKeys.Dump,
	})

	view := scene.NewView(cfg.C.Width, cfg.C.Height)
	view.SetCamera(cam.Pos(), cam.Target())

	components.Camera.Set(e, &components.CameraData{
		Cam:    cam,
		Router: router,
		View:   view,
	})
	return e
}
