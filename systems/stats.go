package systems

import (
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/hud"
	"github.com/automoto/chaseview/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawStats renders the telemetry panel when enabled.
func DrawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowStats {
		return
	}
	vEntry, ok := components.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vEntry)
	cam := components.Camera.Get(camEntry)

	panel := hud.NewPanel(cfg.HUD.X, cfg.HUD.Y)
	panel.Draw(scene.NewSurface(screen), cam.Cam.Mode().String(), v.Chassis, v.Power, v.Drive)
}
