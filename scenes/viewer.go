// Package scenes assembles the ECS world the viewer runs in.
package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/control"
	"github.com/automoto/chaseview/record"
	"github.com/automoto/chaseview/systems"
	"github.com/automoto/chaseview/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene runs the whole viewer: one vehicle, one chase camera and
// the overlay stack on top.
type ViewerScene struct {
	ecs  *ecs.ECS
	once sync.Once

	player   *record.Player
	recorder *record.Recorder
	course   string
	settings components.SettingsData
}

// NewViewerScene drives the demo rig live. recorder may be nil; when
// set, the drive is captured to it.
func NewViewerScene(recorder *record.Recorder, coursePath string, settings components.SettingsData) *ViewerScene {
	return &ViewerScene{recorder: recorder, course: coursePath, settings: settings}
}

// NewReplayScene reviews a recording through the same camera stack.
func NewReplayScene(player *record.Player, coursePath string, settings components.SettingsData) *ViewerScene {
	return &ViewerScene{player: player, course: coursePath, settings: settings}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *ViewerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then the simulation, then the camera chases the
	// result; overlays run last.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateVehicle)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSound)
	ecs.AddSystem(systems.UpdateToast)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawStats)
	ecs.AddRenderer(cfg.Default, systems.DrawToast)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	vs.ecs = ecs

	factory.CreateInput(vs.ecs)
	factory.CreateSettings(vs.ecs, vs.settings)

	var vehicleEntry *donburi.Entry
	if vs.player != nil {
		vehicleEntry = factory.CreateReplayVehicle(vs.ecs, vs.player)
	} else {
		vehicleEntry = factory.CreateVehicle(vs.ecs, vs.recorder)
	}
	v := components.Vehicle.Get(vehicleEntry)

	// Replayed telemetry has no constraint state to dump.
	var dumper control.Diagnostics
	if v.Rig != nil {
		dumper = v.Rig
	}
	factory.CreateCamera(vs.ecs, v.Chassis, dumper)

	factory.CreateCourse(vs.ecs, vs.course)
	factory.CreateSound(vs.ecs)
	factory.CreateToast(vs.ecs)
}
