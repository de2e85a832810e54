package systems

import (
	"github.com/automoto/chaseview/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera feeds the queued key edges to the router, integrates the
// chase camera over the frame and re-aims the view. A mode switch
// raises a toast.
func UpdateCamera(ecs *ecs.ECS) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	input := getOrCreateInput(ecs)

	before := cam.Cam.Mode()
	for _, ev := range input.Events {
		if ev.Down {
			cam.Router.KeyDown(ev.Key)
		} else {
			cam.Router.KeyUp(ev.Key)
		}
	}
	input.Events = input.Events[:0]

	cam.Cam.Advance(1.0 / float64(ebiten.TPS()))
	cam.View.SetCamera(cam.Cam.Pos(), cam.Cam.Target())

	if after := cam.Cam.Mode(); after != before {
		ShowToast(ecs, "Camera: "+after.String())
	}
}
