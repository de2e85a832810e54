package systems

import (
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Camera keys bypass the action table; the router consumes raw key
// edges instead. Held direction keys re-fire every frame so zoom and
// orbit glide while the key is down.
var (
	cameraHoldKeys = []ebiten.Key{
		cfg.CameraKeys.ZoomOut,
		cfg.CameraKeys.ZoomIn,
		cfg.CameraKeys.TurnLeft,
		cfg.CameraKeys.TurnRight,
	}
	cameraEdgeKeys = []ebiten.Key{
		cfg.CameraKeys.ModeChase,
		cfg.CameraKeys.ModeFollow,
		cfg.CameraKeys.ModeTrack,
		cfg.CameraKeys.ModeInside,
		cfg.CameraKeys.Dump,
	}
)

// UpdateInput polls raw input and updates the input component.
// Must run BEFORE UpdateVehicle and UpdateCamera in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Events = input.Events[:0]
	for _, key := range cameraHoldKeys {
		if ebiten.IsKeyPressed(key) {
			input.Events = append(input.Events, components.KeyEvent{Key: key, Down: true})
		}
	}
	for _, key := range cameraEdgeKeys {
		if inpututil.IsKeyJustReleased(key) {
			input.Events = append(input.Events, components.KeyEvent{Key: key, Down: false})
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
