package systems

import (
	"github.com/automoto/chaseview/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSound drives the engine loop from the live motor speed, or
// parks it while muted. Replayed telemetry sounds the same as a live
// drive.
func UpdateSound(ecs *ecs.ECS) {
	entry, ok := components.Sound.First(ecs.World)
	if !ok {
		return
	}
	snd := components.Sound.Get(entry)
	if snd.Engine == nil {
		return
	}

	if !GetOrCreateSettings(ecs).Sound {
		snd.Engine.Pause()
		return
	}

	if vEntry, ok := components.Vehicle.First(ecs.World); ok {
		snd.Engine.Step(components.Vehicle.Get(vEntry).Power.MotorSpeed())
	}
}
