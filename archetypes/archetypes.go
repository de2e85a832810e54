package archetypes

import (
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Course = newArchetype(
		tags.Course,
		components.Course,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Sound = newArchetype(
		components.Sound,
	)
	Toast = newArchetype(
		components.Toast,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
