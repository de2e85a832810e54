package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Input.Spawn(ecs)
	components.Input.Set(e, &components.InputData{})
	return e
}
