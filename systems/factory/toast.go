package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateToast(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Toast.Spawn(ecs)
	components.Toast.Set(e, &components.ToastData{})
	return e
}
