package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/diag"
	"github.com/automoto/chaseview/sound"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSound spawns the engine loop. A failed audio device is not
// fatal; the Engine field stays nil and the viewer runs silent.
func CreateSound(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Sound.Spawn(ecs)

	data := &components.SoundData{}
	tone, err := sound.NewTone(cfg.Audio.EngineBaseFreq, cfg.Audio.EngineVolume)
	if err != nil {
		diag.Logger.Warn().Err(err).Msg("engine sound unavailable")
	} else {
		data.Engine = sound.NewEngine(tone)
	}

	components.Sound.Set(e, data)
	return e
}
