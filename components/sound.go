package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/chaseview/sound"
)

// SoundData owns the engine loop (singleton component)
type SoundData struct {
	Engine *sound.Engine
}

var Sound = donburi.NewComponentType[SoundData]()
