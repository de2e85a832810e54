// Package sound produces the looping engine tone.
package sound

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	cfg "github.com/automoto/chaseview/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalContext *audio.Context
	initOnce      sync.Once
)

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	initOnce.Do(func() {
		globalContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalContext
}
