package sound

import (
	"math"

	cfg "github.com/automoto/chaseview/config"
)

// Driver controls a pitched loop. The real driver is *Tone; tests
// substitute their own.
type Driver interface {
	SetPitch(pitch float64)
	SetPaused(paused bool)
	Paused() bool
}

// Engine retunes a looping tone to follow motor speed. Updates are
// batched every few frames so the stream is not retuned 60 times a
// second.
type Engine struct {
	drv    Driver
	frames int
}

func NewEngine(drv Driver) *Engine {
	return &Engine{drv: drv}
}

// Step advances the frame counter and, once it passes
// cfg.Audio.EngineUpdateFrames, unpauses the loop and retunes it to the
// current motor speed (rad/s).
func (e *Engine) Step(motorSpeed float64) {
	e.frames++

	rpm := motorSpeed * 60 / (2 * math.Pi)
	pitch := rpm / cfg.Audio.EnginePitchScale
	if pitch < cfg.Audio.EnginePitchFloor {
		pitch = cfg.Audio.EnginePitchFloor
	}

	if e.frames > cfg.Audio.EngineUpdateFrames {
		e.frames = 0
		if e.drv.Paused() {
			e.drv.SetPaused(false)
		}
		e.drv.SetPitch(pitch)
	}
}

// Pause silences the loop immediately. A later Step unpauses it on the
// next scheduled retune.
func (e *Engine) Pause() {
	e.drv.SetPaused(true)
}
