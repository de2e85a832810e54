package sound_test

import (
	"math"
	"testing"

	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/sound"
)

type fakeDriver struct {
	paused  bool
	pitches []float64
	pauses  []bool
}

func (f *fakeDriver) SetPitch(p float64) { f.pitches = append(f.pitches, p) }
func (f *fakeDriver) Paused() bool       { return f.paused }

func (f *fakeDriver) SetPaused(paused bool) {
	f.paused = paused
	f.pauses = append(f.pauses, paused)
}

func TestEngineRetunesOncePerInterval(t *testing.T) {
	drv := &fakeDriver{paused: true}
	eng := sound.NewEngine(drv)

	motorSpeed := 3000.0 * 2 * math.Pi / 60 // 3000 RPM
	for i := 0; i < cfg.Audio.EngineUpdateFrames; i++ {
		eng.Step(motorSpeed)
	}
	if len(drv.pitches) != 0 {
		t.Fatalf("retuned after %d frames: %v", cfg.Audio.EngineUpdateFrames, drv.pitches)
	}
	if !drv.paused {
		t.Fatal("unpaused before the first interval elapsed")
	}

	eng.Step(motorSpeed)
	if len(drv.pitches) != 1 {
		t.Fatalf("got %d retunes, want 1", len(drv.pitches))
	}
	want := 3000.0 / cfg.Audio.EnginePitchScale
	if math.Abs(drv.pitches[0]-want) > 1e-12 {
		t.Fatalf("pitch = %v, want %v", drv.pitches[0], want)
	}
	if drv.paused {
		t.Fatal("still paused after the interval elapsed")
	}
}

func TestEnginePitchFloor(t *testing.T) {
	drv := &fakeDriver{paused: true}
	eng := sound.NewEngine(drv)

	for i := 0; i <= cfg.Audio.EngineUpdateFrames; i++ {
		eng.Step(0)
	}
	if len(drv.pitches) != 1 {
		t.Fatalf("got %d retunes, want 1", len(drv.pitches))
	}
	if drv.pitches[0] != cfg.Audio.EnginePitchFloor {
		t.Fatalf("pitch = %v, want floor %v", drv.pitches[0], cfg.Audio.EnginePitchFloor)
	}
}

func TestEnginePauseThenResume(t *testing.T) {
	drv := &fakeDriver{paused: true}
	eng := sound.NewEngine(drv)

	for i := 0; i <= cfg.Audio.EngineUpdateFrames; i++ {
		eng.Step(100)
	}
	if drv.paused {
		t.Fatal("expected loop to be playing")
	}

	eng.Pause()
	if !drv.paused {
		t.Fatal("Pause did not pause the driver")
	}

	for i := 0; i <= cfg.Audio.EngineUpdateFrames; i++ {
		eng.Step(100)
	}
	if drv.paused {
		t.Fatal("Step did not resume the paused loop")
	}
}

func TestEngineDoesNotUnpauseWhilePlaying(t *testing.T) {
	drv := &fakeDriver{paused: false}
	eng := sound.NewEngine(drv)

	for i := 0; i <= 2*(cfg.Audio.EngineUpdateFrames+1); i++ {
		eng.Step(200)
	}
	if len(drv.pauses) != 0 {
		t.Fatalf("SetPaused called %d times on a driver that was never paused", len(drv.pauses))
	}
}
