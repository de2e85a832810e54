package systems

import (
	"image/color"

	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	toastHold = 1.2 // seconds at full opacity
	toastFade = 0.8 // seconds fading out
)

// ShowToast replaces the notice and restarts its fade cycle.
func ShowToast(ecs *ecs.ECS, msg string) {
	entry, ok := components.Toast.First(ecs.World)
	if !ok {
		return
	}
	t := components.Toast.Get(entry)
	t.Message = msg

	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 1, toastHold, ease.Linear),
		gween.New(1, 0, toastFade, ease.Linear),
	)
	t.Alpha = seq
	t.Level = 1
	t.Active = true
}

// UpdateToast advances the fade.
func UpdateToast(ecs *ecs.ECS) {
	entry, ok := components.Toast.First(ecs.World)
	if !ok {
		return
	}
	t := components.Toast.Get(entry)
	if !t.Active || t.Alpha == nil {
		return
	}

	level, _, done := t.Alpha.Update(1.0 / float32(ebiten.TPS()))
	t.Level = level
	if done {
		t.Active = false
	}
}

// DrawToast renders the notice centered above the bottom edge.
func DrawToast(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Toast.First(ecs.World)
	if !ok {
		return
	}
	t := components.Toast.Get(entry)
	if !t.Active || t.Message == "" {
		return
	}

	face := fonts.Toast.Get()
	bounds := text.BoundString(face, t.Message)
	x := (cfg.C.Width - bounds.Dx()) / 2
	y := cfg.C.Height - 60

	a := t.Level
	clr := color.RGBA{
		R: uint8(240 * a),
		G: uint8(240 * a),
		B: uint8(240 * a),
		A: uint8(255 * a),
	}
	text.Draw(screen, t.Message, face, x, y, clr)
}
