package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/chaseview/config"
)

// DrawSky fills the backdrop: a vertical gradient down to the horizon
// row and flat ground below it.
func DrawSky(screen *ebiten.Image, horizon int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if horizon < 0 {
		horizon = 0
	}
	if horizon > h {
		horizon = h
	}

	const band = 4
	for y := 0; y < horizon; y += band {
		t := float64(y) / float64(horizon)
		c := lerpColor(cfg.Scene.SkyTop, cfg.Scene.SkyHorizon, t)
		bh := band
		if y+bh > horizon {
			bh = horizon - y
		}
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), float32(bh), c, false)
	}
	if horizon < h {
		vector.DrawFilledRect(screen, 0, float32(horizon), float32(w), float32(h-horizon), cfg.Scene.Ground, false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: 255}
}
