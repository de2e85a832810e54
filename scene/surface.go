package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/chaseview/fonts"
	"github.com/automoto/chaseview/hud"
)

// Surface adapts an ebiten image to the HUD drawing interface.
type Surface struct {
	screen *ebiten.Image
}

func NewSurface(screen *ebiten.Image) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) FillRect(r, clip hud.Rect, c color.RGBA) {
	r = r.Intersect(clip)
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText renders msg with its top-left corner at (x, y), clipped to
// the given rectangle.
func (s *Surface) DrawText(msg string, x, y int, clip hud.Rect, c color.RGBA) {
	if clip.Empty() {
		return
	}
	face := fonts.Hud.Get()
	dst := s.screen.SubImage(image.Rect(clip.X, clip.Y, clip.X+clip.W, clip.Y+clip.H)).(*ebiten.Image)
	text.Draw(dst, msg, face, x, y+face.Metrics().Ascent.Ceil(), c)
}
