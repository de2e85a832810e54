// Package hud draws the gauge widgets of the stats overlay. Widgets
// target the small Surface interface instead of a concrete backend, so
// layout and bar math stay testable without a window.
package hud

import (
	"image/color"
	"math"
)

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect clips r to o.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Surface is the raster backend the widgets draw on. Implementations
// clip both calls to clip and ignore rectangles that end up empty or
// inverted.
type Surface interface {
	FillRect(r, clip Rect, c color.RGBA)
	DrawText(s string, x, y int, clip Rect, c color.RGBA)
}

var (
	boxColor = color.RGBA{R: 60, G: 60, B: 60, A: 90}
	barColor = color.RGBA{R: 250, G: 200, B: 0, A: 255}

	// TextColor is the default gauge caption color.
	TextColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// LinGauge draws one labelled bar. factor is the fill fraction and is
// not clamped; out-of-range values pin against the clip bounds.
// Symmetric gauges grow from the center, negative to the left.
func LinGauge(dst Surface, msg string, factor float64, sym bool, r Rect) {
	clip := r
	dst.FillRect(r, clip, boxColor)

	var left, right int
	if sym {
		half := r.W / 2
		left = int(float64(half-2)*math.Min(factor, 0) + float64(half))
		right = int(float64(half-2)*math.Max(factor, 0) + float64(half))
	} else {
		left = 2
		right = int(float64(r.W-4)*factor + 2)
	}
	dst.FillRect(Rect{r.X + left, r.Y + 2, right - left, r.H - 4}, clip, barColor)

	dst.DrawText(msg, r.X+3, r.Y+3, clip, TextColor)
}

// TextBox draws msg on the standard translucent box.
func TextBox(dst Surface, msg string, r Rect, c color.RGBA) {
	dst.FillRect(r, r, boxColor)
	dst.DrawText(msg, r.X+3, r.Y+3, r, c)
}
