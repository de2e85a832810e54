// Package render draws the mechanical link overlay: springs as coils,
// rigid links as bars. It walks the live link set every frame and
// dispatches purely on each link's glyph, so link types it has never
// heard of simply stay invisible.
package render

import (
	"image/color"

	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/vehicle"
)

// Canvas is the 3D line backend the overlay draws through.
type Canvas interface {
	DrawSpring(radius float64, p1, p2 geom.Vec3, c color.RGBA, segments, coils int)
	DrawSegment(p1, p2 geom.Vec3, c color.RGBA)
}

const (
	springRadius   = 0.05
	springSegments = 80
	springCoils    = 15
)

var (
	springColor    = color.RGBA{R: 150, G: 20, B: 20, A: 255}
	distanceColor  = color.RGBA{R: 0, G: 20, B: 0, A: 255}
	revSphereColor = color.RGBA{R: 180, G: 0, B: 0, A: 255}
)

// Springs draws every spring-like link as a coil between its live
// endpoints.
func Springs(dst Canvas, links []vehicle.Link) {
	for _, l := range links {
		g, ok := l.(vehicle.Glypher)
		if !ok {
			continue
		}
		if gl := g.Glyph(); gl.Kind == vehicle.GlyphSpring {
			dst.DrawSpring(springRadius, gl.P1, gl.P2, springColor, springSegments, springCoils)
		}
	}
}

// Joints draws distance and revolute-spherical links as straight bars.
func Joints(dst Canvas, links []vehicle.Link) {
	for _, l := range links {
		g, ok := l.(vehicle.Glypher)
		if !ok {
			continue
		}
		switch gl := g.Glyph(); gl.Kind {
		case vehicle.GlyphDistance:
			dst.DrawSegment(gl.P1, gl.P2, distanceColor)
		case vehicle.GlyphRevSphere:
			dst.DrawSegment(gl.P1, gl.P2, revSphereColor)
		}
	}
}
