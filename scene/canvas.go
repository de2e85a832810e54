package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/chaseview/geom"
)

// Canvas draws projected wireframe geometry on an ebiten image.
// Segments with an endpoint outside the frustum depth range are
// dropped whole rather than clipped.
type Canvas struct {
	screen *ebiten.Image
	view   *View
}

func NewCanvas(screen *ebiten.Image, view *View) *Canvas {
	return &Canvas{screen: screen, view: view}
}

func (c *Canvas) segment(p1, p2 geom.Vec3, clr color.RGBA, width float32) {
	x1, y1, ok1 := c.view.Project(p1)
	x2, y2, ok2 := c.view.Project(p2)
	if !ok1 || !ok2 {
		return
	}
	vector.StrokeLine(c.screen, x1, y1, x2, y2, width, clr, true)
}

// DrawSegment draws a straight bar between two world points.
func (c *Canvas) DrawSegment(p1, p2 geom.Vec3, clr color.RGBA) {
	c.segment(p1, p2, clr, 2)
}

// DrawSpring draws a coil along the axis from p1 to p2, with a short
// lead-in from each anchor to the coil body.
func (c *Canvas) DrawSpring(radius float64, p1, p2 geom.Vec3, clr color.RGBA, segments, coils int) {
	axis := p2.Sub(p1)
	length := axis.Length()
	if length < 1e-9 || segments < 2 {
		c.DrawSegment(p1, p2, clr)
		return
	}
	dir := axis.Scale(1 / length)

	ref := geom.Vec3{Z: 1}
	if math.Abs(dir.Z) > 0.99 {
		ref = geom.Vec3{X: 1}
	}
	u := dir.Cross(ref).Normalize()
	w := dir.Cross(u)

	prev := p1
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		phase := t * float64(coils) * 2 * math.Pi
		p := p1.Add(dir.Scale(t * length)).
			Add(u.Scale(radius * math.Cos(phase))).
			Add(w.Scale(radius * math.Sin(phase)))
		c.segment(prev, p, clr, 1)
		prev = p
	}
	c.segment(prev, p2, clr, 1)
}

// DrawGrid draws the ground reference grid centered on the origin.
func (c *Canvas) DrawGrid(spacingX, spacingY float64, nx, ny int, height float64, clr color.RGBA) {
	halfX := spacingX * float64(nx) / 2
	halfY := spacingY * float64(ny) / 2
	for i := 0; i <= nx; i++ {
		x := -halfX + float64(i)*spacingX
		c.segment(geom.Vec3{X: x, Y: -halfY, Z: height}, geom.Vec3{X: x, Y: halfY, Z: height}, clr, 1)
	}
	for j := 0; j <= ny; j++ {
		y := -halfY + float64(j)*spacingY
		c.segment(geom.Vec3{X: -halfX, Y: y, Z: height}, geom.Vec3{X: halfX, Y: y, Z: height}, clr, 1)
	}
}

var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawBox draws a wireframe box with the given half extents.
func (c *Canvas) DrawBox(f geom.Frame, half geom.Vec3, clr color.RGBA) {
	var corners [8]geom.Vec3
	for i := range corners {
		s := half
		if i&1 != 0 {
			s.X = -s.X
		}
		if i&2 != 0 {
			s.Y = -s.Y
		}
		if i&4 != 0 {
			s.Z = -s.Z
		}
		corners[i] = f.TransformPoint(s)
	}
	for _, e := range boxEdges {
		c.segment(corners[e[0]], corners[e[1]], clr, 2)
	}
}

// DrawWheel draws two rims joined by spokes. The frame's local Y is
// the axle, so the spokes turn with wheel spin.
func (c *Canvas) DrawWheel(f geom.Frame, radius, width float64, clr color.RGBA) {
	const rimSegments = 16
	for _, side := range [2]float64{-width / 2, width / 2} {
		prev := f.TransformPoint(geom.Vec3{X: radius, Y: side})
		for i := 1; i <= rimSegments; i++ {
			a := float64(i) / rimSegments * 2 * math.Pi
			p := f.TransformPoint(geom.Vec3{X: radius * math.Cos(a), Y: side, Z: radius * math.Sin(a)})
			c.segment(prev, p, clr, 2)
			prev = p
		}
	}
	hub := f.TransformPoint(geom.Vec3{})
	for i := 0; i < 4; i++ {
		a := float64(i) / 4 * 2 * math.Pi
		rim := f.TransformPoint(geom.Vec3{X: radius * math.Cos(a), Z: radius * math.Sin(a)})
		c.segment(hub, rim, clr, 1)
	}
}

// DrawCone draws a marker pylon standing on the ground at pos.
func (c *Canvas) DrawCone(pos geom.Vec3, height, radius float64, clr color.RGBA) {
	const baseSegments = 8
	apex := pos.Add(geom.Vec3{Z: height})
	prev := pos.Add(geom.Vec3{X: radius})
	for i := 1; i <= baseSegments; i++ {
		a := float64(i) / baseSegments * 2 * math.Pi
		p := pos.Add(geom.Vec3{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		c.segment(prev, p, clr, 1)
		if i%2 == 0 {
			c.segment(p, apex, clr, 1)
		}
		prev = p
	}
}

// DrawPolyline joins the points with segments.
func (c *Canvas) DrawPolyline(pts []geom.Vec3, clr color.RGBA) {
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1], pts[i], clr, 1)
	}
}
