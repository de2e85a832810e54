// Package scene projects the world onto the screen and draws it.
package scene

import (
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/geom"
)

// View owns the projection from world space to screen pixels.
type View struct {
	w, h   int
	eye    geom.Vec3
	target geom.Vec3
	proj   geom.Mat4
	vp     geom.Mat4
}

func NewView(w, h int) *View {
	v := &View{w: w, h: h}
	v.proj = geom.Perspective(cfg.Scene.FOV, float64(w)/float64(h), cfg.Scene.Near, cfg.Scene.Far)
	v.SetCamera(geom.Vec3{X: -1}, geom.Vec3{})
	return v
}

// SetCamera points the view from eye toward target with Z up.
func (v *View) SetCamera(eye, target geom.Vec3) {
	v.eye = eye
	v.target = target
	v.vp = v.proj.Mul(geom.LookAt(eye, target, geom.Vec3{Z: 1}))
}

// Project maps a world point to screen pixels. ok is false when the
// point falls outside the frustum depth range.
func (v *View) Project(p geom.Vec3) (x, y float32, ok bool) {
	ndc, ok := v.vp.ProjectPoint(p)
	if !ok || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, false
	}
	x = float32((ndc.X + 1) / 2 * float64(v.w))
	y = float32((1 - ndc.Y) / 2 * float64(v.h))
	return x, y, true
}

// HorizonY returns the screen row where eye-height terrain far ahead
// along the camera's level heading projects.
func (v *View) HorizonY() int {
	fwd := v.target.Sub(v.eye)
	fwd.Z = 0
	if fwd.Dot(fwd) < 1e-12 {
		return v.h / 2
	}
	far := v.eye.Add(fwd.Normalize().Scale(cfg.Scene.Far * 0.9))
	far.Z = v.eye.Z
	_, y, ok := v.Project(far)
	if !ok {
		return v.h / 2
	}
	if y < 0 {
		y = 0
	}
	if y > float32(v.h) {
		y = float32(v.h)
	}
	return int(y)
}
