// Package control turns discrete key events into chase-camera commands
// and the diagnostic dump request. It knows nothing about rendering or
// how the events were produced.
package control

import (
	"github.com/automoto/chaseview/chasecam"
	"github.com/hajimehoshi/ebiten/v2"
)

// CameraCommands is the slice of camera behavior the router drives.
type CameraCommands interface {
	Zoom(dir int)
	Turn(dir int)
	SetMode(m chasecam.Mode)
}

// Diagnostics receives the debug-dump request. Optional.
type Diagnostics interface {
	LogConstraintViolations()
}

// Bindings fixes which key drives which command. Directional commands
// fire on key press, mode and dump commands on release.
type Bindings struct {
	ZoomOut   ebiten.Key // move the view away
	ZoomIn    ebiten.Key // move the view closer
	TurnLeft  ebiten.Key
	TurnRight ebiten.Key

	ModeChase  ebiten.Key
	ModeFollow ebiten.Key
	ModeTrack  ebiten.Key
	ModeInside ebiten.Key
	Dump       ebiten.Key
}

// Router dispatches key events. Each event is either consumed (a bound
// key, reported true) or passed through untouched (reported false) so
// an enclosing dispatcher can offer it elsewhere.
type Router struct {
	cam  CameraCommands
	diag Diagnostics
	b    Bindings
}

func NewRouter(cam CameraCommands, diag Diagnostics, b Bindings) *Router {
	return &Router{cam: cam, diag: diag, b: b}
}

// KeyDown handles one key press. One press yields exactly one unit of
// zoom or turn; sustained motion needs the source to re-fire the event.
func (r *Router) KeyDown(k ebiten.Key) bool {
	switch k {
	case r.b.ZoomOut:
		r.cam.Zoom(1)
	case r.b.ZoomIn:
		r.cam.Zoom(-1)
	case r.b.TurnLeft:
		r.cam.Turn(1)
	case r.b.TurnRight:
		r.cam.Turn(-1)
	default:
		return false
	}
	return true
}

// KeyUp handles one key release.
func (r *Router) KeyUp(k ebiten.Key) bool {
	switch k {
	case r.b.ModeChase:
		r.cam.SetMode(chasecam.Chase)
	case r.b.ModeFollow:
		r.cam.SetMode(chasecam.Follow)
	case r.b.ModeTrack:
		r.cam.SetMode(chasecam.Track)
	case r.b.ModeInside:
		r.cam.SetMode(chasecam.Inside)
	case r.b.Dump:
		if r.diag != nil {
			r.diag.LogConstraintViolations()
		}
	default:
		return false
	}
	return true
}
