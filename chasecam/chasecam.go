// Package chasecam implements the camera that tracks the vehicle: a
// four-mode state machine whose position and aim point are pulled toward
// per-mode goals by a first-order pursuit filter, integrated in fixed
// sub-steps alongside the simulation.
package chasecam

import (
	"errors"
	"math"

	"github.com/automoto/chaseview/geom"
)

// Mode selects the camera behavior.
type Mode int

const (
	Chase Mode = iota
	Follow
	Track
	Inside
)

var modeNames = [...]string{"Chase", "Follow", "Track", "Inside"}

func (m Mode) String() string {
	if m < Chase || m > Inside {
		return "Unknown"
	}
	return modeNames[m]
}

// ParseMode maps a display name back to its mode.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return Chase, false
}

// Chassis reports the world pose of the tracked vehicle body.
type Chassis interface {
	Pos() geom.Vec3
	Rot() geom.Quat
}

// Params tunes the camera dynamics. Zero fields take defaults.
type Params struct {
	MaxStep   float64 // upper bound on one integration step, seconds
	HorizGain float64 // horizontal pursuit gain, 1/s
	VertGain  float64 // vertical pursuit gain, 1/s
	ZoomRate  float64 // multiplicative distance change per Zoom command
	TurnRate  float64 // yaw offset change per Turn command, radians
	MinMult   float64 // lower bound on the distance multiplier
	MaxMult   float64 // upper bound on the distance multiplier
}

func (p Params) withDefaults() Params {
	if p.MaxStep <= 0 {
		p.MaxStep = 1e-3
	}
	if p.HorizGain <= 0 {
		p.HorizGain = 4.0
	}
	if p.VertGain <= 0 {
		p.VertGain = 2.0
	}
	if p.ZoomRate <= 1 {
		p.ZoomRate = 1.01
	}
	if p.TurnRate <= 0 {
		p.TurnRate = math.Pi / 60
	}
	if p.MinMult <= 0 {
		p.MinMult = 0.5
	}
	if p.MaxMult <= p.MinMult {
		p.MaxMult = 10
	}
	return p
}

var (
	ErrNoChassis     = errors.New("chasecam: nil chassis")
	ErrChaseDistance = errors.New("chasecam: chase distance must be positive")
)

// Camera owns the smoothed position/target pair fed to the renderer.
// All mutation happens on the update thread: discrete commands between
// steps, Update/Advance during them.
type Camera struct {
	chassis Chassis
	p       Params

	mode   Mode
	anchor geom.Vec3  // aim point, chassis-local
	driver geom.Frame // seated viewpoint, chassis-local
	dist   float64
	height float64
	mult   float64
	angle  float64 // yaw offset about the chassis up axis

	pos geom.Vec3
	tgt geom.Vec3

	trackPos geom.Vec3 // world-space perch while in Track
}

// New creates a camera following chassis, placed at a default rear
// three-quarter view. Call Initialize to re-anchor it.
func New(chassis Chassis, p Params) (*Camera, error) {
	if chassis == nil {
		return nil, ErrNoChassis
	}
	c := &Camera{chassis: chassis, p: p.withDefaults()}
	c.Initialize(geom.Vec3{Z: 1}, geom.FrameIdentity(), 6.0, 0.5)
	return c, nil
}

// Initialize re-anchors the camera: it will aim at anchor (chassis-local)
// from dist behind and height above, with no residual lag or yaw offset.
// driver is the chassis-local frame used by the Inside mode.
func (c *Camera) Initialize(anchor geom.Vec3, driver geom.Frame, dist, height float64) error {
	if dist <= 0 {
		return ErrChaseDistance
	}
	c.anchor = anchor
	c.driver = driver
	c.dist = dist
	c.height = height
	c.mult = 1
	c.angle = 0

	f := c.frame()
	c.tgt = f.TransformPoint(anchor)
	c.pos = f.TransformPoint(anchor.Add(geom.Vec3{X: -dist, Z: height}))
	c.trackPos = c.pos
	return nil
}

func (c *Camera) frame() geom.Frame {
	return geom.Frame{Pos: c.chassis.Pos(), Rot: c.chassis.Rot()}
}

// SetMode switches behavior. Setting the current mode is a no-op, so
// re-entering Track never moves its perch.
func (c *Camera) SetMode(m Mode) {
	if m < Chase || m > Inside || m == c.mode {
		return
	}
	if m == Track {
		c.trackPos = c.pos
	}
	c.mode = m
}

func (c *Camera) Mode() Mode { return c.mode }

// Zoom moves the view away from (dir > 0) or toward (dir < 0) the
// vehicle by one rate increment. Ignored while Inside; in Track it moves
// the perch along the line of sight instead. The effective distance
// never reaches zero.
func (c *Camera) Zoom(dir int) {
	if dir == 0 || c.mode == Inside {
		return
	}
	if c.mode == Track {
		c.zoomTrack(dir)
		return
	}
	if dir > 0 && c.mult < c.p.MaxMult {
		c.mult *= c.p.ZoomRate
	} else if dir < 0 && c.mult > c.p.MinMult {
		c.mult /= c.p.ZoomRate
	}
}

func (c *Camera) zoomTrack(dir int) {
	aim := c.frame().TransformPoint(c.anchor)
	off := c.trackPos.Sub(aim)
	d := off.Length()
	if d < 1e-9 {
		return
	}
	nd := d * c.p.ZoomRate
	if dir < 0 {
		nd = d / c.p.ZoomRate
	}
	if floor := c.dist * c.p.MinMult; nd < floor {
		nd = floor
	}
	c.trackPos = aim.Add(off.Scale(nd / d))
}

// Turn rotates the yaw offset one rate increment, wrapping at a full
// revolution either way. Only meaningful while the camera owns its
// heading (Chase, Follow).
func (c *Camera) Turn(dir int) {
	if dir == 0 || c.mode == Track || c.mode == Inside {
		return
	}
	c.angle += float64(dir) * c.p.TurnRate
	if c.angle > 2*math.Pi {
		c.angle -= 2 * math.Pi
	} else if c.angle < -2*math.Pi {
		c.angle += 2 * math.Pi
	}
}

// Update takes a single Euler step of h seconds toward the current
// per-mode goals. Callers stepping a long interval must split it so no
// step exceeds Params.MaxStep; Advance does exactly that.
func (c *Camera) Update(h float64) {
	if c.mode == Inside {
		f := c.frame()
		c.pos = f.TransformPoint(c.driver.Pos)
		c.tgt = f.TransformPoint(c.driver.Pos.Add(c.driver.Forward()))
		return
	}

	posGoal := c.idealPos()
	tgtGoal := c.frame().TransformPoint(c.anchor)

	c.pos = pursue(c.pos, posGoal, h, c.p.HorizGain, c.p.VertGain)
	c.tgt = pursue(c.tgt, tgtGoal, h, c.p.HorizGain, c.p.VertGain)
}

// Advance integrates a total of dt seconds in sub-steps no longer than
// Params.MaxStep, so the advanced time matches dt exactly.
func (c *Camera) Advance(dt float64) {
	for t := 0.0; t < dt; {
		h := math.Min(c.p.MaxStep, dt-t)
		c.Update(h)
		t += h
	}
}

func pursue(cur, goal geom.Vec3, h, hg, vg float64) geom.Vec3 {
	cur.X += h * hg * (goal.X - cur.X)
	cur.Y += h * hg * (goal.Y - cur.Y)
	cur.Z += h * vg * (goal.Z - cur.Z)
	return cur
}

func (c *Camera) idealPos() geom.Vec3 {
	switch c.mode {
	case Track:
		return c.trackPos

	case Follow:
		// Hold range along the current bearing; heading follows the
		// vehicle only through the motion of the aim point.
		aim := c.frame().TransformPoint(c.anchor)
		back := c.pos.Sub(aim)
		back.Z = 0
		u := back.NormalizeSafe(1e-6)
		if u == (geom.Vec3{}) {
			u = c.frame().TransformDir(geom.Vec3{X: -1})
			u.Z = 0
			u = u.NormalizeSafe(1e-6)
		}
		p := aim.Add(u.Scale(c.dist * c.mult))
		p.Z = aim.Z + c.height
		return p

	default: // Chase
		off := geom.RotZ(c.angle).Rotate(geom.Vec3{X: -c.dist * c.mult})
		local := c.anchor.Add(off)
		local.Z += c.height
		return c.frame().TransformPoint(local)
	}
}

// Pos is the smoothed camera position.
func (c *Camera) Pos() geom.Vec3 { return c.pos }

// Target is the smoothed aim point.
func (c *Camera) Target() geom.Vec3 { return c.tgt }

// Dist is the commanded chase distance after zoom.
func (c *Camera) Dist() float64 { return c.dist * c.mult }

// Angle is the commanded yaw offset.
func (c *Camera) Angle() float64 { return c.angle }
