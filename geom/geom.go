// Package geom provides the small 3D math kit used by the viewer:
// vectors, quaternions, rigid frames and 4x4 matrices. Axes follow the
// vehicle convention: X forward, Y left, Z up.
package geom

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// NormalizeSafe returns the zero vector when |v| < eps instead of
// amplifying noise into a garbage direction.
func (v Vec3) NormalizeSafe(eps float64) Vec3 {
	if v.Length() < eps {
		return Vec3{}
	}
	return v.Normalize()
}

// Lerp interpolates toward o; t outside [0,1] extrapolates.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Quat is a rotation quaternion (w + xi + yj + zk).
type Quat struct {
	W, X, Y, Z float64
}

func QuatIdentity() Quat { return Quat{W: 1} }

// QuatFromAxisAngle builds a rotation of angle radians about axis.
// The axis need not be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quat{
		W: math.Cos(angle / 2),
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
	}
}

// RotZ is a yaw rotation about the world up axis.
func RotZ(angle float64) Quat {
	return Quat{W: math.Cos(angle / 2), Z: math.Sin(angle / 2)}
}

func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quat) Conj() Quat { return Quat{q.W, -q.X, -q.Y, -q.Z} }

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := q.Mul(Quat{0, v.X, v.Y, v.Z}).Mul(q.Conj())
	return Vec3{p.X, p.Y, p.Z}
}

// Nlerp is a normalized linear blend toward o, adequate for the small
// per-sample rotation deltas seen during playback interpolation.
func (q Quat) Nlerp(o Quat, t float64) Quat {
	// Take the short arc.
	if q.W*o.W+q.X*o.X+q.Y*o.Y+q.Z*o.Z < 0 {
		o = Quat{-o.W, -o.X, -o.Y, -o.Z}
	}
	return Quat{
		W: q.W + (o.W-q.W)*t,
		X: q.X + (o.X-q.X)*t,
		Y: q.Y + (o.Y-q.Y)*t,
		Z: q.Z + (o.Z-q.Z)*t,
	}.Normalize()
}

// Yaw extracts the heading about the world up axis.
func (q Quat) Yaw() float64 {
	f := q.Rotate(Vec3{X: 1})
	return math.Atan2(f.Y, f.X)
}

// Frame is a rigid transform: rotate then translate.
type Frame struct {
	Pos Vec3
	Rot Quat
}

func FrameIdentity() Frame { return Frame{Rot: QuatIdentity()} }

func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.Rot.Rotate(p).Add(f.Pos)
}

func (f Frame) TransformDir(d Vec3) Vec3 {
	return f.Rot.Rotate(d)
}

// Forward is the frame's local +X expressed in the parent frame.
func (f Frame) Forward() Vec3 { return f.Rot.Rotate(Vec3{X: 1}) }

// Left is the frame's local +Y expressed in the parent frame.
func (f Frame) Left() Vec3 { return f.Rot.Rotate(Vec3{Y: 1}) }

// Up is the frame's local +Z expressed in the parent frame.
func (f Frame) Up() Vec3 { return f.Rot.Rotate(Vec3{Z: 1}) }
