package geom

import "math"

// Mat4 is a 4x4 matrix in column-major order.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective builds a right-handed projection. fovy is in degrees,
// aspect = width/height, NDC z in [-1,1].
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovy*math.Pi/360.0)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// LookAt builds a right-handed view matrix with the given up hint.
func LookAt(eye, center, up Vec3) Mat4 {
	const eps = 1e-8

	fwd := center.Sub(eye).NormalizeSafe(eps)
	side := fwd.Cross(up)
	if side.Length() < eps {
		// Eye-to-target is parallel to up; pick any perpendicular.
		alt := Vec3{X: 1}
		if math.Abs(fwd.X) > 0.9 {
			alt = Vec3{Y: 1}
		}
		side = fwd.Cross(alt)
	}
	side = side.Normalize()
	u := side.Cross(fwd)

	return Mat4{
		side.X, u.X, -fwd.X, 0,
		side.Y, u.Y, -fwd.Y, 0,
		side.Z, u.Z, -fwd.Z, 0,
		-side.Dot(eye), -u.Dot(eye), fwd.Dot(eye), 1,
	}
}

// Mul returns m * o (column-major composition).
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s := 0.0
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	return r
}

// MulVec4 returns m * (x,y,z,w) without the perspective divide.
func (m Mat4) MulVec4(x, y, z, w float64) (float64, float64, float64, float64) {
	rx := m[0]*x + m[4]*y + m[8]*z + m[12]*w
	ry := m[1]*x + m[5]*y + m[9]*z + m[13]*w
	rz := m[2]*x + m[6]*y + m[10]*z + m[14]*w
	rw := m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return rx, ry, rz, rw
}

// ProjectPoint maps a world point into normalized device coordinates.
// ok is false when the point is at or behind the eye plane.
func (m Mat4) ProjectPoint(p Vec3) (ndc Vec3, ok bool) {
	x, y, z, w := m.MulVec4(p.X, p.Y, p.Z, 1)
	if w <= 1e-9 {
		return Vec3{}, false
	}
	inv := 1 / w
	return Vec3{x * inv, y * inv, z * inv}, true
}
