package vehicle

import (
	"math"

	"github.com/automoto/chaseview/geom"
)

// Link is one mechanical constraint or force element in the model.
type Link interface {
	Name() string
	// Violation is the current constraint residual in meters; force
	// elements report zero.
	Violation() float64
}

// GlyphKind enumerates the drawable link forms. The set is closed:
// a link either yields one of these or is not drawn at all.
type GlyphKind int

const (
	GlyphSpring GlyphKind = iota
	GlyphDistance
	GlyphRevSphere
)

// Glyph is a link's visual form: its kind plus the two live world-space
// endpoints for this instant.
type Glyph struct {
	Kind   GlyphKind
	P1, P2 geom.Vec3
}

// Glypher is implemented by links that render as a primitive glyph.
// The draw pass skips links without it.
type Glypher interface {
	Glyph() Glyph
}

// SpringLink is a linear coil spring-damper between two hardpoints.
type SpringLink struct {
	Label     string
	RestLen   float64
	Stiffness float64
	Damping   float64
	End1      geom.Vec3
	End2      geom.Vec3
}

func (s *SpringLink) Name() string       { return s.Label }
func (s *SpringLink) Violation() float64 { return 0 }
func (s *SpringLink) Glyph() Glyph {
	return Glyph{Kind: GlyphSpring, P1: s.End1, P2: s.End2}
}

// Deflection is the compression (positive) or extension (negative)
// relative to the rest length.
func (s *SpringLink) Deflection() float64 {
	return s.RestLen - s.End2.Sub(s.End1).Length()
}

// MapSpringLink is a spring whose force follows a lookup curve instead
// of a constant rate. Visually identical to SpringLink.
type MapSpringLink struct {
	Label   string
	RestLen float64
	// Curve maps deflection (m) to force (N), sampled linearly.
	Curve [][2]float64
	End1  geom.Vec3
	End2  geom.Vec3
}

func (s *MapSpringLink) Name() string       { return s.Label }
func (s *MapSpringLink) Violation() float64 { return 0 }
func (s *MapSpringLink) Glyph() Glyph {
	return Glyph{Kind: GlyphSpring, P1: s.End1, P2: s.End2}
}

// DistanceLink is a rigid rod constraining the gap between two points.
type DistanceLink struct {
	Label  string
	Target float64 // imposed distance, m
	End1   geom.Vec3
	End2   geom.Vec3
}

func (d *DistanceLink) Name() string { return d.Label }
func (d *DistanceLink) Violation() float64 {
	return math.Abs(d.End2.Sub(d.End1).Length() - d.Target)
}
func (d *DistanceLink) Glyph() Glyph {
	return Glyph{Kind: GlyphDistance, P1: d.End1, P2: d.End2}
}

// RevSphereLink is a composite revolute-spherical joint drawn as the
// bar between its two anchor points.
type RevSphereLink struct {
	Label  string
	ArmLen float64 // imposed anchor separation, m
	P1     geom.Vec3
	P2     geom.Vec3
}

func (r *RevSphereLink) Name() string { return r.Label }
func (r *RevSphereLink) Violation() float64 {
	return math.Abs(r.P2.Sub(r.P1).Length() - r.ArmLen)
}
func (r *RevSphereLink) Glyph() Glyph {
	return Glyph{Kind: GlyphRevSphere, P1: r.P1, P2: r.P2}
}

// BushingLink is a compliant mount with no line-drawable form, so it
// is not a Glypher.
type BushingLink struct {
	Label    string
	Residual float64
}

func (b *BushingLink) Name() string       { return b.Label }
func (b *BushingLink) Violation() float64 { return b.Residual }
