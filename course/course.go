// Package course loads marker layouts from Tiled TMX files.
package course

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/chaseview/geom"
)

// MarkerKind labels what a course marker stands for.
type MarkerKind int

const (
	MarkerCone MarkerKind = iota
	MarkerGate
)

// Marker is a ground fixture placed along the course.
type Marker struct {
	Kind MarkerKind
	Pos  geom.Vec3
}

// Course holds markers and an optional lap line in world meters, with
// the map center at the origin.
type Course struct {
	Name    string
	Markers []Marker
	Center  []geom.Vec3
}

const defaultMetersPerPixel = 0.1

// Load parses a TMX course file. The "Markers" object group supplies
// cones and gates, "CenterLine" the lap polyline. Map pixels scale to
// meters by the metersPerPixel map property, with +Y flipped so north
// on the map is +Y in the world. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS; a nil fsys reads from the host filesystem.
func Load(fsys fs.FS, path string) (*Course, error) {
	var opts []tiled.LoaderOption
	if fsys != nil {
		opts = append(opts, tiled.WithFileSystem(fsys))
	}
	m, err := tiled.LoadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	scale := m.Properties.GetFloat("metersPerPixel")
	if scale <= 0 {
		scale = defaultMetersPerPixel
	}
	halfW := float64(m.Width*m.TileWidth) / 2
	halfH := float64(m.Height*m.TileHeight) / 2
	toWorld := func(x, y float64) geom.Vec3 {
		return geom.Vec3{X: (x - halfW) * scale, Y: (halfH - y) * scale}
	}

	c := &Course{Name: m.Properties.GetString("name")}
	if c.Name == "" {
		c.Name = path
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Markers":
			for _, o := range og.Objects {
				kind := MarkerCone
				if o.Properties.GetString("kind") == "gate" {
					kind = MarkerGate
				}
				c.Markers = append(c.Markers, Marker{Kind: kind, Pos: toWorld(o.X, o.Y)})
			}
		case "CenterLine":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
					continue
				}
				for _, p := range *o.PolyLines[0].Points {
					c.Center = append(c.Center, toWorld(o.X+p.X, o.Y+p.Y))
				}
			}
		}
	}

	if len(c.Markers) == 0 {
		return nil, fmt.Errorf("course %s has no markers", path)
	}
	return c, nil
}
