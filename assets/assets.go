package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultCourse is the course file loaded when none is named.
const DefaultCourse = "levels/figure8.tmx"

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}
