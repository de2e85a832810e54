package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/assets"
	"github.com/automoto/chaseview/components"
	"github.com/automoto/chaseview/course"
	"github.com/automoto/chaseview/diag"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourse spawns the marker course loaded from path, falling back
// to the embedded default when path is empty. A broken course file is
// not fatal; the viewer just runs on an empty plane.
func CreateCourse(ecs *ecs.ECS, path string) *donburi.Entry {
	e := archetypes.Course.Spawn(ecs)

	var (
		c   *course.Course
		err error
	)
	if path == "" {
		c, err = course.Load(assets.FS(), assets.DefaultCourse)
	} else {
		c, err = course.Load(nil, path)
	}
	if err != nil {
		diag.Logger.Warn().Err(err).Str("path", path).Msg("course load failed")
		c = nil
	}

	components.Course.Set(e, &components.CourseData{Course: c})
	return e
}
