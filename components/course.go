package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/chaseview/course"
)

// CourseData holds the loaded marker course.
type CourseData struct {
	Course *course.Course
}

var Course = donburi.NewComponentType[CourseData]()
