package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/chaseview/chasecam"
	"github.com/automoto/chaseview/control"
	"github.com/automoto/chaseview/scene"
)

// CameraData carries the chase camera, the key router feeding it, and
// the view it drives.
type CameraData struct {
	Cam    *chasecam.Camera
	Router *control.Router
	View   *scene.View
}

var Camera = donburi.NewComponentType[CameraData]()
