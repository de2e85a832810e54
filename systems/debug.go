package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/chaseview/components"
	"github.com/automoto/chaseview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var debugFontFace font.Face // cached Small face

var debugTextColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}

// DrawDebug prints pose, pedals and camera internals in the top-left
// corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowDebug {
		return
	}
	vEntry, ok := components.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vEntry)
	cam := components.Camera.Get(camEntry)

	if debugFontFace == nil {
		debugFontFace = fonts.Small.Get()
	}

	pos := v.Chassis.Pos()
	lines := []string{
		fmt.Sprintf("fps %5.1f  tps %5.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("clock %7.2f s", v.Clock),
		fmt.Sprintf("pos %7.2f %7.2f %7.2f", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("speed %6.2f m/s", v.Chassis.Speed()),
		fmt.Sprintf("cam %s  dist %5.2f  angle %+5.2f", cam.Cam.Mode(), cam.Cam.Dist(), cam.Cam.Angle()),
	}
	if v.Rig != nil {
		lines = append(lines, fmt.Sprintf("throttle %4.2f  brake %4.2f  steer %+5.2f",
			v.Rig.Throttle(), v.Rig.Brake(), v.Rig.SteerAngle()))
	}
	if v.Player != nil {
		lines = append(lines, fmt.Sprintf("replay %6.2f s of %6.2f s", v.Player.Time(), v.Player.Duration()))
	}

	y := 24
	for _, line := range lines {
		text.Draw(screen, line, debugFontFace, 10, y, debugTextColor)
		y += 16
	}
}
