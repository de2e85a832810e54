package systems

import (
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/course"
	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/render"
	"github.com/automoto/chaseview/scene"
	"github.com/automoto/chaseview/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Course furniture sizes, meters.
const (
	coneHeight = 0.5
	coneRadius = 0.2
	gateHeight = 1.4
	gateRadius = 0.15
)

// DrawWorld renders sky, ground grid, course furniture, the vehicle and
// the link overlay, in painter order.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := components.Camera.Get(camEntry).View

	scene.DrawSky(screen, view.HorizonY())

	canvas := scene.NewCanvas(screen, view)
	s := GetOrCreateSettings(ecs)

	if s.ShowGrid {
		canvas.DrawGrid(cfg.Scene.GridSpacingX, cfg.Scene.GridSpacingY,
			cfg.Scene.GridNumX, cfg.Scene.GridNumY, cfg.Scene.GridHeight, cfg.Scene.GridColor)
	}

	if cEntry, ok := components.Course.First(ecs.World); ok {
		drawCourse(canvas, components.Course.Get(cEntry).Course)
	}

	vEntry, ok := components.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vEntry)
	drawVehicle(canvas, v)

	if v.LinksSrc != nil && (s.ShowSprings || s.ShowLinks) {
		links := v.LinksSrc.Links()
		if s.ShowSprings {
			render.Springs(canvas, links)
		}
		if s.ShowLinks {
			render.Joints(canvas, links)
		}
	}
}

// drawCourse places a cone per marker, a taller one per gate post, and
// the lap line on the ground.
func drawCourse(c *scene.Canvas, crs *course.Course) {
	if crs == nil {
		return
	}
	for _, m := range crs.Markers {
		switch m.Kind {
		case course.MarkerGate:
			c.DrawCone(m.Pos, gateHeight, gateRadius, cfg.Scene.Course)
		default:
			c.DrawCone(m.Pos, coneHeight, coneRadius, cfg.Scene.Course)
		}
	}
	c.DrawPolyline(crs.Center, cfg.Scene.CenterLine)
}

// drawVehicle shows the chassis as a box, plus wheels whenever the
// telemetry source knows where they are.
func drawVehicle(c *scene.Canvas, v *components.VehicleData) {
	frame := geom.Frame{Pos: v.Chassis.Pos(), Rot: v.Chassis.Rot()}
	c.DrawBox(frame, cfg.Vehicle.BodyHalf, cfg.Scene.Chassis)

	wp, ok := v.Chassis.(vehicle.WheelPoser)
	if !ok {
		return
	}
	for axle := 0; axle < wp.NumAxles(); axle++ {
		radius, width := wp.WheelSize(axle)
		c.DrawWheel(wp.WheelFrame(axle, vehicle.Left), radius, width, cfg.Scene.Wheel)
		c.DrawWheel(wp.WheelFrame(axle, vehicle.Right), radius, width, cfg.Scene.Wheel)
	}
}
