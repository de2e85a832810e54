package scene_test

import (
	"math"
	"testing"

	"github.com/automoto/chaseview/geom"
	"github.com/automoto/chaseview/scene"
)

func levelView() *scene.View {
	v := scene.NewView(800, 600)
	v.SetCamera(geom.Vec3{X: -10, Z: 1}, geom.Vec3{Z: 1})
	return v
}

func TestProjectTargetHitsScreenCenter(t *testing.T) {
	v := levelView()
	x, y, ok := v.Project(geom.Vec3{Z: 1})
	if !ok {
		t.Fatal("target point rejected")
	}
	if math.Abs(float64(x)-400) > 0.5 || math.Abs(float64(y)-300) > 0.5 {
		t.Fatalf("target projected to (%v, %v), want screen center (400, 300)", x, y)
	}
}

func TestProjectHigherWorldPointIsHigherOnScreen(t *testing.T) {
	v := levelView()
	_, yLow, ok1 := v.Project(geom.Vec3{Z: 1})
	_, yHigh, ok2 := v.Project(geom.Vec3{Z: 2})
	if !ok1 || !ok2 {
		t.Fatal("point rejected")
	}
	if yHigh >= yLow {
		t.Fatalf("raising a point moved it down the screen: %v -> %v", yLow, yHigh)
	}
}

func TestProjectWorldLeftIsScreenLeft(t *testing.T) {
	v := levelView()
	x, _, ok := v.Project(geom.Vec3{Y: 2, Z: 1})
	if !ok {
		t.Fatal("point rejected")
	}
	if x >= 400 {
		t.Fatalf("world left projected to x=%v, want left of center", x)
	}
}

func TestProjectRejectsOutsideDepthRange(t *testing.T) {
	v := levelView()
	if _, _, ok := v.Project(geom.Vec3{X: -20, Z: 1}); ok {
		t.Fatal("point behind the eye was accepted")
	}
	if _, _, ok := v.Project(geom.Vec3{X: -9.95, Z: 1}); ok {
		t.Fatal("point inside the near plane was accepted")
	}
}

func TestHorizonY(t *testing.T) {
	v := levelView()
	if h := v.HorizonY(); h != 300 {
		t.Fatalf("level camera horizon at %d, want 300", h)
	}

	v.SetCamera(geom.Vec3{X: -10, Z: 5}, geom.Vec3{Z: 1})
	if h := v.HorizonY(); h >= 300 {
		t.Fatalf("camera looking down put the horizon at %d, want above center", h)
	}
}
