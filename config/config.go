package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/chaseview/geom"
)

// Default is the single render layer the viewer draws on.
const Default ecs.LayerID = 0

// CameraConfig contains chase camera tuning values
type CameraConfig struct {
	Anchor geom.Vec3 // chassis-local aim point

	ChaseDist   float64 // initial distance behind the anchor
	ChaseHeight float64 // initial height above the anchor

	MaxStep   float64 // integration sub-step cap, seconds
	HorizGain float64 // horizontal pursuit gain, 1/s
	VertGain  float64 // vertical pursuit gain, 1/s
	ZoomRate  float64 // multiplicative zoom per key event
	TurnRate  float64 // yaw offset per key event, radians
	MinMult   float64 // closest zoom, fraction of ChaseDist
	MaxMult   float64 // farthest zoom, multiple of ChaseDist
}

// HUDConfig contains stats panel placement
type HUDConfig struct {
	X int
	Y int
}

// SceneConfig contains projection and scene drawing values
type SceneConfig struct {
	FOV  float64 // vertical field of view, degrees
	Near float64
	Far  float64

	// Ground reference grid
	GridSpacingX float64
	GridSpacingY float64
	GridNumX     int
	GridNumY     int
	GridHeight   float64
	GridColor    color.RGBA

	SkyTop     color.RGBA
	SkyHorizon color.RGBA
	Ground     color.RGBA

	Chassis    color.RGBA
	Wheel      color.RGBA
	Course     color.RGBA
	CenterLine color.RGBA
}

// VehicleConfig contains demo rig tuning values
type VehicleConfig struct {
	Accel      float64 // full throttle acceleration, m/s^2
	Brake      float64 // full brake deceleration, m/s^2
	Drag       float64 // speed-proportional resistance, 1/s
	TopSpeed   float64 // m/s
	TopReverse float64 // m/s

	MaxSteer    float64 // road wheel angle at full lock, radians
	DrivenAxles []int   // one axle shows the L/R gauges, two the FL..RR set

	SteerRate   float64 // normalized steer travel per second while held
	SteerReturn float64 // normalized centering per second when released
	PedalRate   float64 // pedal travel per second

	BodyHalf geom.Vec3 // drawn chassis box half extents
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var HUD HUDConfig
var Scene SceneConfig
var Vehicle VehicleConfig

func init() {
	C = &Config{
		Width:  1000,
		Height: 800,
	}

	// Camera Config
	Camera = CameraConfig{
		Anchor:      geom.Vec3{Z: 1.0},
		ChaseDist:   6.0,
		ChaseHeight: 0.5,

		MaxStep:   1e-3,
		HorizGain: 4.0,
		VertGain:  2.0,
		ZoomRate:  1.01,
		TurnRate:  0.052, // ~3 degrees per key event
		MinMult:   0.5,
		MaxMult:   10.0,
	}

	// HUD Config
	HUD = HUDConfig{
		X: 740,
		Y: 20,
	}

	// Scene Config
	Scene = SceneConfig{
		FOV:  50.0,
		Near: 0.1,
		Far:  500.0,

		GridSpacingX: 0.5,
		GridSpacingY: 0.5,
		GridNumX:     100,
		GridNumY:     100,
		GridHeight:   0.02,
		GridColor:    color.RGBA{R: 80, G: 130, B: 255, A: 255},

		SkyTop:     color.RGBA{R: 100, G: 150, B: 230, A: 255},
		SkyHorizon: color.RGBA{R: 195, G: 215, B: 245, A: 255},
		Ground:     color.RGBA{R: 88, G: 120, B: 78, A: 255},

		Chassis:    color.RGBA{R: 190, G: 60, B: 40, A: 255},
		Wheel:      color.RGBA{R: 40, G: 40, B: 45, A: 255},
		Course:     color.RGBA{R: 240, G: 240, B: 60, A: 255},
		CenterLine: color.RGBA{R: 225, G: 225, B: 225, A: 255},
	}

	// Vehicle Config
	Vehicle = VehicleConfig{
		Accel:      4.5,
		Brake:      8.0,
		Drag:       0.05,
		TopSpeed:   35.0,
		TopReverse: 8.0,

		MaxSteer:    0.5,
		DrivenAxles: []int{1}, // rear wheel drive

		SteerRate:   2.0,
		SteerReturn: 3.0,
		PedalRate:   2.5,

		BodyHalf: geom.Vec3{X: 2.1, Y: 0.9, Z: 0.35},
	}
}
