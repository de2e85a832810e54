package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical driving action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionThrottle
	ActionBrake
	ActionSteerLeft
	ActionSteerRight
	ActionShiftForward
	ActionShiftNeutral
	ActionShiftReverse
	ActionToggleStats
	ActionToggleGrid
	ActionToggleLinks
	ActionToggleSprings
	ActionToggleDebug
	ActionToggleSound
	ActionToggleFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// CameraKeysConfig holds the camera control key mappings
type CameraKeysConfig struct {
	ZoomOut   ebiten.Key
	ZoomIn    ebiten.Key
	TurnLeft  ebiten.Key
	TurnRight ebiten.Key

	ModeChase  ebiten.Key
	ModeFollow ebiten.Key
	ModeTrack  ebiten.Key
	ModeInside ebiten.Key

	Dump ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

// CameraKeys is the global camera key configuration
var CameraKeys CameraKeysConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionThrottle: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionBrake: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionSteerLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionSteerRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionShiftForward: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionShiftNeutral: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionShiftReverse: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionToggleStats: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleGrid: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionToggleLinks: {
				Keys: []ebiten.Key{ebiten.KeyF4},
			},
			ActionToggleSprings: {
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF6},
			},
			ActionToggleSound: {
				Keys: []ebiten.Key{ebiten.KeyF7},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
		},
	}

	CameraKeys = CameraKeysConfig{
		ZoomOut:   ebiten.KeyArrowDown,
		ZoomIn:    ebiten.KeyArrowUp,
		TurnLeft:  ebiten.KeyArrowLeft,
		TurnRight: ebiten.KeyArrowRight,

		ModeChase:  ebiten.KeyDigit1,
		ModeFollow: ebiten.KeyDigit2,
		ModeTrack:  ebiten.KeyDigit3,
		ModeInside: ebiten.KeyDigit4,

		Dump: ebiten.KeyV,
	}
}
