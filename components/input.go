package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/chaseview/config"
)

// KeyEvent is a key edge forwarded to the camera router.
type KeyEvent struct {
	Key  ebiten.Key
	Down bool
}

// InputData stores the current and previous frame's pressed state for
// all actions, plus the camera key edges seen this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Events   []KeyEvent
}

// ActionState is the derived per-frame view of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()
