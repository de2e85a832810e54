package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData fades a short notice over the bottom of the screen.
type ToastData struct {
	Message string
	Alpha   *gween.Sequence
	Level   float32 // current opacity, written by the update system
	Active  bool
}

var Toast = donburi.NewComponentType[ToastData]()
