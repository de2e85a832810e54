package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the live view toggles (singleton component)
type SettingsData struct {
	ShowStats   bool
	ShowGrid    bool
	ShowLinks   bool
	ShowSprings bool
	ShowDebug   bool
	Sound       bool
	Fullscreen  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
