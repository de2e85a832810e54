package config

// ViewSettingsConfig contains the persisted view toggle defaults
type ViewSettingsConfig struct {
	ShowStats   bool
	ShowGrid    bool
	ShowLinks   bool
	ShowSprings bool
	ShowDebug   bool
	Sound       bool
	Fullscreen  bool
}

// ViewDefaults is the global view settings configuration
var ViewDefaults ViewSettingsConfig

func init() {
	ViewDefaults = ViewSettingsConfig{
		ShowStats:   true,
		ShowGrid:    true,
		ShowLinks:   true,
		ShowSprings: true,
		ShowDebug:   false,
		Sound:       true,
		Fullscreen:  false,
	}
}
