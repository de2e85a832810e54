package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/chaseview/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the view toggles stored on disk
type SavedSettings struct {
	ShowStats   bool `json:"showStats"`
	ShowGrid    bool `json:"showGrid"`
	ShowLinks   bool `json:"showLinks"`
	ShowSprings bool `json:"showSprings"`
	ShowDebug   bool `json:"showDebug"`
	Sound       bool `json:"sound"`
	Fullscreen  bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "chaseview",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live toggle component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		ShowStats:   s.ShowStats,
		ShowGrid:    s.ShowGrid,
		ShowLinks:   s.ShowLinks,
		ShowSprings: s.ShowSprings,
		ShowDebug:   s.ShowDebug,
		Sound:       s.Sound,
		Fullscreen:  s.Fullscreen,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings overlays saved toggles onto start, returning what
// the viewer should launch with.
func ApplySavedSettings(start components.SettingsData, saved *SavedSettings) components.SettingsData {
	if saved == nil {
		return start
	}
	return components.SettingsData{
		ShowStats:   saved.ShowStats,
		ShowGrid:    saved.ShowGrid,
		ShowLinks:   saved.ShowLinks,
		ShowSprings: saved.ShowSprings,
		ShowDebug:   saved.ShowDebug,
		Sound:       saved.Sound,
		Fullscreen:  saved.Fullscreen,
	}
}
