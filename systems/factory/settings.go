package factory

import (
	"github.com/automoto/chaseview/archetypes"
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the view toggles, starting from s.
func CreateSettings(ecs *ecs.ECS, s components.SettingsData) *donburi.Entry {
	e := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(e, &s)
	return e
}

// DefaultSettings is the configured factory-fresh toggle set.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		ShowStats:   cfg.ViewDefaults.ShowStats,
		ShowGrid:    cfg.ViewDefaults.ShowGrid,
		ShowLinks:   cfg.ViewDefaults.ShowLinks,
		ShowSprings: cfg.ViewDefaults.ShowSprings,
		ShowDebug:   cfg.ViewDefaults.ShowDebug,
		Sound:       cfg.ViewDefaults.Sound,
		Fullscreen:  cfg.ViewDefaults.Fullscreen,
	}
}
