package systems

import (
	"github.com/automoto/chaseview/components"
	cfg "github.com/automoto/chaseview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips the view toggles on their key edges and persists
// every change.
func UpdateSettings(ecs *ecs.ECS) {
	s := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	toggle := func(id cfg.ActionID, v *bool) {
		if GetAction(input, id).JustPressed {
			*v = !*v
			changed = true
		}
	}
	toggle(cfg.ActionToggleStats, &s.ShowStats)
	toggle(cfg.ActionToggleGrid, &s.ShowGrid)
	toggle(cfg.ActionToggleLinks, &s.ShowLinks)
	toggle(cfg.ActionToggleSprings, &s.ShowSprings)
	toggle(cfg.ActionToggleDebug, &s.ShowDebug)
	toggle(cfg.ActionToggleSound, &s.Sound)

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(s)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded
// from the configured defaults when no factory spawned one.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.Set(entry, &components.SettingsData{
			ShowStats:   cfg.ViewDefaults.ShowStats,
			ShowGrid:    cfg.ViewDefaults.ShowGrid,
			ShowLinks:   cfg.ViewDefaults.ShowLinks,
			ShowSprings: cfg.ViewDefaults.ShowSprings,
			ShowDebug:   cfg.ViewDefaults.ShowDebug,
			Sound:       cfg.ViewDefaults.Sound,
			Fullscreen:  cfg.ViewDefaults.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}
