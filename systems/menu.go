package systems

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stormfell/bombrush/assets"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/spots"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu wires menu navigation to the spot registry: Left/Right cycle
// the showcase spots of the current theme, Up/Down cycle themes, Select plays
// the active spot's main part and starts the match.
func NewUpdateMenu(sceneChanger SceneChanger, reg *spots.Registry, createMatchScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if menu.Starting {
			menu.StartTicks--
			if menu.StartTicks <= 0 {
				sceneChanger.ChangeScene(createMatchScene())
			}
			return
		}

		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			MoveSpot(e, reg, 1)
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			MoveSpot(e, reg, -1)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			SwitchTheme(e, reg, 1)
		}
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			SwitchTheme(e, reg, -1)
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			StartMatch(e, reg)
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// MoveSpot steps the active showcase spot. A stale active row or an empty
// theme leaves everything untouched; the failure only shows up as a hint and
// a log line.
func MoveSpot(e *ecs.ECS, reg *spots.Registry, step int) {
	menu := GetOrCreateMenu(e)
	if _, err := reg.MoveActive(step); err != nil {
		menu.LastNavFailed = true
		log.Printf("[menu] spot navigation: %v", err)
		return
	}
	menu.LastNavFailed = false
	PlaySFX(e, cfg.SoundMenuNavigate)
	// Camera fly and state saving react through registry observers.
}

// SwitchTheme cycles to another theme from the catalog.
func SwitchTheme(e *ecs.ECS, reg *spots.Registry, step int) {
	themeEntry, ok := components.Theme.First(e.World)
	if !ok {
		return
	}
	current := components.Theme.Get(themeEntry).Current

	next, ok := reg.Catalog().Shift(current, step)
	if !ok {
		log.Printf("[menu] no theme catalog attached")
		return
	}
	if next.Type == current {
		return
	}

	if err := ApplyTheme(e, reg, next, 0); err != nil {
		log.Printf("[menu] theme switch: %v", err)
		return
	}
	PlaySFX(e, cfg.SoundThemeSwitch)
}

// ApplyTheme swaps the backdrop, respawns that theme's spots and re-seats the
// active row — the reconciliation MoveActive's stale-row check expects from
// callers that change the current level type.
func ApplyTheme(e *ecs.ECS, reg *spots.Registry, info spots.ThemeInfo, preferredRow int) error {
	backdrop, err := assets.LoadBackdrop(info.Backdrop)
	if err != nil {
		return fmt.Errorf("apply theme %s: %w", info.Name, err)
	}

	DespawnThemeSpots(e, reg)

	themeEntry, ok := components.Theme.First(e.World)
	if !ok {
		themeEntry = e.World.Entry(e.World.Create(components.Theme))
	}
	components.Theme.SetValue(themeEntry, components.ThemeData{
		Current:  info.Type,
		Name:     info.Name,
		Backdrop: backdrop,
	})

	SpawnThemeSpots(e, reg, info.Type, backdrop)
	if SeatActiveRow(reg, info.Type, preferredRow) {
		if active, ok := reg.ActiveSpot(); ok {
			if entry, found := FindSpotEntry(e, info.Type, active.RowIndex()); found {
				data := components.Spot.Get(entry)
				SnapCameraTo(e, data.X, data.Y)
			}
		}
	}

	music := info.Music
	if music == "" {
		music = cfg.Sound.MenuMusic
	}
	PlayMusic(e, music)
	return nil
}

// StartMatch plays the active spot's main part and schedules the scene
// change.
func StartMatch(e *ecs.ECS, reg *spots.Registry) {
	active, ok := reg.ActiveSpot()
	if !ok {
		log.Printf("[menu] no active spot to start a match with")
		return
	}
	if entry, found := FindSpotEntry(e, active.LevelType(), active.RowIndex()); found {
		data := components.Spot.Get(entry)
		data.State = components.CinematicMain
		data.Ticks = 0
	}

	menu := GetOrCreateMenu(e)
	menu.Starting = true
	menu.StartTicks = cfg.Spot.MainPartTicks
	PlaySFX(e, cfg.SoundMenuSelect)
	FadeOutMusic(e)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
