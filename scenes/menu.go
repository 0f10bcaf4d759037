package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stormfell/bombrush/archetypes"
	"github.com/stormfell/bombrush/assets"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/spots"
	"github.com/stormfell/bombrush/systems"
	"github.com/stormfell/bombrush/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu: a side-scrolling backdrop per theme with
// showcase spots the player cycles through before starting a match.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	registry     *spots.Registry
	menuUI       *ui.MenuUI
	lastTheme    spots.LevelType
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	// Update ebitenui
	ms.menuUI.Update()
	ms.refreshUI()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)

	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// The registry asks the world which theme is on screen, so a move after a
	// theme switch trips its stale-row check instead of cycling the old set.
	ms.registry = spots.NewRegistry(spots.WithCurrentLevelType(func() spots.LevelType {
		entry, ok := components.Theme.First(ms.ecs.World)
		if !ok {
			return spots.LevelTypeNone
		}
		return components.Theme.Get(entry).Current
	}))

	catalog, err := assets.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load theme catalog: %v", err)
	}
	ms.registry.SetCatalog(catalog)

	archetypes.Camera.Spawn(ms.ecs)

	// Active-spot changes fan out to the camera, a nav blip and the save file
	ms.registry.OnActiveChanged(func(prev, next spots.Spot) {
		if entry, ok := systems.FindSpotEntry(ms.ecs, next.LevelType(), next.RowIndex()); ok {
			data := components.Spot.Get(entry)
			systems.FlyCameraTo(ms.ecs, data.X, data.Y)
		}
	})
	ms.registry.OnActiveChanged(func(prev, next spots.Spot) {
		ms.saveState()
	})

	// Match scene factory that tears the menu down first
	createMatchScene := func() interface{} {
		themeName := ""
		if entry, ok := components.Theme.First(ms.ecs.World); ok {
			themeName = components.Theme.Get(entry).Name
		}
		ms.teardown()
		return NewMatchScene(ms.sceneChanger, themeName)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.registry, createMatchScene))
	ms.ecs.AddSystem(systems.UpdateSpots)
	ms.ecs.AddSystem(systems.UpdateCamera)
	ms.ecs.AddSystem(systems.NewUpdateDebug(ms.registry))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	// Clickable overlay drives the same paths as the keyboard
	ms.menuUI = ui.NewMenuUI(
		func(step int) { systems.MoveSpot(ms.ecs, ms.registry, step) },
		func(step int) { systems.SwitchTheme(ms.ecs, ms.registry, step) },
		func() { systems.StartMatch(ms.ecs, ms.registry) },
		func() { os.Exit(0) },
	)

	// Restore the last visited theme and spot, falling back to the first theme
	theme := cfg.FirstTheme
	preferredRow := 0
	if saved := systems.LoadMenuState(); saved != nil {
		if _, ok := catalog.ThemeByType(spots.LevelType(saved.Theme)); ok {
			theme = spots.LevelType(saved.Theme)
		}
		preferredRow = saved.ActiveRow
	}
	if info, ok := catalog.ThemeByType(theme); ok {
		if err := systems.ApplyTheme(ms.ecs, ms.registry, info, preferredRow); err != nil {
			log.Printf("[menu] %v", err)
		}
	}
}

// refreshUI mirrors the world state into the overlay labels
func (ms *MenuScene) refreshUI() {
	if entry, ok := components.Theme.First(ms.ecs.World); ok {
		theme := components.Theme.Get(entry)
		ms.menuUI.SetThemeText(theme.Name)

		// Theme switches persist too, not only spot moves
		if theme.Current != ms.lastTheme {
			ms.lastTheme = theme.Current
			ms.saveState()
		}
	}

	character := ""
	if active, ok := ms.registry.ActiveSpot(); ok {
		if entry, found := systems.FindSpotEntry(ms.ecs, active.LevelType(), active.RowIndex()); found {
			character = components.Spot.Get(entry).Character
		}
	}
	ms.menuUI.SetSpotText(character)
}

func (ms *MenuScene) saveState() {
	theme := uint8(cfg.FirstTheme)
	if entry, ok := components.Theme.First(ms.ecs.World); ok {
		theme = uint8(components.Theme.Get(entry).Current)
	}
	state := &systems.SavedMenuState{
		Theme:       theme,
		ActiveRow:   ms.registry.ActiveRow(),
		MusicVolume: systems.MusicVolume(),
		SFXVolume:   systems.SFXVolume(),
		Fullscreen:  ebiten.IsFullscreen(),
	}
	if err := systems.SaveMenuState(state); err != nil {
		log.Printf("[menu] save state: %v", err)
	}
}

// teardown saves where the player left off and drops the spot registrations
// before the scene goes away
func (ms *MenuScene) teardown() {
	ms.saveState()
	ms.registry.Reset()
}
