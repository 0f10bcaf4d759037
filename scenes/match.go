package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchScene displays the warm-up screen after the menu hands off
type MatchScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	themeName    string
	once         sync.Once
}

// NewMatchScene creates a new match warm-up scene
func NewMatchScene(sc SceneChanger, themeName string) *MatchScene {
	return &MatchScene{sceneChanger: sc, themeName: themeName}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ms.sceneChanger)
	}

	// Audio system
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMatch(ms.sceneChanger, ms.themeName, createMenuScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMatch)
}
