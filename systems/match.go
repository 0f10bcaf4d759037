package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMatch counts the warm-up down and returns to the menu on Back
func NewUpdateMatch(sceneChanger SceneChanger, themeName string, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		match := getOrCreateMatch(e, themeName)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			(match.Ticks == 0 && GetAction(input, cfg.ActionMenuSelect).JustPressed) {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		if match.Ticks > 0 {
			match.Ticks--
		}
	}
}

// DrawMatch renders the warm-up countdown screen
func DrawMatch(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Match.BackgroundColor,
		false,
	)

	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	titleFont := fonts.Title.Get()
	title := match.ThemeName
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height/2)-24, cfg.Match.TitleColor)

	bodyFont := fonts.Body.Get()
	var line string
	if match.Ticks > 0 {
		line = fmt.Sprintf("Match starting in %d...", match.Ticks/60+1)
	} else {
		line = "Press Enter to return to the menu"
	}
	lineWidth := len(line) * 8
	lineX := int((width - float64(lineWidth)) / 2)
	text.Draw(screen, line, bodyFont, lineX, int(height/2)+16, cfg.Menu.TextColorNormal)
}

func getOrCreateMatch(e *ecs.ECS, themeName string) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Match))
		components.Match.SetValue(entry, components.MatchData{
			ThemeName: themeName,
			Ticks:     cfg.Match.CountdownTicks,
		})
	}
	return components.Match.Get(entry)
}
