package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawMenu renders the backdrop, the showcase spots and the menu chrome.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	camX, camY := width/2, height/2
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camX, camY = camera.Position.X, camera.Position.Y
	}
	offsetX := camX - width/2
	offsetY := camY - height/2

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	themeName := ""
	if themeEntry, ok := components.Theme.First(e.World); ok {
		theme := components.Theme.Get(themeEntry)
		themeName = theme.Name
		if theme.Backdrop != nil {
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(-offsetX, -offsetY)
			screen.DrawImage(theme.Backdrop.Background, drawOp)
		}
	}

	drawSpots(e, screen, offsetX, offsetY)

	// Title
	titleFont := fonts.Title.Get()
	title := "BOMBRUSH"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	// Theme label
	if themeName != "" {
		themeFont := fonts.Bold.Get()
		label := "< " + themeName + " >"
		labelWidth := len(label) * 12
		labelX := int((width - float64(labelWidth)) / 2)
		text.Draw(screen, label, themeFont, labelX, int(cfg.Menu.ThemeLabelY), cfg.Menu.TextColorSelected)
	}

	// Navigation hint at the bottom, phrased for the active input method
	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	if GetOrCreateMenu(e).LastNavFailed {
		hint = "Nothing to show here yet"
	}
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height-cfg.Menu.HintMarginBottom), cfg.Menu.TextColorNormal)
}

func drawSpots(e *ecs.ECS, screen *ebiten.Image, offsetX, offsetY float64) {
	menuFont := fonts.Bold.Get()

	components.Spot.Each(e.World, func(entry *donburi.Entry) {
		data := components.Spot.Get(entry)

		x := data.X - offsetX
		y := data.Y - offsetY

		markerColor := cfg.Spot.MarkerColor
		if data.State != components.CinematicNone {
			markerColor = cfg.Spot.ActiveColor
			y += math.Sin(float64(data.Ticks)/float64(cfg.Spot.BobPeriod)*2*math.Pi) * cfg.Spot.BobAmplitude
		}

		vector.DrawFilledCircle(screen, float32(x), float32(y), cfg.Spot.MarkerRadius, markerColor, true)

		if data.State == components.CinematicMain {
			// Expanding ring while the main part plays
			ring := cfg.Spot.MarkerRadius + float32(data.Ticks%cfg.Spot.MainPartTicks)
			vector.StrokeCircle(screen, float32(x), float32(y), ring, 2, cfg.Spot.ActiveColor, true)
		}

		if data.State != components.CinematicNone && data.Character != "" {
			labelWidth := len(data.Character) * 12
			labelX := int(x) - labelWidth/2
			labelY := int(y + cfg.Spot.LabelOffsetY)
			text.Draw(screen, data.Character, menuFont, labelX, labelY, cfg.Menu.TextColorSelected)
		}
	})
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Character/Arena   Cross: Play"
	case components.InputXbox:
		return "D-Pad: Character/Arena   A: Play"
	}
	return "Left/Right: Character   Up/Down: Arena   Enter: Play"
}
