package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the clickable overlay of the main menu. It drives the same
// navigation callbacks the keyboard uses, so pointer and keys never diverge.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnMoveSpot    func(step int)
	OnSwitchTheme func(step int)
	OnPlay        func()
	OnQuit        func()

	// Widget references for updates
	spotLabel  *widget.Label
	themeLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the menu overlay with the given navigation callbacks
func NewMenuUI(onMoveSpot, onSwitchTheme func(step int), onPlay, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnMoveSpot:    onMoveSpot,
		OnSwitchTheme: onSwitchTheme,
		OnPlay:        onPlay,
		OnQuit:        onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout; the backdrop stays visible behind it
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(mui.buildSpotBar())
	rootContainer.AddChild(mui.buildThemeBar())
	rootContainer.AddChild(mui.buildActionBar())

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildSpotBar is the bottom-center carousel: < [character] >
func (mui *MenuUI) buildSpotBar() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 36, Left: 8, Right: 8}
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	bar.AddChild(mui.navButton("<", func() {
		if mui.OnMoveSpot != nil {
			mui.OnMoveSpot(-1)
		}
	}))

	mui.spotLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	bar.AddChild(mui.spotLabel)

	bar.AddChild(mui.navButton(">", func() {
		if mui.OnMoveSpot != nil {
			mui.OnMoveSpot(1)
		}
	}))

	return bar
}

// buildThemeBar is the top-center arena selector: < [arena] >
func (mui *MenuUI) buildThemeBar() *widget.Container {
	padding := widget.Insets{Top: 96, Bottom: 4, Left: 8, Right: 8}
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	bar.AddChild(mui.navButton("<", func() {
		if mui.OnSwitchTheme != nil {
			mui.OnSwitchTheme(-1)
		}
	}))

	mui.themeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 120, 255},
		}),
	)
	bar.AddChild(mui.themeLabel)

	bar.AddChild(mui.navButton(">", func() {
		if mui.OnSwitchTheme != nil {
			mui.OnSwitchTheme(1)
		}
	}))

	return bar
}

// buildActionBar holds Play and Quit in the bottom-right corner
func (mui *MenuUI) buildActionBar() *widget.Container {
	padding := widget.Insets{Bottom: 16, Right: 16}
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Play", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	bar.AddChild(playButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	bar.AddChild(quitButton)

	return bar
}

func (mui *MenuUI) navButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(28, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetSpotText updates the carousel label with the showcased character
func (mui *MenuUI) SetSpotText(s string) {
	mui.spotLabel.Label = s
}

// SetThemeText updates the arena selector label
func (mui *MenuUI) SetThemeText(s string) {
	mui.themeLabel.Label = s
}

// Update ticks the overlay
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the overlay on top of the scene
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
