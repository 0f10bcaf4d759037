package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every menu renderer draws on.
const Default ecs.LayerID = 0

// Config contains the global window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// MenuConfig contains main-menu layout and colors
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ThemeLabelY       float64
	HintMarginBottom  float64
}

// CameraConfig contains menu camera behavior
type CameraConfig struct {
	FlyDuration     float32 // Seconds for the fly tween between spots
	FollowSmoothing float64 // Per-frame lerp factor when no tween is running
	SnapDistance    float64 // Below this distance the camera snaps to target
}

// SpotConfig contains showcase spot presentation values
type SpotConfig struct {
	MarkerRadius  float32
	MarkerColor   color.RGBA
	ActiveColor   color.RGBA
	BobAmplitude  float64 // Pixels of vertical idle bobbing
	BobPeriod     int     // Ticks per full bob cycle
	MainPartTicks int     // Ticks the main part plays before the scene change
	LabelOffsetY  float64
}

// MatchConfig contains the match-starting placeholder screen values
type MatchConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	CountdownTicks  int
}

// C is the global window configuration
var C *Config

// Menu is the global menu configuration
var Menu MenuConfig

// Camera is the global camera configuration
var Camera CameraConfig

// Spot is the global spot configuration
var Spot SpotConfig

// Match is the global match screen configuration
var Match MatchConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "BOMBRUSH",
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{12, 12, 20, 255},
		TitleColor:        color.RGBA{255, 210, 80, 255},
		TextColorNormal:   color.RGBA{200, 200, 200, 255},
		TextColorSelected: color.RGBA{255, 255, 120, 255},
		TitleY:            48,
		ThemeLabelY:       84,
		HintMarginBottom:  14,
	}

	Camera = CameraConfig{
		FlyDuration:     0.8,
		FollowSmoothing: 0.12,
		SnapDistance:    0.5,
	}

	Spot = SpotConfig{
		MarkerRadius:  10,
		MarkerColor:   color.RGBA{120, 120, 160, 255},
		ActiveColor:   color.RGBA{255, 210, 80, 255},
		BobAmplitude:  4,
		BobPeriod:     90,
		MainPartTicks: 45,
		LabelOffsetY:  -24,
	}

	Match = MatchConfig{
		BackgroundColor: color.RGBA{8, 8, 14, 255},
		TitleColor:      color.RGBA{255, 255, 255, 255},
		CountdownTicks:  180,
	}
}
