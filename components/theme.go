package components

import (
	"github.com/stormfell/bombrush/assets"
	"github.com/stormfell/bombrush/spots"
	"github.com/yohamta/donburi"
)

// ThemeData stores the currently showcased theme and its loaded backdrop
// (singleton component)
type ThemeData struct {
	Current  spots.LevelType
	Name     string
	Backdrop *assets.Backdrop
}

var Theme = donburi.NewComponentType[ThemeData]()
