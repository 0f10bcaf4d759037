package components

import "github.com/yohamta/donburi"

// MatchData holds the warm-up screen state shown after the menu hands off
type MatchData struct {
	ThemeName string
	Ticks     int
}

var Match = donburi.NewComponentType[MatchData]()
