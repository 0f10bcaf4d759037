package components

import (
	"github.com/stormfell/bombrush/spots"
	"github.com/yohamta/donburi"
)

// CinematicState is the presentation phase of a showcase spot
type CinematicState int

const (
	// CinematicNone - the spot presents nothing
	CinematicNone CinematicState = iota
	// CinematicIdle - the spot loops its idle presentation
	CinematicIdle
	// CinematicMain - the spot plays its main part before the match starts
	CinematicMain
)

// SpotData stores one showcase spot placed on the menu backdrop
type SpotData struct {
	Row       int             // Ordinal within the theme, unique per theme
	Theme     spots.LevelType // Theme the spot belongs to
	State     CinematicState
	X, Y      float64 // World position on the backdrop
	Character string  // Showcased character name
	Ticks     int     // Ticks spent in the current state
}

var Spot = donburi.NewComponentType[SpotData]()
