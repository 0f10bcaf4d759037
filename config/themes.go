package config

import "github.com/stormfell/bombrush/spots"

// Level themes the menu can showcase. Values must match the embedded theme
// catalog (assets/catalog.json).
const (
	ThemeRuins   spots.LevelType = 1
	ThemeHarbor  spots.LevelType = 2
	ThemeGlacier spots.LevelType = 3
)

// FirstTheme is where a fresh session starts before any saved state loads.
const FirstTheme = ThemeRuins
