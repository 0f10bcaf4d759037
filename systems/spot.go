package systems

import (
	"log"

	"github.com/stormfell/bombrush/archetypes"
	"github.com/stormfell/bombrush/assets"
	"github.com/stormfell/bombrush/components"
	"github.com/stormfell/bombrush/spots"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spotHandle adapts a spot entity to the registry's Spot contract. Handles
// compare by entry identity, so re-adding the same entity stays idempotent.
type spotHandle struct {
	entry *donburi.Entry
}

func (h spotHandle) LevelType() spots.LevelType {
	return components.Spot.Get(h.entry).Theme
}

func (h spotHandle) RowIndex() int {
	return components.Spot.Get(h.entry).Row
}

func (h spotHandle) EnterIdle() {
	data := components.Spot.Get(h.entry)
	data.State = components.CinematicIdle
	data.Ticks = 0
}

func (h spotHandle) StopPresentation() {
	data := components.Spot.Get(h.entry)
	data.State = components.CinematicNone
	data.Ticks = 0
}

// SpawnThemeSpots creates one spot entity per backdrop marker and registers
// each with the registry.
func SpawnThemeSpots(e *ecs.ECS, reg *spots.Registry, theme spots.LevelType, backdrop *assets.Backdrop) {
	for _, m := range backdrop.Markers {
		entry := archetypes.Spot.Spawn(e)
		components.Spot.SetValue(entry, components.SpotData{
			Row:       m.Row,
			Theme:     theme,
			State:     components.CinematicNone,
			X:         m.X,
			Y:         m.Y,
			Character: m.Character,
		})
		reg.Add(spotHandle{entry: entry})
	}
}

// DespawnThemeSpots tears down every spot entity. Each handle is removed
// from the registry before its entity dies, so the registry never holds a
// dangling reference.
func DespawnThemeSpots(e *ecs.ECS, reg *spots.Registry) {
	var doomed []*donburi.Entry
	components.Spot.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		reg.Remove(spotHandle{entry: entry})
		entry.Remove()
	}
}

// SeatActiveRow anchors the registry's active row inside the given theme,
// preferring preferredRow when the theme has it and falling back to the
// theme's first row. The seated spot starts idling. Returns false when the
// theme has no spots at all.
func SeatActiveRow(reg *spots.Registry, theme spots.LevelType, preferredRow int) bool {
	candidates := reg.SpotsByLevelType(theme)
	if len(candidates) == 0 {
		log.Printf("[menu] no spots registered for theme %d", theme)
		return false
	}

	seat := candidates[0]
	for _, s := range candidates {
		if s.RowIndex() == preferredRow {
			seat = s
			break
		}
	}
	reg.SetActiveRow(seat.RowIndex())
	seat.EnterIdle()
	return true
}

// UpdateSpots advances per-spot presentation timers.
func UpdateSpots(e *ecs.ECS) {
	components.Spot.Each(e.World, func(entry *donburi.Entry) {
		data := components.Spot.Get(entry)
		if data.State != components.CinematicNone {
			data.Ticks++
		}
	})
}

// FindSpotEntry returns the entity showing the given row in the given theme.
func FindSpotEntry(e *ecs.ECS, theme spots.LevelType, row int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Spot.Each(e.World, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		data := components.Spot.Get(entry)
		if data.Theme == theme && data.Row == row {
			found = entry
		}
	})
	return found, found != nil
}
