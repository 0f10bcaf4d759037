package spots

// LevelType tags a spot with the level theme it belongs to.
type LevelType uint8

// LevelTypeNone is the zero value; no real theme uses it.
const LevelTypeNone LevelType = 0

// Spot is a showcase position the main menu can present. The registry holds
// non-owning references: whoever creates a spot must Remove it from the
// registry before tearing it down.
type Spot interface {
	// LevelType returns the theme this spot belongs to.
	LevelType() LevelType

	// RowIndex returns the spot's ordinal within its theme. Rows are unique
	// per theme; duplicate rows make navigation ambiguous but not fatal.
	RowIndex() int

	// EnterIdle starts the spot's idle presentation.
	EnterIdle()

	// StopPresentation halts whatever the spot is currently presenting.
	StopPresentation()
}
