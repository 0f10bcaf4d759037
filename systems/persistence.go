package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedMenuState represents the menu state stored on disk
type SavedMenuState struct {
	Theme       uint8   `json:"theme"`
	ActiveRow   int     `json:"activeRow"`
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for menu state storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bombrush",
	})
	if err != nil {
		log.Printf("[persist] could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadMenuState loads the saved menu state from disk. A missing or corrupt
// item comes back as nil, not an error the caller must handle.
func LoadMenuState() *SavedMenuState {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("menu_state")
	if err != nil {
		log.Printf("[persist] could not load menu state: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var state SavedMenuState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("[persist] could not parse saved menu state: %v", err)
		return nil
	}
	return &state
}

// SaveMenuState saves the menu state to disk
func SaveMenuState(s *SavedMenuState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("menu_state", data); err != nil {
		log.Printf("[persist] could not save menu state: %v", err)
		return err
	}
	return nil
}

// ApplySavedAudio pushes saved volumes into the audio state
func ApplySavedAudio(s *SavedMenuState) {
	if s == nil {
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
}
