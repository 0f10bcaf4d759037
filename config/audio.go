package config

// SoundID identifies a sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundThemeSwitch
)

// AudioConfig contains global audio settings
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	FadeOutTicks    int
}

// SoundConfig maps sound effects and music tracks to asset paths
type SoundConfig struct {
	SFXPaths map[SoundID]string
	// MenuMusic plays when a theme has no music entry in the catalog
	MenuMusic string
}

// Audio is the global audio configuration
var Audio AudioConfig

// Sound is the global sound mapping
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
		FadeOutTicks:    45,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
			SoundThemeSwitch:  "audio/sfx/theme_switch.wav",
		},
		MenuMusic: "audio/music/menu.wav",
	}
}
