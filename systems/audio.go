package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/stormfell/bombrush/assets"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("[audio] preload %s: %v", path, err)
		}
	}
}

// UpdateAudio processes pending SFX and manages the music fade-out
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect for the next UpdateAudio pass
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("[audio] sfx %s: %v", path, err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts a looping music track, replacing whatever plays now.
// Passing the track that is already playing is a no-op.
func PlayMusic(e *ecs.ECS, path string) {
	initGlobalAudio()

	if globalMusicKey == path && globalMusicPlayer != nil {
		return
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		log.Printf("[audio] music %s: %v", path, err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = path
	globalFadeTimer = 0
}

// FadeOutMusic fades the current track to silence over the configured ticks
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil || globalFadeTimer > 0 {
		return
	}
	globalFadeTimer = cfg.Audio.FadeOutTicks
	globalFadeDuration = cfg.Audio.FadeOutTicks
	globalFadeStart = globalMusicVolume
}

// SetMusicVolume applies a music volume in [0, 1] to the running player too
func SetMusicVolume(v float64) {
	globalMusicVolume = v
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(v)
	}
}

// SetSFXVolume applies an effect volume in [0, 1]
func SetSFXVolume(v float64) {
	globalSFXVolume = v
}

// MusicVolume returns the current music volume
func MusicVolume() float64 { return globalMusicVolume }

// SFXVolume returns the current effect volume
func SFXVolume() float64 { return globalSFXVolume }
