package components

import (
	cfg "github.com/stormfell/bombrush/config"
	"github.com/yohamta/donburi"
)

// AudioData stores pending sound effects queued by menu systems
// (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
