package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData stores the menu camera. While FlyX/FlyY run, the camera follows
// the tween; otherwise it eases toward Target with plain smoothing.
type CameraData struct {
	Position math.Vec2
	Target   math.Vec2
	FlyX     *gween.Tween
	FlyY     *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
