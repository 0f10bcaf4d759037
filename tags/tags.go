package tags

import "github.com/yohamta/donburi"

var (
	Spot   = donburi.NewTag().SetName("Spot")
	Camera = donburi.NewTag().SetName("Camera")
)
