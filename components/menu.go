package components

import "github.com/yohamta/donburi"

// MenuData stores transient main-menu state
type MenuData struct {
	Starting      bool // Main part is playing, scene change is pending
	StartTicks    int  // Ticks left until the scene change fires
	LastNavFailed bool // Last spot move found nothing to show, surfaced as a hint
}

var Menu = donburi.NewComponentType[MenuData]()
