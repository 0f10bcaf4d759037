package systems

import (
	"math"

	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	donburimath "github.com/yohamta/donburi/features/math"
)

// tickSeconds is the fixed update step the menu systems run at.
const tickSeconds = 1.0 / 60.0

// FlyCameraTo starts a tween flying the camera to a world position. The
// registry observer wires this to active-spot changes.
func FlyCameraTo(e *ecs.ECS, x, y float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Target = donburimath.Vec2{X: x, Y: y}
	camera.FlyX = gween.New(float32(camera.Position.X), float32(x), cfg.Camera.FlyDuration, ease.InOutQuad)
	camera.FlyY = gween.New(float32(camera.Position.Y), float32(y), cfg.Camera.FlyDuration, ease.InOutQuad)
}

// SnapCameraTo places the camera immediately, used when a theme switch
// replaces the whole backdrop and a fly across worlds makes no sense.
func SnapCameraTo(e *ecs.ECS, x, y float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	camera.Position = donburimath.Vec2{X: x, Y: y}
	camera.Target = camera.Position
	camera.FlyX = nil
	camera.FlyY = nil
}

// UpdateCamera ticks the fly tween, or eases toward the target when no tween
// runs, then clamps the camera inside the current backdrop.
func UpdateCamera(e *ecs.ECS) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)

	if camera.FlyX != nil && camera.FlyY != nil {
		x, doneX := camera.FlyX.Update(tickSeconds)
		y, doneY := camera.FlyY.Update(tickSeconds)
		camera.Position.X = float64(x)
		camera.Position.Y = float64(y)
		if doneX && doneY {
			camera.FlyX = nil
			camera.FlyY = nil
		}
	} else {
		dx := camera.Target.X - camera.Position.X
		dy := camera.Target.Y - camera.Position.Y
		if math.Hypot(dx, dy) <= cfg.Camera.SnapDistance {
			camera.Position = camera.Target
		} else {
			camera.Position.X += dx * cfg.Camera.FollowSmoothing
			camera.Position.Y += dy * cfg.Camera.FollowSmoothing
		}
	}

	clampCameraToBackdrop(e, camera)
}

func clampCameraToBackdrop(e *ecs.ECS, camera *components.CameraData) {
	themeEntry, ok := components.Theme.First(e.World)
	if !ok {
		return
	}
	theme := components.Theme.Get(themeEntry)
	if theme.Backdrop == nil {
		return
	}

	screenW := float64(cfg.C.Width)
	screenH := float64(cfg.C.Height)
	camera.Position.X = clampAxis(camera.Position.X, screenW/2, float64(theme.Backdrop.Width)-screenW/2)
	camera.Position.Y = clampAxis(camera.Position.Y, screenH/2, float64(theme.Backdrop.Height)-screenH/2)
}

// clampAxis centers when the backdrop is smaller than the screen on an axis.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
