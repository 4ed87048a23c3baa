package systems

import (
	"github.com/automoto/cuberun/components"
	"github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/automoto/cuberun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera locks the camera to the runner's x. There is no smoothing
// and no clamping to the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	camera.Position = gamemath.Vec3{X: player.Position.X, Y: 0, Z: config.Camera.Depth}
}

// screenOffset returns what to add to a space-pixel position to place it on
// a screen of the given size, centred on the camera.
func screenOffset(camera *components.CameraData, proj gamemath.Projection, width, height int) (float64, float64) {
	cx, cy := proj.ToSpace(camera.Position.XY())
	return float64(width)/2 - cx, float64(height)/2 - cy
}
