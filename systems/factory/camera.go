package factory

import (
	"github.com/automoto/cuberun/archetypes"
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: gamemath.Vec3{Z: cfg.Camera.Depth},
	})
	return camera
}
