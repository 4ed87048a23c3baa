package factory

import (
	"github.com/automoto/cuberun/archetypes"
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/automoto/cuberun/shared/motion"
	"github.com/automoto/cuberun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the runner at a world position. proj converts its
// collision box into space pixels.
func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec3, proj gamemath.Projection) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := proj.Length(cfg.Player.Width)
	h := proj.Length(cfg.Player.Height)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Body:     motion.NewBody(spawn),
		Attempts: 1,
		BestX:    spawn.X,
	})

	addToSpace(ecs, obj)
	CenterObject(obj, spawn.XY(), proj)
	return player
}

// CenterObject moves obj so its box is centred on the world point and
// refreshes its cells and shape.
func CenterObject(obj *resolv.Object, center gamemath.Vec2, proj gamemath.Projection) {
	x, y := proj.ToSpace(center)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
	if obj.Shape != nil {
		obj.Shape.SetPosition(obj.X, obj.Y)
	}
}
