package systems

import (
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/automoto/cuberun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves floating platforms along their current tween leg
// and flips to the other leg when one finishes. A runner standing on a
// platform moves with it.
func UpdatePlatforms(ecs *ecs.ECS) {
	proj, ok := levelProjection(ecs)
	if !ok {
		return
	}

	components.Float.Each(ecs.World, func(e *donburi.Entry) {
		bob := components.Float.Get(e)
		obj := components.Object.Get(e)

		leg := bob.Legs[bob.Current]
		y, done := leg.Update(float32(cfg.DT))
		dy := float64(y) - obj.Y
		obj.Y = float64(y)
		obj.Update()

		if done {
			leg.Reset()
			bob.Current = 1 - bob.Current
		}

		if dy != 0 {
			carryRiders(ecs, e, dy/proj.PixelsPerUnit, proj)
		}
	})
}

// carryRiders shifts every grounded runner whose floor is platform by
// -dy world units (space Y grows downward).
func carryRiders(ecs *ecs.ECS, platform *donburi.Entry, dy float64, proj gamemath.Projection) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Active() || !player.OnGround || player.Floor == nil || player.Floor.Entity() != platform.Entity() {
			return
		}
		player.Position.Y -= dy
		factory.CenterObject(components.Object.Get(e).Object, player.Position.XY(), proj)
	})
}
