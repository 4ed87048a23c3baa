package systems

import (
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances explosion tweens and destroys expired effects.
func UpdateEffects(ecs *ecs.ECS) {
	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		r, _ := ex.Radius.Update(float32(cfg.DT))
		a, _ := ex.Alpha.Update(float32(cfg.DT))
		ex.CurrentRadius = float64(r)
		ex.CurrentAlpha = float64(a)
	})
	updateAutoDestroy(ecs)
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= cfg.DT
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
