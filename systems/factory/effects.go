package factory

import (
	"github.com/automoto/cuberun/archetypes"
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnExplosion creates the one-shot death effect centred on (x, y) in space pixels.
func SpawnExplosion(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Explosion.Spawn(ecs)
	duration := float32(cfg.Explosion.Duration)
	components.Explosion.SetValue(entry, components.ExplosionData{
		X:            x,
		Y:            y,
		Radius:       gween.New(4, float32(cfg.Explosion.MaxRadius), duration, ease.OutCubic),
		Alpha:        gween.New(1, 0, duration, ease.InQuad),
		CurrentAlpha: 1,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		Remaining: cfg.Explosion.Duration,
	})
	return entry
}
