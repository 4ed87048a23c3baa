package archetypes

import (
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		tags.FloatingPlatform,
		components.Platform,
		components.Object,
		components.Float,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Explosion = newArchetype(
		tags.Effect,
		components.Explosion,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
