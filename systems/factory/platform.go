package factory

import (
	"github.com/automoto/cuberun/archetypes"
	"github.com/automoto/cuberun/assets"
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns the entity matching the spawn's kind.
func CreatePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	switch spawn.Kind {
	case cfg.PlatformFloating:
		return CreateFloatingPlatform(ecs, spawn.X, spawn.Y, spawn.Width, spawn.Height)
	case cfg.Scenery:
		return CreateScenery(ecs, spawn.X, spawn.Y, spawn.Width, spawn.Height)
	}
	return CreateStaticPlatform(ecs, spawn.X, spawn.Y, spawn.Width, spawn.Height)
}

func CreateStaticPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	attachCollider(ecs, platform, x, y, w, h, tags.ResolvPlatform)
	components.Platform.SetValue(platform, components.PlatformData{Kind: cfg.PlatformStatic})
	return platform
}

func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	attachCollider(ecs, platform, x, y, w, h, tags.ResolvPlatform, tags.ResolvFloating)
	components.Platform.SetValue(platform, components.PlatformData{Kind: cfg.PlatformFloating})

	// The floating platform bobs between its spawn height and FloatDistance above it.
	top := float32(y - cfg.Platform.FloatDistance)
	duration := float32(cfg.Platform.FloatDuration)
	components.Float.SetValue(platform, components.FloatData{
		Legs: [2]*gween.Tween{
			gween.New(float32(y), top, duration, ease.InOutSine),
			gween.New(top, float32(y), duration, ease.InOutSine),
		},
	})
	return platform
}

// CreateScenery spawns untagged geometry: it can be stood on but never kills.
func CreateScenery(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)
	attachCollider(ecs, scenery, x, y, w, h, tags.ResolvScenery)
	components.Platform.SetValue(scenery, components.PlatformData{Kind: cfg.Scenery})
	return scenery
}

func attachCollider(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}
