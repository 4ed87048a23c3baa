package factory

import (
	"github.com/automoto/cuberun/archetypes"
	"github.com/automoto/cuberun/assets"
	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	levels := assets.NewLevelLoader().MustLoadLevels()

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	return CreateLevelFrom(ecs, &levels[levelIndex], levelIndex)
}

// CreateLevelFrom registers an already loaded level.
func CreateLevelFrom(ecs *ecs.ECS, lvl *assets.Level, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
		LevelIndex:   levelIndex,
		Projection: gamemath.Projection{
			PixelsPerUnit: cfg.Camera.PixelsPerUnit,
			OriginX:       lvl.OriginX,
			OriginY:       lvl.OriginY,
		},
	})
	return level
}
