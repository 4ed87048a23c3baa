package components

import (
	"github.com/automoto/cuberun/assets"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Projection   gamemath.Projection
}

var Level = donburi.NewComponentType[LevelData]()
