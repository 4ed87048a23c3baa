package components

import (
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position gamemath.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
