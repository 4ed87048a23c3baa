package components

import (
	cfg "github.com/automoto/cuberun/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData describes a collider entity.
type PlatformData struct {
	Kind cfg.PlatformKind
}

var Platform = donburi.NewComponentType[PlatformData]()

// FloatData drives a floating platform up and down. Legs alternate between
// the outbound and return tween.
type FloatData struct {
	Legs    [2]*gween.Tween
	Current int
}

var Float = donburi.NewComponentType[FloatData]()
