package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ExplosionData is the one-shot death effect. Radius and Alpha are driven
// by tweens; X, Y are in space pixels.
type ExplosionData struct {
	X, Y   float64
	Radius *gween.Tween
	Alpha  *gween.Tween

	CurrentRadius float64
	CurrentAlpha  float64
}

var Explosion = donburi.NewComponentType[ExplosionData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining float64 // seconds until destruction
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
