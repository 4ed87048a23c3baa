package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Scenery          = donburi.NewTag().SetName("Scenery")
	Effect           = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvScenery  = "scenery"
	ResolvFloating = "floating"
)
