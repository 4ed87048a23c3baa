package components

import (
	"github.com/automoto/cuberun/shared/motion"
	"github.com/yohamta/donburi"
)

// PlayerData is the runner. Body carries everything the movement rules
// touch; the remaining fields are bookkeeping for the HUD and debug overlay.
type PlayerData struct {
	motion.Body
	Attempts int // deaths + 1
	Contacts int // colliders overlapped at the start of the last tick
	BestX    float64

	// Floor is the collider the runner last landed on, nil while airborne.
	// Floating platforms use it to carry the runner.
	Floor *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
