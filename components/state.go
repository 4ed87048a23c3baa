package components

import "github.com/yohamta/donburi"

// RespawnData is attached to a killed player. Remaining counts down in
// simulated seconds; the player comes back when it reaches zero.
type RespawnData struct {
	Remaining float64
}

var Respawn = donburi.NewComponentType[RespawnData]()
