package systems

import (
	"log"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// respawnEpsilon absorbs the rounding left over from summing DT.
const respawnEpsilon = 1e-9

// UpdateRespawn counts down pending respawns in simulated time.
func UpdateRespawn(ecs *ecs.ECS) {
	var ready []*donburi.Entry

	components.Respawn.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Respawn.Get(e)
		r.Remaining -= cfg.DT
		if r.Remaining <= respawnEpsilon {
			ready = append(ready, e)
		}
	})

	for _, e := range ready {
		e.RemoveComponent(components.Respawn)
		RespawnPlayer(ecs, e)
	}
}

// RespawnPlayer puts the runner back at the spawn point and reactivates it.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	player.Respawn(cfg.Player.SpawnPoint)

	if proj, ok := levelProjection(ecs); ok {
		factory.CenterObject(components.Object.Get(e).Object, player.Position.XY(), proj)
	}
	log.Printf("[player] respawned, attempt %d", player.Attempts)
}
