package systems

import (
	"log"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/automoto/cuberun/shared/motion"
	"github.com/automoto/cuberun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances every active runner by one tick.
func UpdatePlayer(ecs *ecs.ECS) {
	proj, ok := levelProjection(ecs)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	input := getOrCreateInput(ecs)
	jump := motion.Input{Jump: GetAction(input, cfg.ActionJump).Pressed}
	params := motion.ParamsFrom(cfg.Player)

	// Deaths are applied after the query so no component is added mid-iteration.
	var killed []*donburi.Entry

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Active() {
			return
		}
		obj := components.Object.Get(e).Object

		probe := &SpaceProbe{
			Space:      space,
			Body:       obj,
			Projection: proj,
			Radius:     cfg.Player.ProbeRadius,
		}
		out := motion.Step(&player.Body, cfg.DT, jump, probe, params)

		player.Contacts = out.Contacts
		player.Floor = nil
		if out.Floor != nil {
			player.Floor, _ = out.Floor.Source.(*donburi.Entry)
		}
		if player.Position.X > player.BestX {
			player.BestX = player.Position.X
		}
		factory.CenterObject(obj, player.Position.XY(), proj)

		if out.Killed {
			killed = append(killed, e)
		}
	})

	for _, e := range killed {
		KillPlayer(ecs, e)
	}
}

// KillPlayer applies the side effects of a death: the explosion, the
// attempt counter and a single pending respawn. The body must already be
// in StateKilled.
func KillPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Respawn) {
		return
	}
	player := components.Player.Get(e)
	player.Attempts++
	player.Floor = nil

	if proj, ok := levelProjection(ecs); ok {
		x, y := proj.ToSpace(player.Position.XY())
		factory.SpawnExplosion(ecs, x, y)
	}

	e.AddComponent(components.Respawn)
	components.Respawn.SetValue(e, components.RespawnData{Remaining: cfg.Player.RespawnDelay})

	log.Printf("[player] killed at x=%.2f y=%.2f, respawning in %.1fs", player.Position.X, player.Position.Y, cfg.Player.RespawnDelay)
}

func levelProjection(ecs *ecs.ECS) (gamemath.Projection, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return gamemath.Projection{}, false
	}
	return components.Level.Get(levelEntry).Projection, true
}
