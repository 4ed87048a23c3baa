// Package motion holds the per-tick movement rules of the runner: gravity,
// jumping, landing, wall deaths and sprite tumbling. It knows nothing about
// the ECS or the collision backend; colliders arrive through a Probe.
package motion

import (
	"github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
)

// Body is the simulated state of the runner.
type Body struct {
	Position gamemath.Vec3
	Gravity  float64 // vertical velocity, positive is downward
	OnGround bool
	Rotation float64 // sprite tilt in degrees
	State    config.PlayerState
	Visible  bool
}

// NewBody returns an active, visible body at spawn.
func NewBody(spawn gamemath.Vec3) Body {
	b := Body{Position: spawn}
	b.SetState(config.StateActive)
	return b
}

// SetState changes the life state. The sprite is visible exactly while the
// body is active; callers must not set Visible on their own.
func (b *Body) SetState(s config.PlayerState) {
	b.State = s
	b.Visible = s == config.StateActive
}

// Active reports whether the body is simulated.
func (b *Body) Active() bool {
	return b.State == config.StateActive
}

// Kill moves an active body to StateKilled. It returns false when the body
// was already dead, so a death is only ever reported once.
func (b *Body) Kill() bool {
	if !b.Active() {
		return false
	}
	b.SetState(config.StateKilled)
	return true
}

// Respawn puts the body back at spawn and reactivates it. Vertical velocity,
// the ground flag and the sprite tilt carry over from the moment of death.
func (b *Body) Respawn(spawn gamemath.Vec3) {
	b.Position = spawn
	b.SetState(config.StateActive)
}
