package motion

import (
	"github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
)

// Contact is a collider the body currently penetrates.
type Contact struct {
	// Offset is the nearest point of the collider minus the body position.
	Offset   gamemath.Vec2
	Platform bool
	// Source identifies the collider for the caller; Step never reads it.
	Source any
}

// Probe answers "what does the body overlap if it stands at position".
// Implementations exclude the body's own collider and only return
// colliders within the probe radius whose shapes actually penetrate the body.
type Probe interface {
	Overlapping(position gamemath.Vec2) []Contact
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func(position gamemath.Vec2) []Contact

func (f ProbeFunc) Overlapping(position gamemath.Vec2) []Contact { return f(position) }

// Params are the movement constants.
type Params struct {
	GravityForce     float64
	MinimalGravity   float64
	JumpForce        float64
	Speed            float64
	RotationSpeed    float64
	ContactTolerance float64
}

// ParamsFrom copies the movement constants out of a player config.
func ParamsFrom(c config.PlayerConfig) Params {
	return Params{
		GravityForce:     c.GravityForce,
		MinimalGravity:   c.MinimalGravity,
		JumpForce:        c.JumpForce,
		Speed:            c.Speed,
		RotationSpeed:    c.RotationSpeed,
		ContactTolerance: c.ContactTolerance,
	}
}

// Input is the player intent for one tick.
type Input struct {
	Jump bool
}

// Outcome reports what happened during a Step.
type Outcome struct {
	Contacts int      // colliders overlapped at the start of the tick
	Jumped   bool
	Floor    *Contact // aligned contact that stopped the vertical move
	Wall     *Contact // platform contact that killed the body
	Killed   bool
}

// Step advances an active body by dt seconds. Inactive bodies are left untouched.
func Step(b *Body, dt float64, in Input, probe Probe, p Params) Outcome {
	var out Outcome
	if !b.Active() {
		return out
	}

	out.Contacts = len(probe.Overlapping(b.Position.XY()))

	b.Gravity += p.GravityForce * dt

	if in.Jump && b.OnGround {
		b.Gravity = -p.JumpForce
		out.Jumped = true
	}

	out.Floor = moveVertical(b, dt, probe, p)

	b.Position.X += p.Speed * dt

	if wall := findLateralPlatform(b, probe, p.ContactTolerance); wall != nil {
		out.Wall = wall
		out.Killed = b.Kill()
	}

	rotateSprite(b, dt, p.RotationSpeed)
	return out
}

// moveVertical applies the gravity step and lands the body on the first
// vertically aligned contact, undoing the step.
func moveVertical(b *Body, dt float64, probe Probe, p Params) *Contact {
	dy := -b.Gravity * dt
	b.Position.Y += dy

	floor := findFirst(probe.Overlapping(b.Position.XY()), func(c Contact) bool {
		return gamemath.IsAligned(gamemath.AlignmentDot(c.Offset), p.ContactTolerance)
	})
	if floor == nil {
		b.OnGround = false
		return nil
	}

	b.Position.Y -= dy
	b.OnGround = true
	b.Gravity = p.MinimalGravity
	return floor
}

func findLateralPlatform(b *Body, probe Probe, tolerance float64) *Contact {
	return findFirst(probe.Overlapping(b.Position.XY()), func(c Contact) bool {
		return c.Platform && gamemath.IsLateral(gamemath.AlignmentDot(c.Offset), tolerance)
	})
}

func findFirst(contacts []Contact, match func(Contact) bool) *Contact {
	for i := range contacts {
		if match(contacts[i]) {
			c := contacts[i]
			return &c
		}
	}
	return nil
}

// rotateSprite snaps a grounded sprite to the nearest quarter turn and
// tumbles an airborne one.
func rotateSprite(b *Body, dt, speed float64) {
	if b.OnGround {
		b.Rotation = gamemath.NormalizeDegrees(gamemath.SnapAngle(b.Rotation, 90))
		return
	}
	b.Rotation = gamemath.NormalizeDegrees(b.Rotation - speed*dt)
}
