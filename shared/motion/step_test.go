package motion

import (
	"math"
	"testing"

	"github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
)

// box is an axis-aligned collider in world units.
type box struct {
	minX, minY, maxX, maxY float64
	platform               bool
}

// fakeWorld answers probe queries against a fixed set of boxes for a 1x1 body.
type fakeWorld struct {
	boxes []box
	calls int
}

func (w *fakeWorld) Overlapping(p gamemath.Vec2) []Contact {
	w.calls++
	var out []Contact
	for i, b := range w.boxes {
		if p.X+0.5 <= b.minX || p.X-0.5 >= b.maxX || p.Y+0.5 <= b.minY || p.Y-0.5 >= b.maxY {
			continue
		}
		closest := gamemath.Vec2{
			X: gamemath.ClampFloat(p.X, b.minX, b.maxX),
			Y: gamemath.ClampFloat(p.Y, b.minY, b.maxY),
		}
		out = append(out, Contact{Offset: closest.Sub(p), Platform: b.platform, Source: i})
	}
	return out
}

func defaultParams() Params {
	return Params{
		GravityForce:   20,
		MinimalGravity: 0.01,
		JumpForce:      10,
		Speed:          5,
		RotationSpeed:  175,
	}
}

const dt = 1.0 / 60

func longFloor() box {
	return box{minX: -100, minY: -3, maxX: 100, maxY: -2, platform: true}
}

func TestGroundedBodyKeepsRestingGravity(t *testing.T) {
	w := &fakeWorld{boxes: []box{longFloor()}}
	b := NewBody(gamemath.Vec3{X: 0, Y: -1.499})
	p := defaultParams()

	// first tick lands the body
	Step(&b, dt, Input{}, w, p)
	if !b.OnGround {
		t.Fatalf("expected the body to land, got %+v", b)
	}

	for i := 0; i < 120; i++ {
		y := b.Position.Y
		out := Step(&b, dt, Input{}, w, p)
		if !b.OnGround {
			t.Fatalf("tick %d: lost ground contact", i)
		}
		if b.Gravity != p.MinimalGravity {
			t.Fatalf("tick %d: gravity = %v, want %v", i, b.Gravity, p.MinimalGravity)
		}
		if math.Abs(b.Position.Y-y) > 1e-12 {
			t.Fatalf("tick %d: grounded body moved vertically from %v to %v", i, y, b.Position.Y)
		}
		if out.Floor == nil || out.Killed {
			t.Fatalf("tick %d: unexpected outcome %+v", i, out)
		}
	}
}

func TestJumpSetsExactImpulse(t *testing.T) {
	cases := []struct {
		name    string
		gravity float64
	}{
		{"resting", 0.01},
		{"falling_fast", 42},
		{"already_rising", -3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := &fakeWorld{}
			b := NewBody(gamemath.Vec3{})
			b.OnGround = true
			b.Gravity = c.gravity

			out := Step(&b, dt, Input{Jump: true}, w, defaultParams())
			if !out.Jumped {
				t.Fatal("expected a jump")
			}
			if b.Gravity != -10 {
				t.Fatalf("gravity = %v, want -10", b.Gravity)
			}
			if b.Position.Y <= 0 {
				t.Fatalf("body should rise, y = %v", b.Position.Y)
			}
			if b.OnGround {
				t.Fatal("body should have left the ground")
			}
		})
	}
}

func TestJumpIgnoredInAir(t *testing.T) {
	b := NewBody(gamemath.Vec3{})
	b.Gravity = 2
	out := Step(&b, dt, Input{Jump: true}, &fakeWorld{}, defaultParams())
	if out.Jumped {
		t.Fatal("airborne body must not jump")
	}
	if want := 2 + 20*dt; b.Gravity != want {
		t.Fatalf("gravity = %v, want %v", b.Gravity, want)
	}
}

func TestWorkedExampleIntegrationAndLanding(t *testing.T) {
	p := defaultParams()

	t.Run("free_fall", func(t *testing.T) {
		b := NewBody(gamemath.Vec3{})
		b.Gravity = 15
		Step(&b, 0.1, Input{}, &fakeWorld{}, p)
		if b.Gravity != 17 {
			t.Fatalf("gravity = %v, want 17", b.Gravity)
		}
		if math.Abs(b.Position.Y+1.7) > 1e-12 {
			t.Fatalf("y = %v, want -1.7", b.Position.Y)
		}
	})

	t.Run("floor_found", func(t *testing.T) {
		w := &fakeWorld{boxes: []box{{minX: -10, minY: -2, maxX: 10, maxY: -1, platform: true}}}
		b := NewBody(gamemath.Vec3{})
		b.Gravity = 15
		out := Step(&b, 0.1, Input{}, w, p)
		if out.Floor == nil {
			t.Fatal("expected a floor contact")
		}
		if b.Gravity != 0.01 {
			t.Fatalf("gravity = %v, want 0.01", b.Gravity)
		}
		if b.Position.Y != 0 {
			t.Fatalf("vertical step not undone, y = %v", b.Position.Y)
		}
		if b.Position.X != 0.5 {
			t.Fatalf("x = %v, want 0.5", b.Position.X)
		}
		if !b.OnGround || out.Killed {
			t.Fatalf("unexpected state %+v / %+v", b, out)
		}
	})
}

func TestLateralPlatformKills(t *testing.T) {
	w := &fakeWorld{boxes: []box{{minX: 0.55, minY: -5, maxX: 2, maxY: 5, platform: true}}}
	b := NewBody(gamemath.Vec3{})

	out := Step(&b, dt, Input{}, w, defaultParams())
	if !out.Killed || out.Wall == nil {
		t.Fatalf("expected a wall death, got %+v", out)
	}
	if b.State != config.StateKilled || b.Visible {
		t.Fatalf("killed body must be hidden, got %+v", b)
	}
	if out.Wall.Source != 0 {
		t.Fatalf("wall source = %v, want 0", out.Wall.Source)
	}
}

func TestLateralSceneryDoesNotKill(t *testing.T) {
	w := &fakeWorld{boxes: []box{{minX: 0.55, minY: -5, maxX: 2, maxY: 5, platform: false}}}
	b := NewBody(gamemath.Vec3{})

	out := Step(&b, dt, Input{}, w, defaultParams())
	if out.Killed || !b.Active() {
		t.Fatalf("untagged geometry must not kill, got %+v", out)
	}
}

func TestDeathHappensOnceAndFreezesBody(t *testing.T) {
	wall := box{minX: 0.55, minY: -5, maxX: 2, maxY: 5, platform: true}
	w := &fakeWorld{boxes: []box{wall, wall}}
	b := NewBody(gamemath.Vec3{})
	p := defaultParams()

	out := Step(&b, dt, Input{}, w, p)
	if !out.Killed {
		t.Fatal("expected death")
	}
	if b.Kill() {
		t.Fatal("Kill on a dead body must report false")
	}

	frozen := b
	calls := w.calls
	out = Step(&b, dt, Input{Jump: true}, w, p)
	if out.Killed || out.Jumped || out.Contacts != 0 {
		t.Fatalf("dead body produced an outcome: %+v", out)
	}
	if b != frozen {
		t.Fatalf("dead body changed: %+v -> %+v", frozen, b)
	}
	if w.calls != calls {
		t.Fatal("dead body must not query the world")
	}
}

func TestRespawnResetsPositionAndState(t *testing.T) {
	spawn := gamemath.Vec3{X: 0, Y: -1.5, Z: 0}
	deaths := []gamemath.Vec3{{X: 42, Y: 7}, {X: -3, Y: -20}, {}}
	for _, at := range deaths {
		b := NewBody(at)
		b.Kill()
		b.Respawn(spawn)
		if b.Position != spawn {
			t.Fatalf("position = %+v, want %+v", b.Position, spawn)
		}
		if !b.Active() || !b.Visible {
			t.Fatalf("respawned body must be active and visible, got %+v", b)
		}
	}
}

func TestSpriteRotation(t *testing.T) {
	p := defaultParams()

	t.Run("tumbles_in_air", func(t *testing.T) {
		b := NewBody(gamemath.Vec3{})
		Step(&b, dt, Input{}, &fakeWorld{}, p)
		want := gamemath.NormalizeDegrees(-175 * dt)
		if b.Rotation != want {
			t.Fatalf("rotation = %v, want %v", b.Rotation, want)
		}
	})

	t.Run("snaps_on_ground", func(t *testing.T) {
		w := &fakeWorld{boxes: []box{longFloor()}}
		b := NewBody(gamemath.Vec3{Y: -1.499})
		b.Rotation = 230
		Step(&b, dt, Input{}, w, p)
		if !b.OnGround {
			t.Fatal("expected landing")
		}
		if b.Rotation != 270 {
			t.Fatalf("rotation = %v, want 270", b.Rotation)
		}
	})
}

func TestCeilingStopsRise(t *testing.T) {
	w := &fakeWorld{boxes: []box{{minX: -10, minY: 0.51, maxX: 10, maxY: 2, platform: true}}}
	b := NewBody(gamemath.Vec3{})
	b.OnGround = true

	out := Step(&b, dt, Input{Jump: true}, w, defaultParams())
	if out.Floor == nil {
		t.Fatal("aligned contact above should stop the vertical move")
	}
	if b.Position.Y != 0 || !b.OnGround || b.Gravity != 0.01 {
		t.Fatalf("unexpected body %+v", b)
	}
	if out.Killed {
		t.Fatal("aligned contact must not kill")
	}
}

func TestContactToleranceWidensAlignment(t *testing.T) {
	probe := ProbeFunc(func(p gamemath.Vec2) []Contact {
		return []Contact{{Offset: gamemath.Vec2{X: 1e-9, Y: -0.5}, Platform: true}}
	})

	exact := NewBody(gamemath.Vec3{})
	out := Step(&exact, dt, Input{}, probe, defaultParams())
	if !out.Killed {
		t.Fatal("with no tolerance a tiny lateral offset is a wall")
	}

	p := defaultParams()
	p.ContactTolerance = 1e-6
	loose := NewBody(gamemath.Vec3{})
	out = Step(&loose, dt, Input{}, probe, p)
	if out.Killed || !loose.OnGround {
		t.Fatalf("with tolerance the contact is a floor, got %+v", out)
	}
}
