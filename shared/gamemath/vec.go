package gamemath

import "math"

// Vec2 is a 2D vector in world units, Y up.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector in world units, Y up. Gameplay ignores Z.
type Vec3 struct {
	X, Y, Z float64
}

// Right is the player's forward axis.
var Right = Vec2{X: 1, Y: 0}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }

// WithXY returns v with X and Y replaced.
func (v Vec3) WithXY(p Vec2) Vec3 { return Vec3{X: p.X, Y: p.Y, Z: v.Z} }
