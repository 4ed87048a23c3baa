package gamemath

import "math"

// Rect is an axis-aligned box given by its top-left corner and size, in
// space (pixel) coordinates where Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClosestPoint returns the point of r nearest to (px, py). Points inside r
// are their own closest point.
func (r Rect) ClosestPoint(px, py float64) (float64, float64) {
	return ClampFloat(px, r.X, r.X+r.W), ClampFloat(py, r.Y, r.Y+r.H)
}

// Overlaps reports whether r and o share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// IntersectsCircle reports whether the disc at (cx, cy) with radius touches r.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	x, y := r.ClosestPoint(cx, cy)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// AlignmentDot is the dot product between the forward axis and the
// direction from a body to the nearest point of a collider. offset is
// closest-point minus body position.
func AlignmentDot(offset Vec2) float64 {
	return Right.Dot(offset.Normalize())
}

// IsAligned reports whether the contact lies straight above or below the
// body. With tolerance 0 only an exact zero dot qualifies.
func IsAligned(dot, tolerance float64) bool {
	return math.Abs(dot) <= tolerance
}

// IsLateral is the complement of IsAligned: the contact is to the side.
func IsLateral(dot, tolerance float64) bool {
	return !IsAligned(dot, tolerance)
}
