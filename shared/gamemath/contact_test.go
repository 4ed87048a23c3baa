package gamemath

import (
	"math"
	"testing"
)

func TestClosestPoint(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 10}
	cases := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"above", 25, 0, 25, 20},
		{"below", 25, 50, 25, 30},
		{"left", 0, 25, 10, 25},
		{"right_above_corner", 60, 0, 40, 20},
		{"inside", 15, 25, 15, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := r.ClosestPoint(c.px, c.py)
			if x != c.wantX || y != c.wantY {
				t.Fatalf("ClosestPoint(%v, %v) = (%v, %v), want (%v, %v)", c.px, c.py, x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestAlignmentDotClassification(t *testing.T) {
	cases := []struct {
		name    string
		offset  Vec2
		aligned bool
	}{
		{"floor_straight_below", Vec2{X: 0, Y: -0.5}, true},
		{"ceiling_straight_above", Vec2{X: 0, Y: 0.5}, true},
		{"inside_collider", Vec2{}, true},
		{"wall_ahead", Vec2{X: 0.5, Y: 0}, false},
		{"corner_below_ahead", Vec2{X: 0.01, Y: -0.5}, false},
		{"wall_behind", Vec2{X: -0.5, Y: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dot := AlignmentDot(c.offset)
			if got := IsAligned(dot, 0); got != c.aligned {
				t.Fatalf("IsAligned(%v) = %v, want %v", dot, got, c.aligned)
			}
			if IsLateral(dot, 0) == c.aligned {
				t.Fatalf("IsLateral must be the complement of IsAligned")
			}
		})
	}
}

func TestAlignmentTolerance(t *testing.T) {
	dot := AlignmentDot(Vec2{X: 1e-9, Y: -1})
	if IsAligned(dot, 0) {
		t.Fatalf("exact comparison should treat %v as lateral", dot)
	}
	if !IsAligned(dot, 1e-6) {
		t.Fatalf("tolerance 1e-6 should treat %v as aligned", dot)
	}
}

func TestRectOverlapsAndCircle(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Fatal("touching edges must not overlap")
	}
	if !a.Overlaps(Rect{X: 9, Y: 9, W: 5, H: 5}) {
		t.Fatal("expected overlap")
	}
	if !a.IntersectsCircle(15, 5, 5) {
		t.Fatal("circle touching the right edge should intersect")
	}
	if a.IntersectsCircle(20, 20, 5) {
		t.Fatal("far circle should not intersect")
	}
}

func TestSnapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{-44, 0},
		{-46, -90},
		{-135, -180},
		{-200, -180},
		{91, 90},
	}
	for _, c := range cases {
		if got := SnapAngle(c.in, 90); got != c.want {
			t.Errorf("SnapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	if got := NormalizeDegrees(-90); got != 270 {
		t.Errorf("NormalizeDegrees(-90) = %v, want 270", got)
	}
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %v", got)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{PixelsPerUnit: 32, OriginX: 64, OriginY: 320}
	x, y := p.ToSpace(Vec2{X: 0, Y: -1.5})
	if x != 64 || y != 368 {
		t.Fatalf("ToSpace = (%v, %v), want (64, 368)", x, y)
	}
	w := p.ToWorld(x, y)
	if w.X != 0 || w.Y != -1.5 {
		t.Fatalf("ToWorld = %+v", w)
	}
	if off := p.OffsetToWorld(0, 16); off.X != 0 || off.Y != -0.5 {
		t.Fatalf("OffsetToWorld = %+v", off)
	}
}
