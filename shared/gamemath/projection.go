package gamemath

// Projection maps world units (Y up) onto collision space / screen pixels
// (Y down). OriginX, OriginY is the pixel that world (0, 0) lands on.
type Projection struct {
	PixelsPerUnit    float64
	OriginX, OriginY float64
}

// ToSpace converts a world point to pixels.
func (p Projection) ToSpace(v Vec2) (x, y float64) {
	return p.OriginX + v.X*p.PixelsPerUnit, p.OriginY - v.Y*p.PixelsPerUnit
}

// ToWorld converts a pixel position to world units.
func (p Projection) ToWorld(x, y float64) Vec2 {
	return Vec2{
		X: (x - p.OriginX) / p.PixelsPerUnit,
		Y: (p.OriginY - y) / p.PixelsPerUnit,
	}
}

// OffsetToWorld converts a pixel delta to a world delta.
func (p Projection) OffsetToWorld(dx, dy float64) Vec2 {
	return Vec2{X: dx / p.PixelsPerUnit, Y: -dy / p.PixelsPerUnit}
}

// Length converts a world length to pixels.
func (p Projection) Length(units float64) float64 {
	return units * p.PixelsPerUnit
}
