package systems

import (
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/automoto/cuberun/shared/motion"
	"github.com/automoto/cuberun/tags"
	"github.com/solarlune/resolv"
)

// SpaceProbe answers motion.Probe queries against a resolv space. Positions
// are in world units and are projected into space pixels with Projection.
type SpaceProbe struct {
	Space      *resolv.Space
	Body       *resolv.Object // excluded from results, moved to each queried position
	Projection gamemath.Projection
	Radius     float64 // world units
}

// Overlapping finds the colliders near position that the body box penetrates.
// The cell check narrows the candidates; every collider is an axis-aligned
// box, so penetration is a strict box overlap and the contact point is the
// closest point on the collider's box to the body centre.
func (p *SpaceProbe) Overlapping(position gamemath.Vec2) []motion.Contact {
	cx, cy := p.Projection.ToSpace(position)
	body := gamemath.Rect{X: cx - p.Body.W/2, Y: cy - p.Body.H/2, W: p.Body.W, H: p.Body.H}
	radius := p.Projection.Length(p.Radius)

	query := resolv.NewObject(cx-radius, cy-radius, radius*2, radius*2)
	p.Space.Add(query)
	defer p.Space.Remove(query)

	collision := query.Check(0, 0)
	if collision == nil {
		return nil
	}

	var contacts []motion.Contact
	for _, o := range collision.Objects {
		if o == p.Body {
			continue
		}
		box := gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
		if !box.IntersectsCircle(cx, cy, radius) || !box.Overlaps(body) {
			continue
		}
		px, py := box.ClosestPoint(cx, cy)
		contacts = append(contacts, motion.Contact{
			Offset:   p.Projection.OffsetToWorld(px-cx, py-cy),
			Platform: o.HasTags(tags.ResolvPlatform),
			Source:   o.Data,
		})
	}
	return contacts
}
