package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
)

// GroundEpsilon is the tolerance past 2×radius within which a hit still counts as ground
const GroundEpsilon = 0.05

// GroundResult is the outcome of a ground probe
type GroundResult struct {
	Grounded bool
	// Surface is the topmost ancestor of the ground collider
	Surface entity.ColliderID
	Hit     entity.Hit
}

// GroundProbe detects the surface below a position with a downward sphere sweep
type GroundProbe struct {
	World    WorldQuery
	Self     entity.ColliderID
	Triggers entity.TriggerInteraction
}

// Probe sweeps a sphere of radius along down, starting 2×radius above position
// and travelling 4×radius. The first hit that is not part of the probe's own
// hierarchy and lies in (0, 2×radius+GroundEpsilon] decides the surface.
func (p GroundProbe) Probe(position, down mgl64.Vec3, radius float64, mask entity.LayerMask) GroundResult {
	if p.World == nil || radius <= 0 {
		return GroundResult{}
	}
	start := position.Sub(down.Mul(2 * radius))
	hits := p.World.SphereCastAll(start, radius, down, 4*radius, mask, p.Triggers)

	limit := 2*radius + GroundEpsilon
	for _, h := range hits {
		if p.Self != entity.NoCollider && p.World.IsChildOf(h.Collider, p.Self) {
			continue
		}
		if h.Distance == 0 || h.Distance > limit {
			continue
		}
		return GroundResult{Grounded: true, Surface: h.Root, Hit: h}
	}
	return GroundResult{}
}
