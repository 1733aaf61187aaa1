package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
)

// contactSlop lets a hit sitting exactly at the proposed travel distance count
// despite rounding in the sweep
const contactSlop = 1e-6

// Capsule is the character's collision shape. The swept capsule is Radius-Skin
// wide; its lower sphere center sits Radius above the feet and its upper one
// Height-Radius above them.
type Capsule struct {
	Height float64
	Radius float64
	Skin   float64
}

// DefaultCapsule is a 2m tall, 0.5m radius capsule with a 0.1m skin
var DefaultCapsule = Capsule{Height: 2, Radius: 0.5, Skin: 0.1}

// Correction describes what the capsule sweep did to a frame
type Correction struct {
	Applied bool
	Hits    int
	// Normal is the renormalized sum of the qualifying hit normals
	Normal      mgl64.Vec3
	MinDistance float64
	CutDistance float64
	// Parallel is the share of the cut opposing the movement direction
	Parallel float64
	// Perpendicular is the remaining share
	Perpendicular float64
	Before        mgl64.Vec3
	After         mgl64.Vec3
}

// CollisionCorrector shortens or redirects a frame's proposed movement so the
// capsule does not tunnel through geometry. It is a single-pass heuristic.
type CollisionCorrector struct {
	World    WorldQuery
	Self     entity.ColliderID
	Capsule  Capsule
	Mask     entity.LayerMask
	Triggers entity.TriggerInteraction
}

// Correct sweeps the capsule along the frame's final movement vector and
// pushes the movement out along the combined obstacle normal.
//
// The sweep starts one proposed movement behind the initial position and
// covers 3× its length, so hits at distance d in [mag, 2×mag] are obstacles
// between the current and the proposed position.
func (c CollisionCorrector) Correct(f *movement.Frame) Correction {
	cast := f.FinalMovementVector()
	mag := cast.Len()
	if c.World == nil || mag <= 1e-9 {
		return Correction{Before: cast, After: cast}
	}
	dir := cast.Mul(1 / mag)

	origin := f.InitialPosition().Sub(cast)
	bottom := origin.Add(movement.Up.Mul(c.Capsule.Radius))
	top := origin.Add(movement.Up.Mul(c.Capsule.Height - c.Capsule.Radius))
	radius := c.Capsule.Radius - c.Capsule.Skin

	hits := c.World.CapsuleCastAll(bottom, top, radius, dir, 3*mag, c.Mask, c.Triggers)

	var (
		normal mgl64.Vec3
		minD   = math.Inf(1)
		count  int
	)
	for _, h := range hits {
		if c.Self != entity.NoCollider && c.World.IsChildOf(h.Collider, c.Self) {
			continue
		}
		if h.Distance < mag-contactSlop || h.Distance > 2*mag {
			continue
		}
		normal = normal.Add(h.Normal)
		minD = math.Min(minD, h.Distance)
		count++
	}
	if count == 0 {
		return Correction{Before: cast, After: cast}
	}

	normal = movement.SafeNormalize(normal)
	cut := 2*mag - minD
	parallel := -normal.Dot(dir)

	corrected := cast.Add(normal.Mul(cut))
	f.ForceMovementVector(corrected)

	return Correction{
		Applied:       true,
		Hits:          count,
		Normal:        normal,
		MinDistance:   minD,
		CutDistance:   cut,
		Parallel:      parallel,
		Perpendicular: 1 - parallel,
		Before:        cast,
		After:         corrected,
	}
}
