package entity

import "github.com/go-gl/mathgl/mgl64"

// ColliderID is a unique identifier for a collider in a Stage. Zero means none.
type ColliderID uint32

// NoCollider is the zero ColliderID
const NoCollider ColliderID = 0

// LayerMask selects collider layers by bit (bit n = layer n)
type LayerMask uint32

// LayerMaskAll matches every layer
const LayerMaskAll LayerMask = ^LayerMask(0)

// Contains reports whether layer is selected by the mask
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// TriggerInteraction controls whether sweeps report trigger colliders
type TriggerInteraction int

const (
	TriggersIgnore TriggerInteraction = iota
	TriggersCollide
)

// Box is an axis-aligned box
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ClosestPoint returns the point inside the box nearest to p
func (b Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	var c mgl64.Vec3
	for i := 0; i < 3; i++ {
		c[i] = clamp(p[i], b.Min[i], b.Max[i])
	}
	return c
}

// Distance returns the distance from p to the box surface, or 0 when p is inside
func (b Box) Distance(p mgl64.Vec3) float64 {
	return p.Sub(b.ClosestPoint(p)).Len()
}

// Inflate grows the box by r on every side
func (b Box) Inflate(r float64) Box {
	d := mgl64.Vec3{r, r, r}
	return Box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Hit is a single sweep result
type Hit struct {
	// Distance travelled along the sweep direction before contact
	Distance float64
	Point    mgl64.Vec3
	// Normal points from the obstacle toward the swept shape
	Normal   mgl64.Vec3
	Collider ColliderID
	// Root is the topmost ancestor of Collider
	Root ColliderID
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
