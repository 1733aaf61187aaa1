package entity

import "github.com/go-gl/mathgl/mgl64"

// Body is the physical body a character's movement is committed to.
// The simulation is kinematic: velocity lives in the movement frames,
// so LinearVelocity and AngularVelocity are zeroed after every move.
type Body struct {
	// Position is the physics-side position
	Position mgl64.Vec3
	// TransformPosition is the scene transform position, used when Position is invalid
	TransformPosition mgl64.Vec3
	Rotation          mgl64.Quat

	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3

	BodyMass float64

	// Root is the collider hierarchy the body belongs to (NoCollider if none)
	Root ColliderID
}

// NewBody creates a body at pos with identity rotation and the given mass
func NewBody(pos mgl64.Vec3, mass float64) *Body {
	return &Body{
		Position:          pos,
		TransformPosition: pos,
		Rotation:          mgl64.QuatIdent(),
		BodyMass:          mass,
	}
}

func (b *Body) PhysicsPosition() mgl64.Vec3 { return b.Position }
func (b *Body) Transform() mgl64.Vec3       { return b.TransformPosition }
func (b *Body) Orientation() mgl64.Quat     { return b.Rotation }
func (b *Body) Mass() float64               { return b.BodyMass }
func (b *Body) HierarchyRoot() ColliderID   { return b.Root }

// Move teleports the body to pos and rot
func (b *Body) Move(pos mgl64.Vec3, rot mgl64.Quat) {
	b.Position = pos
	b.TransformPosition = pos
	b.Rotation = rot
}

// ResetVelocity zeroes residual linear and angular velocity
func (b *Body) ResetVelocity() {
	b.LinearVelocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
}

// CapsuleBox returns the axis-aligned bounds of a capsule standing at the body's position
func (b *Body) CapsuleBox(height, radius float64) Box {
	return Box{
		Min: b.Position.Add(mgl64.Vec3{-radius, 0, -radius}),
		Max: b.Position.Add(mgl64.Vec3{radius, height, radius}),
	}
}
