package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
)

// Character holds what a character was built from
type Character struct {
	Name string
	Mode string

	Capsule system.Capsule
	Spawn   mgl64.Vec3

	// Collider is the character's own body collider in the stage (NoCollider if none)
	Collider entity.ColliderID
}

// StepReport is the outcome of one entity's tick
type StepReport struct {
	ID       EntityID
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Velocity mgl64.Vec3
	State    movement.State
	Grounded bool
	Ground   entity.ColliderID

	// Skipped is set when the entity could not be processed this tick
	Skipped bool
	Reason  string
}
