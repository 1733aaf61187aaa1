package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
)

// WorldQuery answers sweep queries against the collision world
type WorldQuery interface {
	SphereCastAll(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask, triggers entity.TriggerInteraction) []entity.Hit
	CapsuleCastAll(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask, triggers entity.TriggerInteraction) []entity.Hit
	// IsChildOf reports whether id is ancestor or one of its descendants
	IsChildOf(id, ancestor entity.ColliderID) bool
}

// BodyMover is the physical body a resolver commits movement to
type BodyMover interface {
	PhysicsPosition() mgl64.Vec3
	Transform() mgl64.Vec3
	Orientation() mgl64.Quat
	Mass() float64
	// HierarchyRoot is the body's own collider; hits on it or below it are ignored
	HierarchyRoot() entity.ColliderID
	Move(pos mgl64.Vec3, rot mgl64.Quat)
	ResetVelocity()
}

// CameraSource provides the steering reference orientation
type CameraSource interface {
	Orientation() mgl64.Quat
}

var (
	_ WorldQuery   = (*entity.Stage)(nil)
	_ BodyMover    = (*entity.Body)(nil)
	_ CameraSource = (*entity.Camera)(nil)
)
