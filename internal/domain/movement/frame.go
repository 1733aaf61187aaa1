package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
)

// OptionalVec3 is a vector that may be absent
type OptionalVec3 struct {
	Value mgl64.Vec3
	Set   bool
}

// Some returns a present OptionalVec3 holding v
func Some(v mgl64.Vec3) OptionalVec3 {
	return OptionalVec3{Value: v, Set: true}
}

// Frame is one character's movement record for a single tick.
//
// It holds the start-of-tick snapshot, the intents accumulated while processing,
// and the final kinematic state derived from both. Writing any snapshot or intent
// field marks the frame dirty. Reading any final field first recomputes every final
// field from the current snapshot and intents, so finals are never stale.
type Frame struct {
	cameraLook     mgl64.Quat
	cameraLookFlat mgl64.Quat
	cameraForward  mgl64.Vec3

	deltaTime float64

	// Time is the simulation timestamp of this tick in seconds
	Time float64
	// LastGroundedTime is the last tick timestamp at which the character was grounded
	LastGroundedTime float64

	// PreviousState is the locomotion state the character ended the last tick with
	PreviousState State
	// State is built fresh every tick by the movement mode
	State State

	// Start-of-tick snapshot
	initialPosition mgl64.Vec3
	initialRotation mgl64.Quat
	initialInertia  mgl64.Vec3
	initialVelocity mgl64.Vec3
	initialGround   entity.ColliderID
	initialGrounded bool

	// Intents
	directMovement   mgl64.Vec3
	velocityChange   mgl64.Vec3
	velocityOverride OptionalVec3
	targetRotation   mgl64.Quat

	// inertiaCorrection is the velocity absorbed by ForceMovementVector
	inertiaCorrection mgl64.Vec3

	dirty bool

	finalPosition       mgl64.Vec3
	finalMovementVector mgl64.Vec3
	finalRotation       mgl64.Quat
	finalInertia        mgl64.Vec3
	finalVelocity       mgl64.Vec3

	// FinalGround is the surface the character stands on after collision correction
	FinalGround entity.ColliderID
	// FinalGrounded reports whether the character ends the tick on the ground
	FinalGrounded bool
}

// NewFrame creates an empty frame with identity rotations
func NewFrame(deltaTime float64) *Frame {
	f := &Frame{
		deltaTime:       deltaTime,
		initialRotation: mgl64.QuatIdent(),
		targetRotation:  mgl64.QuatIdent(),
		finalRotation:   mgl64.QuatIdent(),
		dirty:           true,
	}
	f.SetCameraLook(mgl64.QuatIdent())
	return f
}

// SetCameraLook sets the steering reference orientation and its derived projections
func (f *Frame) SetCameraLook(q mgl64.Quat) {
	f.cameraLook = q
	f.cameraLookFlat = YawOnly(q)
	f.cameraForward = q.Rotate(Forward)
}

func (f *Frame) CameraLook() mgl64.Quat     { return f.cameraLook }
func (f *Frame) CameraLookFlat() mgl64.Quat { return f.cameraLookFlat }
func (f *Frame) CameraForward() mgl64.Vec3  { return f.cameraForward }

func (f *Frame) DeltaTime() float64 { return f.deltaTime }

func (f *Frame) SetDeltaTime(dt float64) {
	f.deltaTime = dt
	f.dirty = true
}

func (f *Frame) InitialPosition() mgl64.Vec3 { return f.initialPosition }

func (f *Frame) SetInitialPosition(v mgl64.Vec3) {
	f.initialPosition = v
	f.dirty = true
}

func (f *Frame) InitialRotation() mgl64.Quat { return f.initialRotation }

func (f *Frame) SetInitialRotation(q mgl64.Quat) {
	f.initialRotation = q
	f.dirty = true
}

func (f *Frame) InitialInertia() mgl64.Vec3 { return f.initialInertia }

func (f *Frame) SetInitialInertia(v mgl64.Vec3) {
	f.initialInertia = v
	f.dirty = true
}

func (f *Frame) InitialVelocity() mgl64.Vec3 { return f.initialVelocity }

func (f *Frame) SetInitialVelocity(v mgl64.Vec3) {
	f.initialVelocity = v
	f.dirty = true
}

func (f *Frame) InitialGround() entity.ColliderID { return f.initialGround }

func (f *Frame) SetInitialGround(id entity.ColliderID) {
	f.initialGround = id
	f.dirty = true
}

func (f *Frame) InitialGrounded() bool { return f.initialGrounded }

func (f *Frame) SetInitialGrounded(grounded bool) {
	f.initialGrounded = grounded
	f.dirty = true
}

func (f *Frame) DirectMovement() mgl64.Vec3 { return f.directMovement }

func (f *Frame) SetDirectMovement(v mgl64.Vec3) {
	f.directMovement = v
	f.dirty = true
}

func (f *Frame) VelocityChange() mgl64.Vec3 { return f.velocityChange }

func (f *Frame) SetVelocityChange(v mgl64.Vec3) {
	f.velocityChange = v
	f.dirty = true
}

// AddVelocityChange adds v to the velocity change intent
func (f *Frame) AddVelocityChange(v mgl64.Vec3) {
	f.SetVelocityChange(f.velocityChange.Add(v))
}

func (f *Frame) VelocityOverride() OptionalVec3 { return f.velocityOverride }

func (f *Frame) SetVelocityOverride(o OptionalVec3) {
	f.velocityOverride = o
	f.dirty = true
}

func (f *Frame) TargetRotation() mgl64.Quat { return f.targetRotation }

func (f *Frame) SetTargetRotation(q mgl64.Quat) {
	f.targetRotation = q
	f.dirty = true
}

// Dirty reports whether the final fields are pending recomputation
func (f *Frame) Dirty() bool { return f.dirty }

func (f *Frame) FinalPosition() mgl64.Vec3 {
	f.ComputeResults()
	return f.finalPosition
}

func (f *Frame) FinalMovementVector() mgl64.Vec3 {
	f.ComputeResults()
	return f.finalMovementVector
}

func (f *Frame) FinalRotation() mgl64.Quat {
	f.ComputeResults()
	return f.finalRotation
}

func (f *Frame) FinalInertia() mgl64.Vec3 {
	f.ComputeResults()
	return f.finalInertia
}

func (f *Frame) FinalVelocity() mgl64.Vec3 {
	f.ComputeResults()
	return f.finalVelocity
}

// ComputeResults derives the final fields if the frame is dirty.
// It reads only backing fields and never goes through the final accessors,
// so it cannot re-enter itself.
func (f *Frame) ComputeResults() {
	if !f.dirty {
		return
	}
	f.dirty = false

	if f.deltaTime == 0 {
		f.finalInertia = f.initialInertia
		f.finalVelocity = f.initialVelocity
		f.finalMovementVector = mgl64.Vec3{}
		f.finalPosition = f.initialPosition
		f.finalRotation = f.initialRotation
		return
	}

	inertia := f.initialInertia.Add(f.velocityChange)
	if f.velocityOverride.Set {
		inertia = f.velocityOverride.Value
	}
	dt := f.deltaTime

	f.finalVelocity = inertia.Add(f.directMovement.Mul(1 / dt))
	f.finalMovementVector = inertia.Mul(dt).Add(f.directMovement)
	f.finalPosition = f.initialPosition.Add(f.finalMovementVector)
	f.finalRotation = f.targetRotation
	f.finalInertia = inertia.Add(f.inertiaCorrection)
}

// ForceMovementVector makes the final movement vector equal v.
// The difference is absorbed into the direct movement intent. Along the
// correction direction the final inertia then matches the corrected final
// velocity, so next tick starts from the corrected momentum. Components
// perpendicular to the correction keep their inertia.
func (f *Frame) ForceMovementVector(v mgl64.Vec3) {
	delta := v.Sub(f.FinalMovementVector())
	f.directMovement = f.directMovement.Add(delta)
	f.dirty = true
	if f.deltaTime == 0 {
		return
	}
	n := SafeNormalize(delta)
	if n.LenSqr() == 0 {
		return
	}
	f.ComputeResults()
	gap := f.finalVelocity.Sub(f.finalInertia).Dot(n)
	f.inertiaCorrection = f.inertiaCorrection.Add(n.Mul(gap))
	f.dirty = true
}

// Settle shifts the final movement by offset without adding momentum.
// Carried inertia pointing against offset is removed, so a character lifted out
// of the floor stops accumulating downward speed.
func (f *Frame) Settle(offset mgl64.Vec3) {
	n := SafeNormalize(offset)
	if n.LenSqr() == 0 {
		return
	}
	into := f.FinalInertia().Dot(n)
	f.directMovement = f.directMovement.Add(offset)
	if into < 0 {
		f.inertiaCorrection = f.inertiaCorrection.Sub(n.Mul(into))
	}
	f.dirty = true
}
