package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
)

const (
	// minInputSqr is the squared input magnitude below which steering is skipped
	minInputSqr = 0.001
	// jumpCutoff is how much upward inertia is removed on the tick a jump ends
	jumpCutoff = 0.9
)

// defaultJumpHold keeps full jump velocity for a short hold, then ends the jump
var defaultJumpHold = movement.NewCurve(
	movement.Keyframe{Time: 0, Value: 1},
	movement.Keyframe{Time: 0.15, Value: 1},
	movement.Keyframe{Time: 0.2, Value: 0},
)

// BasicMode walks, runs and jumps with coyote time and air steering
type BasicMode struct {
	name string

	WalkSpeed float64
	RunSpeed  float64

	JumpStrength  float64
	JumpHoldCurve movement.Curve
	MaxJumpCount  int

	Gravity      float64
	MaxFallSpeed float64 // 0 disables the clamp
	CoyoteTime   float64
	// CoyoteGravityCurve scales gravity by time since last grounded
	CoyoteGravityCurve movement.Curve

	AirSteeringStrength float64
	// AirSteeringCurve scales steering by time since last grounded
	AirSteeringCurve movement.Curve

	GroundedInertiaDamping float64
}

// NewBasicMode creates a basic mode from config
func NewBasicMode(name string, cfg config.ModeConfig) *BasicMode {
	hold := defaultJumpHold
	if len(cfg.Jump.HoldCurve) > 0 {
		hold = config.BuildCurve(cfg.Jump.HoldCurve, 1)
	}
	run := cfg.Speed.Run
	if run == 0 {
		run = cfg.Speed.Walk
	}
	return &BasicMode{
		name:                   name,
		WalkSpeed:              cfg.Speed.Walk,
		RunSpeed:               run,
		JumpStrength:           cfg.Jump.Strength,
		JumpHoldCurve:          hold,
		MaxJumpCount:           cfg.Jump.MaxJumps,
		Gravity:                cfg.Gravity.Strength,
		MaxFallSpeed:           cfg.Gravity.MaxFallSpeed,
		CoyoteTime:             cfg.Gravity.CoyoteTime,
		CoyoteGravityCurve:     config.BuildCurve(cfg.Gravity.CoyoteCurve, 1),
		AirSteeringStrength:    cfg.Air.SteeringStrength,
		AirSteeringCurve:       config.BuildCurve(cfg.Air.SteeringCurve, 1),
		GroundedInertiaDamping: cfg.Grounded.InertiaDamping,
	}
}

func (m *BasicMode) Name() string  { return m.name }
func (m *BasicMode) MaxJumps() int { return m.MaxJumpCount }

func sinceGrounded(f *movement.Frame) float64 {
	return f.Time - f.LastGroundedTime
}

// ApplyGravity adds this tick's gravity. Grounded characters get half gravity
// so they stay pressed to the floor.
func (m *BasicMode) ApplyGravity(f *movement.Frame, _ movement.FrameInput, _ ModeContext) {
	dt := f.DeltaTime()
	grounded := f.State.Has(movement.Grounded)

	scale := 0.5
	if !grounded {
		scale = m.CoyoteGravityCurve.Evaluate(sinceGrounded(f))
	}
	f.AddVelocityChange(movement.Down.Mul(m.Gravity * scale * dt))

	if grounded {
		v := f.InitialVelocity()
		v[1] = -m.Gravity
		f.SetInitialVelocity(v)
	}
}

// SteerWalk damps grounded slide, then moves along the flattened camera
// orientation and turns toward the movement
func (m *BasicMode) SteerWalk(f *movement.Frame, in movement.FrameInput, ctx ModeContext) {
	dt := f.DeltaTime()
	grounded := f.State.Has(movement.Grounded)

	steering := 1.0
	if grounded {
		// only carried momentum is damped; queued impulses apply in full
		inertia := f.InitialInertia()
		target := mgl64.Vec3{0, inertia.Y(), 0}
		damped := movement.LerpVec3(inertia, target, m.GroundedInertiaDamping*dt)
		f.AddVelocityChange(damped.Sub(inertia))
	} else {
		steering *= m.AirSteeringCurve.Evaluate(sinceGrounded(f)) * m.AirSteeringStrength
	}

	if in.Movement.LenSqr() <= minInputSqr || steering <= 0 {
		return
	}

	speed := m.WalkSpeed
	running := grounded && in.Run.Value
	if running {
		speed = m.RunSpeed
	}
	speed *= ctx.SpeedMultiplier()

	world := f.CameraLookFlat().Rotate(in.Movement)
	direct := world.Mul(steering * speed * dt)
	f.SetDirectMovement(f.DirectMovement().Add(direct))

	if look, ok := movement.LookRotation(mgl64.Vec3{direct.X(), 0, direct.Z()}, movement.Up); ok {
		f.SetTargetRotation(nlerp(f.InitialRotation(), look, steering))
	}

	f.State = f.State.With(movement.Moving)
	if running {
		f.State = f.State.With(movement.Running)
	}
}

// ProcessJump refills the budget near the ground, starts or continues a jump
// while the button is held, and cuts upward inertia when a jump ends
func (m *BasicMode) ProcessJump(f *movement.Frame, in movement.FrameInput, ctx ModeContext) {
	prevJumping := f.PreviousState.Has(movement.Jumping)
	if !prevJumping && sinceGrounded(f) <= m.CoyoteTime {
		ctx.ResetJumps()
	}

	if in.Jump.Value {
		m.jump(f, in, ctx, prevJumping)
	}

	if prevJumping && !f.State.Has(movement.Jumping) {
		vy := f.InitialInertia().Y() + f.VelocityChange().Y()
		cut := movement.Lerp(vy, math.Min(vy, 0), jumpCutoff)
		f.AddVelocityChange(mgl64.Vec3{0, cut - vy, 0})
	}
}

func (m *BasicMode) jump(f *movement.Frame, in movement.FrameInput, ctx ModeContext, prevJumping bool) {
	jv := ctx.JumpStrengthModifier() * m.JumpHoldCurve.Evaluate(in.Jump.HoldDuration) * m.JumpStrength
	if jv <= 0 {
		return
	}
	if !prevJumping && !ctx.TryUseJump() {
		return
	}

	// reach jv exactly, whatever the carried vertical inertia was
	vc := f.VelocityChange()
	vc[1] = jv - f.InitialInertia().Y()
	f.SetVelocityChange(vc)

	boost := f.CameraLookFlat().Rotate(in.Movement).Mul(m.WalkSpeed * ctx.SpeedMultiplier() * f.DeltaTime())
	f.AddVelocityChange(mgl64.Vec3{boost.X(), 0, boost.Z()})

	f.State = f.State.With(movement.Jumping).Without(movement.Grounded)
}

// LimitFall caps the vertical displacement at MaxFallSpeed×Δt
func (m *BasicMode) LimitFall(f *movement.Frame, _ movement.FrameInput, _ ModeContext) {
	if m.MaxFallSpeed <= 0 {
		return
	}
	if f.FinalVelocity().Y() >= -m.MaxFallSpeed {
		return
	}
	mv := f.FinalMovementVector()
	f.ForceMovementVector(mgl64.Vec3{mv.X(), -m.MaxFallSpeed * f.DeltaTime(), mv.Z()})
}

// nlerp interpolates rotations along the shorter arc
func nlerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatNlerp(from, to, t)
}

var (
	_ WalkSteerer = (*BasicMode)(nil)
	_ Jumper      = (*BasicMode)(nil)
)
