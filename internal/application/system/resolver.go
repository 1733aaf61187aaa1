package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/logger"
)

// Tick identifies one fixed simulation step
type Tick struct {
	Time      float64
	DeltaTime float64
}

// ResolverConfig is a character's static movement configuration
type ResolverConfig struct {
	Capsule           Capsule
	GroundCheckRadius float64
	Mask              entity.LayerMask
	Triggers          entity.TriggerInteraction
	// SpeedMultiplier and JumpStrengthModifier scale the mode's speeds and jump
	SpeedMultiplier      float64
	JumpStrengthModifier float64
	// DeltaTime is the fixed step AddForce converts forces with
	DeltaTime float64
}

// DefaultResolverConfig returns a config for the default capsule at 60 ticks per second
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Capsule:              DefaultCapsule,
		GroundCheckRadius:    0.3,
		Mask:                 entity.LayerMaskAll,
		Triggers:             entity.TriggersIgnore,
		SpeedMultiplier:      1,
		JumpStrengthModifier: 1,
		DeltaTime:            1.0 / 60,
	}
}

// Resolver runs one character's movement pipeline every tick:
// snapshot, ground probe, mode, collision correction, commit.
type Resolver struct {
	cfg ResolverConfig

	body   BodyMover
	mode   MovementMode
	world  WorldQuery
	camera CameraSource

	pendingVelocityChange mgl64.Vec3
	pendingOverride       movement.OptionalVec3

	jumps            int
	lastFrame        *movement.Frame
	lastGroundedTime float64
	ground           entity.ColliderID
	grounded         bool

	log *slog.Logger
}

// NewResolver creates a resolver. Any collaborator may be nil; the matching
// stage of the pipeline is then skipped.
func NewResolver(cfg ResolverConfig, body BodyMover, mode MovementMode, world WorldQuery, camera CameraSource) *Resolver {
	r := &Resolver{
		cfg:    cfg,
		body:   body,
		mode:   mode,
		world:  world,
		camera: camera,
		log:    logger.L(),
	}
	r.ResetJumps()
	return r
}

// SetLogger replaces the resolver's logger
func (r *Resolver) SetLogger(l *slog.Logger) {
	r.log = l
}

// SetMode swaps the active movement mode and refills the jump budget
func (r *Resolver) SetMode(mode MovementMode) {
	r.mode = mode
	r.ResetJumps()
}

func (r *Resolver) Mode() MovementMode               { return r.mode }
func (r *Resolver) Config() ResolverConfig           { return r.cfg }
func (r *Resolver) LastFrame() *movement.Frame       { return r.lastFrame }
func (r *Resolver) JumpsRemaining() int              { return r.jumps }
func (r *Resolver) LastGroundedTime() float64        { return r.lastGroundedTime }
func (r *Resolver) GroundSurface() entity.ColliderID { return r.ground }

// Process runs the pipeline for one tick and returns the committed frame,
// or nil when no body is attached
func (r *Resolver) Process(input movement.FrameInput, tick Tick) *movement.Frame {
	if r.body == nil {
		return nil
	}

	f := movement.NewFrame(tick.DeltaTime)
	f.Time = tick.Time
	if r.camera != nil {
		f.SetCameraLook(r.camera.Orientation())
	}

	r.snapshot(f)

	// ground
	ground := r.groundProbe().Probe(f.InitialPosition(), movement.Down, r.cfg.GroundCheckRadius, r.cfg.Mask)
	f.SetInitialGrounded(ground.Grounded)
	f.SetInitialGround(ground.Surface)
	if ground.Grounded {
		r.lastGroundedTime = tick.Time
		f.State = f.State.With(movement.Grounded)
	}
	f.LastGroundedTime = r.lastGroundedTime
	if ground.Grounded != r.grounded {
		r.log.Debug("grounding changed", "grounded", ground.Grounded, "surface", ground.Surface, "time", tick.Time)
	}

	f.SetDirectMovement(mgl64.Vec3{})
	f.SetTargetRotation(f.InitialRotation())

	f.SetVelocityChange(r.pendingVelocityChange)
	r.pendingVelocityChange = mgl64.Vec3{}
	if r.pendingOverride.Set {
		f.SetVelocityOverride(r.pendingOverride)
		r.pendingOverride = movement.OptionalVec3{}
	}

	if r.mode != nil {
		ProcessMode(r.mode, f, input, r)
	}

	if r.world != nil && f.DeltaTime() != 0 {
		c := r.corrector().Correct(f)
		if c.Applied {
			r.log.Debug("collision corrected",
				"hits", c.Hits,
				"normal", c.Normal,
				"cut", c.CutDistance,
				"parallel", c.Parallel,
				"perpendicular", c.Perpendicular,
			)
		}
		r.settle(f)
	}

	r.body.Move(f.FinalPosition(), f.FinalRotation())
	r.body.ResetVelocity()

	r.lastFrame = f
	r.ground = f.FinalGround
	r.grounded = ground.Grounded
	return f
}

// snapshot seeds the frame from the body's pose and the previous frame's momentum
func (r *Resolver) snapshot(f *movement.Frame) {
	pos := r.body.PhysicsPosition()
	if !movement.IsFinite(pos) {
		pos = r.body.Transform()
	}
	f.SetInitialPosition(pos)
	f.SetInitialRotation(r.body.Orientation())

	last := r.lastFrame
	if last == nil {
		return
	}
	inertia := last.FinalInertia()
	if !movement.IsFinite(inertia) {
		inertia = mgl64.Vec3{}
	}
	velocity := last.FinalVelocity()
	if !movement.IsFinite(velocity) {
		velocity = mgl64.Vec3{}
	}
	f.SetInitialInertia(inertia)
	f.SetInitialVelocity(velocity)
	f.PreviousState = last.State
}

// settle probes at the final position and lifts a character that sank below
// the ground it stands on
func (r *Resolver) settle(f *movement.Frame) {
	pos := f.FinalPosition()
	res := r.groundProbe().Probe(pos, movement.Down, r.cfg.GroundCheckRadius, r.cfg.Mask)
	f.FinalGrounded = res.Grounded
	f.FinalGround = res.Surface
	if !res.Grounded || f.FinalVelocity().Y() > 0 {
		return
	}
	if lift := res.Hit.Point.Y() - pos.Y(); lift > 0 {
		f.Settle(movement.Up.Mul(lift))
	}
}

func (r *Resolver) groundProbe() GroundProbe {
	return GroundProbe{World: r.world, Self: r.body.HierarchyRoot(), Triggers: r.cfg.Triggers}
}

func (r *Resolver) corrector() CollisionCorrector {
	return CollisionCorrector{
		World:    r.world,
		Self:     r.body.HierarchyRoot(),
		Capsule:  r.cfg.Capsule,
		Mask:     r.cfg.Mask,
		Triggers: r.cfg.Triggers,
	}
}

// AddForce queues force×Δt/mass as a velocity change for the next tick
func (r *Resolver) AddForce(force mgl64.Vec3) {
	mass := 1.0
	if r.body != nil && r.body.Mass() > 0 {
		mass = r.body.Mass()
	}
	r.AddVelocityChange(force.Mul(r.cfg.DeltaTime / mass))
}

// AddVelocityChange queues delta for the next tick; calls accumulate
func (r *Resolver) AddVelocityChange(delta mgl64.Vec3) {
	r.pendingVelocityChange = r.pendingVelocityChange.Add(delta)
}

// OverrideVelocity replaces the inertia next tick; the last call wins
func (r *Resolver) OverrideVelocity(v mgl64.Vec3) {
	r.pendingOverride = movement.Some(v)
}

// TryUseJump spends one jump if any remain
func (r *Resolver) TryUseJump() bool {
	if r.jumps <= 0 {
		return false
	}
	r.jumps--
	return true
}

// ResetJumps refills the jump budget to the mode's maximum
func (r *Resolver) ResetJumps() {
	if r.mode == nil {
		r.jumps = 0
		return
	}
	r.jumps = MaxJumps(r.mode)
}

func (r *Resolver) SpeedMultiplier() float64 {
	if r.cfg.SpeedMultiplier == 0 {
		return 1
	}
	return r.cfg.SpeedMultiplier
}

func (r *Resolver) JumpStrengthModifier() float64 {
	if r.cfg.JumpStrengthModifier == 0 {
		return 1
	}
	return r.cfg.JumpStrengthModifier
}

var _ ModeContext = (*Resolver)(nil)
