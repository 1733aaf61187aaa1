package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
	"github.com/younwookim/kinetic/internal/logger"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}

func box(minX, minY, minZ, maxX, maxY, maxZ float64) entity.Box {
	return entity.Box{Min: mgl64.Vec3{minX, minY, minZ}, Max: mgl64.Vec3{maxX, maxY, maxZ}}
}

// createTestStage returns a 40m floor with its top at y=0
func createTestStage() *entity.Stage {
	s := entity.NewStage("test")
	s.AddCollider(entity.Collider{ID: 1, Name: "floor", Box: box(-20, -1, -20, 20, 0, 20)})
	return s
}

func createTestModeConfig() config.ModeConfig {
	return config.ModeConfig{
		Kind:  "basic",
		Speed: config.SpeedConfig{Walk: 6, Run: 10},
		Jump: config.JumpConfig{
			Strength: 8,
			MaxJumps: 2,
			HoldCurve: []config.KeyframeConfig{
				{T: 0, V: 1}, {T: 0.2, V: 1}, {T: 0.25, V: 0},
			},
		},
		Gravity: config.GravityConfig{
			Strength:     20,
			MaxFallSpeed: 18,
			CoyoteTime:   0.1,
		},
		Air:      config.AirConfig{SteeringStrength: 0.6},
		Grounded: config.GroundedConfig{InertiaDamping: 10},
	}
}

func createTestResolver(body *entity.Body, world WorldQuery) *Resolver {
	r := NewResolver(DefaultResolverConfig(), body, NewBasicMode("basic", createTestModeConfig()), world, nil)
	r.SetLogger(logger.Discard())
	return r
}

// fakeContext records what a mode asked of its resolver
type fakeContext struct {
	jumps    int
	maxJumps int
	resets   int
	tries    int
	speed    float64
	jump     float64
}

func newFakeContext(maxJumps int) *fakeContext {
	return &fakeContext{jumps: maxJumps, maxJumps: maxJumps, speed: 1, jump: 1}
}

func (c *fakeContext) TryUseJump() bool {
	c.tries++
	if c.jumps <= 0 {
		return false
	}
	c.jumps--
	return true
}

func (c *fakeContext) ResetJumps() {
	c.resets++
	c.jumps = c.maxJumps
}

func (c *fakeContext) SpeedMultiplier() float64      { return c.speed }
func (c *fakeContext) JumpStrengthModifier() float64 { return c.jump }

// fakeWorld returns fixed hits for every query
type fakeWorld struct {
	sphereHits  []entity.Hit
	capsuleHits []entity.Hit
}

func (w *fakeWorld) SphereCastAll(mgl64.Vec3, float64, mgl64.Vec3, float64, entity.LayerMask, entity.TriggerInteraction) []entity.Hit {
	return w.sphereHits
}

func (w *fakeWorld) CapsuleCastAll(mgl64.Vec3, mgl64.Vec3, float64, mgl64.Vec3, float64, entity.LayerMask, entity.TriggerInteraction) []entity.Hit {
	return w.capsuleHits
}

func (w *fakeWorld) IsChildOf(id, ancestor entity.ColliderID) bool { return id == ancestor }

func pressed(hold float64) movement.ButtonState {
	return movement.ButtonState{Value: true, JustPressed: hold == 0, HoldDuration: hold}
}
