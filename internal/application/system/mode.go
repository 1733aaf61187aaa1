package system

import (
	"fmt"

	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
)

// ModeContext is what a movement mode may ask of the resolver driving it
type ModeContext interface {
	TryUseJump() bool
	ResetJumps()
	SpeedMultiplier() float64
	JumpStrengthModifier() float64
}

// MovementMode fills a frame's intents for one tick. What it can do is
// declared by the capability interfaces it implements.
type MovementMode interface {
	Name() string
}

// WalkSteerer turns horizontal input into direct movement and a facing
type WalkSteerer interface {
	SteerWalk(f *movement.Frame, in movement.FrameInput, ctx ModeContext)
}

// Jumper owns the vertical axis: gravity, jump starts and holds, and the fall clamp
type Jumper interface {
	ApplyGravity(f *movement.Frame, in movement.FrameInput, ctx ModeContext)
	ProcessJump(f *movement.Frame, in movement.FrameInput, ctx ModeContext)
	LimitFall(f *movement.Frame, in movement.FrameInput, ctx ModeContext)
	MaxJumps() int
}

// Dasher is reserved for burst movement; no shipped mode implements it
type Dasher interface {
	ProcessDash(f *movement.Frame, in movement.FrameInput, ctx ModeContext)
}

// ProcessMode runs every capability mode implements, in order:
// gravity, steering, jump, dash, fall clamp
func ProcessMode(mode MovementMode, f *movement.Frame, in movement.FrameInput, ctx ModeContext) {
	jumper, canJump := mode.(Jumper)
	if canJump {
		jumper.ApplyGravity(f, in, ctx)
	}
	if s, ok := mode.(WalkSteerer); ok {
		s.SteerWalk(f, in, ctx)
	}
	if canJump {
		jumper.ProcessJump(f, in, ctx)
	}
	if d, ok := mode.(Dasher); ok {
		d.ProcessDash(f, in, ctx)
	}
	if canJump {
		jumper.LimitFall(f, in, ctx)
	}
}

// MaxJumps returns the mode's jump budget, or 0 when it cannot jump
func MaxJumps(mode MovementMode) int {
	if j, ok := mode.(Jumper); ok {
		return j.MaxJumps()
	}
	return 0
}

// BuildMode creates the movement mode described by cfg
func BuildMode(name string, cfg config.ModeConfig) (MovementMode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mode %q: %w", name, err)
	}
	switch cfg.Kind {
	case "", "basic":
		return NewBasicMode(name, cfg), nil
	default:
		return nil, fmt.Errorf("mode %q: unknown kind %q", name, cfg.Kind)
	}
}

// BuildModes creates every mode in cfg, keyed by name
func BuildModes(cfg *config.ModesConfig) (map[string]MovementMode, error) {
	modes := make(map[string]MovementMode, len(cfg.Modes))
	for name, mc := range cfg.Modes {
		m, err := BuildMode(name, mc)
		if err != nil {
			return nil, err
		}
		modes[name] = m
	}
	return modes, nil
}
