package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
)

// Vec converts a config vector to mgl64
func (v Vec3Config) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// BuildCurve converts keyframes to a curve. An empty list becomes Constant(fallback).
func BuildCurve(keys []KeyframeConfig, fallback float64) movement.Curve {
	if len(keys) == 0 {
		return movement.Constant(fallback)
	}
	kf := make([]movement.Keyframe, len(keys))
	for i, k := range keys {
		kf[i] = movement.Keyframe{Time: k.T, Value: k.V}
	}
	return movement.NewCurve(kf...)
}

// BuildStage validates cfg and creates the stage it describes
func BuildStage(cfg *StageConfig) (*entity.Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}
	stage := entity.NewStage(name)
	stage.Spawn = cfg.Spawn.Vec()
	for _, c := range cfg.Colliders {
		stage.AddCollider(entity.Collider{
			ID:      entity.ColliderID(c.ID),
			Name:    c.Name,
			Parent:  entity.ColliderID(c.Parent),
			Layer:   c.Layer,
			Trigger: c.Trigger,
			Box:     entity.Box{Min: c.Min.Vec(), Max: c.Max.Vec()},
		})
	}
	return stage, nil
}

// Mask returns the character's layer mask (all layers when none are listed)
func (c CharacterConfig) Mask() entity.LayerMask {
	if len(c.Layers) == 0 {
		return entity.LayerMaskAll
	}
	var m entity.LayerMask
	for _, l := range c.Layers {
		if l >= 0 && l <= 31 {
			m |= 1 << uint(l)
		}
	}
	return m
}

// CameraYaw returns the configured camera yaw in radians
func (c CharacterConfig) CameraYaw() float64 {
	return c.CameraYawDeg * math.Pi / 180
}
