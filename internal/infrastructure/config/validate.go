package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks the loaded configuration for values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation != nil && c.Simulation.Timestep.FixedDelta <= 0 {
		errs = append(errs, fmt.Errorf("%w: timestep.fixedDelta must be positive, got %v", ErrInvalid, c.Simulation.Timestep.FixedDelta))
	}
	if c.Modes != nil {
		for name, m := range c.Modes.Modes {
			if err := m.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("mode %q: %w", name, err))
			}
		}
	}
	if c.Characters != nil {
		for i, ch := range c.Characters.Characters {
			if c.Modes == nil {
				errs = append(errs, fmt.Errorf("%w: character %d (%s) references mode %q but no modes are loaded", ErrInvalid, i, ch.Name, ch.Mode))
				continue
			}
			if _, ok := c.Modes.Modes[ch.Mode]; !ok {
				errs = append(errs, fmt.Errorf("%w: character %d (%s) references unknown mode %q", ErrInvalid, i, ch.Name, ch.Mode))
			}
			for _, layer := range ch.Layers {
				if layer < 0 || layer > 31 {
					errs = append(errs, fmt.Errorf("%w: character %d (%s) layer %d out of range", ErrInvalid, i, ch.Name, layer))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single movement mode
func (m ModeConfig) Validate() error {
	switch {
	case m.Kind != "" && m.Kind != "basic":
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, m.Kind)
	case m.Speed.Walk < 0 || m.Speed.Run < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	case m.Jump.MaxJumps < 0:
		return fmt.Errorf("%w: maxJumps must not be negative", ErrInvalid)
	case m.Gravity.MaxFallSpeed < 0:
		return fmt.Errorf("%w: maxFallSpeed must not be negative", ErrInvalid)
	}
	return nil
}

// Validate checks collider boxes and parent links
func (s *StageConfig) Validate() error {
	ids := make(map[uint32]bool, len(s.Colliders))
	for _, c := range s.Colliders {
		if c.ID == 0 {
			return fmt.Errorf("%w: stage %s collider %q has no id", ErrInvalid, s.ID, c.Name)
		}
		if ids[c.ID] {
			return fmt.Errorf("%w: stage %s has duplicate collider id %d", ErrInvalid, s.ID, c.ID)
		}
		ids[c.ID] = true
		if c.Min.X > c.Max.X || c.Min.Y > c.Max.Y || c.Min.Z > c.Max.Z {
			return fmt.Errorf("%w: stage %s collider %d has min above max", ErrInvalid, s.ID, c.ID)
		}
		if c.Layer < 0 || c.Layer > 31 {
			return fmt.Errorf("%w: stage %s collider %d layer %d out of range", ErrInvalid, s.ID, c.ID, c.Layer)
		}
	}
	for _, c := range s.Colliders {
		if c.Parent != 0 && !ids[c.Parent] {
			return fmt.Errorf("%w: stage %s collider %d has unknown parent %d", ErrInvalid, s.ID, c.ID, c.Parent)
		}
	}
	return nil
}
