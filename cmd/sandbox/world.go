package main

import (
	"fmt"

	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/ecs"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
)

// buildWorld loads stageName and spawns every configured character on it
func buildWorld(loader *config.Loader, cfg *config.Config, stageName string) (*ecs.World, error) {
	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return nil, err
	}
	stage, err := config.BuildStage(stageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", stageName, err)
	}
	modes, err := system.BuildModes(cfg.Modes)
	if err != nil {
		return nil, fmt.Errorf("failed to build modes: %w", err)
	}

	w := ecs.NewWorld()
	w.Stage = stage
	if _, err := w.BuildCharacters(cfg.Characters, modes, cfg.Simulation.Timestep.FixedDelta); err != nil {
		return nil, fmt.Errorf("failed to build characters: %w", err)
	}
	return w, nil
}
