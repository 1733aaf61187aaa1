package main

import (
	"flag"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/kinetic/internal/application/game"
	"github.com/younwookim/kinetic/internal/application/replay"
	"github.com/younwookim/kinetic/internal/application/scene/sandbox"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
	"github.com/younwookim/kinetic/internal/logger"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window and print the final pose")
	stageFlag := flag.String("stage", "", "Stage to load (default: the replay's stage, else demo)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(logger.Config{
		Level:  cfg.Simulation.Logging.Level,
		Format: cfg.Simulation.Logging.Format,
	})

	var data *replay.Data
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	}

	stageName := *stageFlag
	if stageName == "" && data != nil {
		stageName = data.Stage
	}
	if stageName == "" {
		stageName = "demo"
	}

	world, err := buildWorld(loader, cfg, stageName)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}
	dt := cfg.Simulation.Timestep.FixedDelta

	if *headlessFlag {
		if data == nil {
			log.Fatalf("-headless needs -replay")
		}
		if _, err := runHeadless(world, data, dt, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	display := cfg.Simulation.Display
	opts := sandbox.Options{
		StageName:      stageName,
		ScreenW:        display.ScreenWidth,
		ScreenH:        display.ScreenHeight,
		PixelsPerMeter: display.PixelsPerM,
		Timestep:       dt,
		RecordPath:     *recordFlag,
	}
	if data != nil {
		opts.Replayer = replay.NewReplayer(*data)
		dt = opts.Replayer.Timestep(dt)
	}
	g := game.New(sandbox.New(world, opts), display.ScreenWidth, display.ScreenHeight, dt)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Kinetic Sandbox - " + stageName)
	ebiten.SetTPS(int(math.Round(1 / dt)))

	// Esc ends the run with ebiten.Termination, which RunGame reports as nil
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
