// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/kinetic/internal/application/scene"
	"github.com/younwookim/kinetic/internal/logger"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     *slog.Logger
}

// New creates a new Game with the given initial scene stepped every dt seconds.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64) *Game {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
		log:     logger.L(),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene ending the run with ebiten.Termination gets its OnExit first.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.current.OnExit()
		}
		return err
	}

	if next != nil {
		g.log.Debug("scene transition", "from", sceneName(g.current), "to", sceneName(next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene { return g.current }

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetLogger replaces the manager's logger
func (g *Game) SetLogger(l *slog.Logger) {
	g.log = l
}

func sceneName(s scene.Scene) string {
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "scene"
}
