// Package scene defines the Scene interface for sandbox screens.
//
// Each screen implements the Scene interface to handle its own update logic
// and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a screen of the sandbox
//
// The loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed step of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ebiten.Termination to end the run, any other error to abort it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including when the run ends.
	OnExit()
}
