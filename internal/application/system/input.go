package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/kinetic/internal/domain/movement"
)

// RawInput is one tick of undebounced device state
type RawInput struct {
	MoveX float64 // +X is right
	MoveZ float64 // +Z is forward
	Jump  bool
	Dash  bool
	Run   bool
}

// ButtonTracker derives edges and hold durations from a button's level
type ButtonTracker struct {
	state movement.ButtonState
}

// Update advances the tracker by one tick
func (b *ButtonTracker) Update(pressed bool, dt float64) movement.ButtonState {
	prev := b.state.Value
	s := b.state
	s.Value = pressed
	s.JustPressed = pressed && !prev
	s.JustReleased = !pressed && prev

	switch {
	case s.JustPressed:
		s.HoldDuration = 0
	case pressed:
		s.HoldDuration += dt
	case s.JustReleased:
		s.LastHoldDuration = s.HoldDuration
		s.HoldDuration = 0
	default:
		s.HoldDuration = 0
	}

	b.state = s
	return s
}

// State returns the last computed state
func (b *ButtonTracker) State() movement.ButtonState {
	return b.state
}

// InputSystem turns raw device state into one FrameInput per tick
type InputSystem struct {
	jump ButtonTracker
	dash ButtonTracker
	run  ButtonTracker
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Sample debounces raw into this tick's FrameInput. Movement longer than 1
// (keyboard diagonals) is scaled back to unit length.
func (s *InputSystem) Sample(raw RawInput, dt float64) movement.FrameInput {
	move := mgl64.Vec3{raw.MoveX, 0, raw.MoveZ}
	if move.LenSqr() > 1 {
		move = move.Normalize()
	}
	return movement.FrameInput{
		Movement: move,
		Jump:     s.jump.Update(raw.Jump, dt),
		Dash:     s.dash.Update(raw.Dash, dt),
		Run:      s.run.Update(raw.Run, dt),
	}
}

// ReadKeyboard reads the current key state
func (s *InputSystem) ReadKeyboard() RawInput {
	var raw RawInput
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		raw.MoveZ++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		raw.MoveZ--
	}
	raw.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	raw.Run = ebiten.IsKeyPressed(ebiten.KeyShift)
	raw.Dash = ebiten.IsKeyPressed(ebiten.KeyE)
	return raw
}
