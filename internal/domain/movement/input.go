package movement

import "github.com/go-gl/mathgl/mgl64"

// ButtonState is the debounced state of one button for a single tick
type ButtonState struct {
	Value        bool
	JustPressed  bool
	JustReleased bool
	// HoldDuration is 0 on the press edge and grows while held
	HoldDuration float64
	// LastHoldDuration is the length of the most recent completed hold
	LastHoldDuration float64
}

// FrameInput is one tick's movement intent. It is read-only to the resolver.
type FrameInput struct {
	// Movement is camera-relative and unnormalized; its magnitude is the intensity
	Movement mgl64.Vec3
	Jump     ButtonState
	Dash     ButtonState
	Run      ButtonState
}
