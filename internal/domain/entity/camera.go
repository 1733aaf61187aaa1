package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a yaw/pitch view used as the steering reference frame.
// Angles are in radians; yaw turns about +Y and pitch about the camera's +X.
type Camera struct {
	Yaw   float64
	Pitch float64
}

// Orientation returns the camera rotation (yaw applied after pitch)
func (c *Camera) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(c.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Turn adds to the yaw, wrapping it into [-pi, pi).
// A non-finite result leaves the yaw unchanged.
func (c *Camera) Turn(delta float64) {
	yaw := c.Yaw + delta
	if math.IsNaN(yaw) || math.IsInf(yaw, 0) {
		return
	}
	c.Yaw = wrapAngle(yaw)
}

func wrapAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a >= math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
