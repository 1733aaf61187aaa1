package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes: +Y is up, +Z is forward, +X is right.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

const flatEpsilon = 1e-9

// IsFinite reports whether every component of v is a finite number
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v has no length
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= flatEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// LerpVec3 interpolates from a to b, clamping t to [0, 1]
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// Lerp interpolates from a to b, clamping t to [0, 1]
func Lerp(a, b, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return a + (b-a)*t
}

// YawOnly strips pitch and roll from q, keeping its heading about +Y.
// When q looks straight up or down, its up vector supplies the heading.
func YawOnly(q mgl64.Quat) mgl64.Quat {
	fwd := q.Rotate(Forward)
	if fwd.X()*fwd.X()+fwd.Z()*fwd.Z() <= flatEpsilon {
		up := q.Rotate(Up)
		if fwd.Y() > 0 {
			up = up.Mul(-1)
		}
		fwd = up
	}
	yaw := math.Atan2(fwd.X(), fwd.Z())
	return mgl64.QuatRotate(yaw, Up)
}

// LookRotation returns the rotation whose forward axis points along forward with the given up.
// ok is false when forward is degenerate or parallel to up.
func LookRotation(forward, up mgl64.Vec3) (q mgl64.Quat, ok bool) {
	z := SafeNormalize(forward)
	if z.LenSqr() == 0 {
		return mgl64.QuatIdent(), false
	}
	x := SafeNormalize(up.Cross(z))
	if x.LenSqr() == 0 {
		return mgl64.QuatIdent(), false
	}
	y := z.Cross(x)
	m := mgl64.Mat3FromCols(x, y, z)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}
