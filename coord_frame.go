package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// antiParallelEpsilon is the |a × b| below which opposite vectors are
// treated as exactly anti-parallel.
const antiParallelEpsilon = 1e-12

var (
	yAxis = mgl64.Vec3{0, 1, 0}
	xAxis = mgl64.Vec3{1, 0, 0}
)

// CoordFrame describes which world axis is "up" and the rotation that takes
// it onto +Y, the axis all yaw/pitch math is done against.
type CoordFrame struct {
	up    mgl64.Vec3
	toYUp mgl64.Quat
}

// NewCoordFrame builds a frame for the given up axis. The axis is
// normalized; a zero vector is treated as +Y. If up is anti-parallel to +Y
// there is no unique minimal rotation, and a 180° turn about +X is used.
func NewCoordFrame(up mgl64.Vec3) CoordFrame {
	l := up.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		up = yAxis
	} else {
		up = up.Mul(1 / l)
	}

	return CoordFrame{
		up:    up,
		toYUp: rotationBetween(up, yAxis),
	}
}

// rotationBetween returns the shortest-arc rotation taking unit vector a to
// unit vector b.
func rotationBetween(a, b mgl64.Vec3) mgl64.Quat {
	cosTheta := a.Dot(b)
	axis := a.Cross(b)
	if cosTheta < 0 && axis.Len() < antiParallelEpsilon {
		return mgl64.QuatRotate(math.Pi, xAxis)
	}
	// (1 + cos θ, a × b) is the half-angle quaternion scaled by 2cos(θ/2).
	return mgl64.Quat{W: 1 + cosTheta, V: axis}.Normalize()
}

// Up is the world up axis, unit length.
func (f CoordFrame) Up() mgl64.Vec3 {
	return f.up
}

// Rotation is the unit quaternion mapping Up onto +Y.
func (f CoordFrame) Rotation() mgl64.Quat {
	return f.toYUp
}

// ToCanonical rotates a world-space vector into the Y-up frame.
func (f CoordFrame) ToCanonical(v mgl64.Vec3) mgl64.Vec3 {
	return f.toYUp.Rotate(v)
}

// FromCanonical rotates a Y-up vector back into world space.
func (f CoordFrame) FromCanonical(v mgl64.Vec3) mgl64.Vec3 {
	return f.toYUp.Conjugate().Rotate(v)
}
