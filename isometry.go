package flycam

import "github.com/go-gl/mathgl/mgl64"

// Isometry is a rotation followed by a translation.
type Isometry struct {
	Rotation    mgl64.Quat
	Translation mgl64.Vec3
}

// isometryFromMat4 splits a rigid homogeneous matrix into rotation and
// translation. m must have an orthonormal upper 3x3.
func isometryFromMat4(m mgl64.Mat4) Isometry {
	return Isometry{
		Rotation:    mgl64.Mat4ToQuat(m).Normalize(),
		Translation: m.Col(3).Vec3(),
	}
}

// TransformPoint applies the rotation then the translation to p.
func (iso Isometry) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Rotate(p).Add(iso.Translation)
}

// TransformVector applies only the rotation to v.
func (iso Isometry) TransformVector(v mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Rotate(v)
}

// Inverse undoes iso.
func (iso Isometry) Inverse() Isometry {
	inv := iso.Rotation.Conjugate()
	return Isometry{
		Rotation:    inv,
		Translation: inv.Rotate(iso.Translation).Mul(-1),
	}
}

func (iso Isometry) Mat4() mgl64.Mat4 {
	t := iso.Translation
	return mgl64.Translate3D(t[0], t[1], t[2]).Mul4(iso.Rotation.Mat4())
}
