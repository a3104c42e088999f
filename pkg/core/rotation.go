package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a 3D rotation stored as a unit quaternion
type Rotation struct {
	q mgl64.Quat
}

// IdentityRotation returns the rotation that leaves vectors unchanged
func IdentityRotation() Rotation {
	return Rotation{q: mgl64.QuatIdent()}
}

// NewRotationFromEuler builds a rotation from roll (about +x), pitch (about +y)
// and yaw (about +z), applied in that order.
func NewRotationFromEuler(roll, pitch, yaw float64) Rotation {
	return Rotation{q: mgl64.AnglesToQuat(yaw, pitch, roll, mgl64.ZYX).Normalize()}
}

// NewRotationFromAxisAngle builds a rotation of angle radians about axis
func NewRotationFromAxisAngle(axis Vec3, angle float64) Rotation {
	a := axis.Normalize()
	return Rotation{q: mgl64.QuatRotate(angle, mgl64.Vec3{a.X, a.Y, a.Z}).Normalize()}
}

// NewRotationFromQuat builds a rotation from quaternion components.
// The quaternion is normalized; a zero quaternion yields the identity.
func NewRotationFromQuat(w, x, y, z float64) Rotation {
	q := mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}
	if q.Len() == 0 {
		return IdentityRotation()
	}
	return Rotation{q: q.Normalize()}
}

// Quat returns the quaternion components (w, x, y, z)
func (r Rotation) Quat() (w, x, y, z float64) {
	q := r.quat()
	return q.W, q.V[0], q.V[1], q.V[2]
}

// Apply rotates v
func (r Rotation) Apply(v Vec3) Vec3 {
	out := r.quat().Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: out[0], Y: out[1], Z: out[2]}
}

// Compose returns the rotation that applies other first, then r
func (r Rotation) Compose(other Rotation) Rotation {
	return Rotation{q: r.quat().Mul(other.quat()).Normalize()}
}

// quat treats the zero value of Rotation as the identity
func (r Rotation) quat() mgl64.Quat {
	if r.q.W == 0 && r.q.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return r.q
}

// Similarity is a translation, rotation and uniform scale applied in the
// order scale, rotate, translate.
type Similarity struct {
	Translation Vec3
	Rotation    Rotation
	Scale       float64
}

// NewSimilarity creates a similarity transform
func NewSimilarity(translation Vec3, rotation Rotation, scale float64) Similarity {
	return Similarity{Translation: translation, Rotation: rotation, Scale: scale}
}

// Apply maps a local-space point into world space
func (s Similarity) Apply(p Vec3) Vec3 {
	return s.Rotation.Apply(p.Multiply(s.Scale)).Add(s.Translation)
}
