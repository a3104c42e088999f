package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Camera generates primary rays. With no rotation it looks along +x,
// with +y to the right and +z up.
type Camera struct {
	Position core.Vec3
	rotation core.Rotation
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3
}

// NewCamera creates a camera at position with the given orientation
func NewCamera(position core.Vec3, rotation core.Rotation) *Camera {
	return &Camera{
		Position: position,
		rotation: rotation,
		forward:  core.Unit(rotation.Apply(core.NewVec3(1, 0, 0))),
		right:    core.Unit(rotation.Apply(core.NewVec3(0, 1, 0))),
		up:       core.Unit(rotation.Apply(core.NewVec3(0, 0, 1))),
	}
}

// Rotation returns the orientation the camera was built with
func (c *Camera) Rotation() core.Rotation {
	return c.rotation
}

// Basis returns the forward, right and up unit vectors
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	return c.forward, c.right, c.up
}

// RayAtPixel returns the unit direction through pixel (px, py).
// Increasing py moves the ray down in the image, so the vertical term is subtracted.
func (c *Camera) RayAtPixel(px, py int, unitPerPixel float64, halfWidth, halfHeight int) core.Vec3 {
	i := unitPerPixel * float64(px-halfWidth)
	j := unitPerPixel * float64(py-halfHeight)

	dir := c.forward.Add(c.right.Multiply(i)).Subtract(c.up.Multiply(j))
	return core.Unit(dir)
}
