package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

type ShapeType string

const (
	ShapeTypeSphere        ShapeType = "sphere"
	ShapeTypeInfinitePlane ShapeType = "plane"
	ShapeTypeDisc          ShapeType = "disc"
)

// Shape interface for objects that can be hit by rays.
// The set of shapes is closed: Sphere, InfinitePlane and Disc.
type Shape interface {
	Type() ShapeType

	// Intersect returns the hit of a ray with a unit direction, or false on a miss.
	// Misses include parallel rays, negative discriminants and hits behind the origin.
	Intersect(origin, direction core.Vec3) (core.HitInfo, bool)
}

// planeEpsilon is the largest D·N accepted by the single-sided plane test
const planeEpsilon = -1e-4
