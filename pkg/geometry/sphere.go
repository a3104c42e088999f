package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

func (s *Sphere) Type() ShapeType {
	return ShapeTypeSphere
}

// Intersect tests if a ray intersects with the sphere.
// Only the near root is considered, so rays starting inside the sphere miss it.
func (s *Sphere) Intersect(origin, direction core.Vec3) (core.HitInfo, bool) {
	// Vector from sphere center to ray origin
	oc := origin.Subtract(s.Center)

	// Quadratic t² + bt + c = 0; a is 1 for a unit direction
	b := 2.0 * direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4.0*c
	if discriminant < 0 {
		return core.HitInfo{}, false
	}

	dist := (-b - math.Sqrt(discriminant)) / 2.0
	if dist <= core.HitEpsilon || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return core.HitInfo{}, false
	}

	point := origin.Add(direction.Multiply(dist))
	return core.HitInfo{
		Incoming: direction,
		Distance: dist,
		Point:    point,
		Normal:   core.Unit(point.Subtract(s.Center)),
	}, true
}
