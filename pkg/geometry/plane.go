package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// InfinitePlane represents a single-sided infinite plane defined by a point and normal.
// Rays only hit it from the side the normal points to.
type InfinitePlane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewInfinitePlane creates a new plane
func NewInfinitePlane(point, normal core.Vec3) *InfinitePlane {
	return &InfinitePlane{
		Point:  point,
		Normal: core.Unit(normal),
	}
}

func (p *InfinitePlane) Type() ShapeType {
	return ShapeTypeInfinitePlane
}

// Intersect tests if a ray intersects with the plane
func (p *InfinitePlane) Intersect(origin, direction core.Vec3) (core.HitInfo, bool) {
	return intersectPlane(p.Point, p.Normal, origin, direction)
}

// intersectPlane solves t = (P-O)·N / (D·N) for a single-sided plane
func intersectPlane(point, normal, origin, direction core.Vec3) (core.HitInfo, bool) {
	denominator := direction.Dot(normal)

	// Parallel, or approaching from behind
	if denominator > planeEpsilon {
		return core.HitInfo{}, false
	}

	dist := point.Subtract(origin).Dot(normal) / denominator
	if dist <= 0 || math.IsInf(dist, 0) || math.IsNaN(dist) {
		return core.HitInfo{}, false
	}

	return core.HitInfo{
		Incoming: direction,
		Distance: dist,
		Point:    origin.Add(direction.Multiply(dist)),
		Normal:   normal,
	}, true
}
