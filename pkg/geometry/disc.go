package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc represents a circular, single-sided disc in 3D space
type Disc struct {
	Center        core.Vec3 // Center of the disc
	Normal        core.Vec3 // Unit normal pointing to the visible side
	RadiusSquared float64
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	return &Disc{
		Center:        center,
		Normal:        core.Unit(normal),
		RadiusSquared: radius * radius,
	}
}

func (d *Disc) Type() ShapeType {
	return ShapeTypeDisc
}

// Radius returns the disc radius
func (d *Disc) Radius() float64 {
	return math.Sqrt(d.RadiusSquared)
}

// Intersect tests the supporting plane, then rejects hits outside the radius
func (d *Disc) Intersect(origin, direction core.Vec3) (core.HitInfo, bool) {
	hit, ok := intersectPlane(d.Center, d.Normal, origin, direction)
	if !ok {
		return core.HitInfo{}, false
	}
	if hit.Point.Subtract(d.Center).LengthSquared() > d.RadiusSquared {
		return core.HitInfo{}, false
	}
	return hit, true
}
