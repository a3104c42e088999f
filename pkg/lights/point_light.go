package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits from a single position with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate implements core.Light
func (pl *PointLight) Illuminate(point, normal core.Vec3, scene core.Scene, sampler core.Sampler) core.Vec3 {
	return illuminateFrom(pl.Position, pl.Intensity, point, normal, scene)
}

// illuminateFrom evaluates a point emitter at position lighting point.
// The shadow ray is cast from the light toward the point; anything hit more
// than occlusionEpsilon before the point blocks it.
func illuminateFrom(position, intensity, point, normal core.Vec3, scene core.Scene) core.Vec3 {
	dirToPoint, dist := point.Subtract(position).NormalizeWithLength()

	attenuation := -normal.Dot(dirToPoint)
	if attenuation <= 0 {
		return scene.Skylight()
	}

	hit, isHit := scene.Raycast(position, dirToPoint)
	if !isHit || hit.Distance+occlusionEpsilon < dist {
		return scene.Skylight()
	}

	return intensity.Multiply(attenuation / (dist * dist))
}
