package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// DirectionalLight is a light infinitely far away shining along Direction.
// It has no distance falloff.
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Intensity core.Vec3
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: core.Unit(direction), Intensity: intensity}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate implements core.Light. Any hit along the ray toward the light shadows the point.
func (dl *DirectionalLight) Illuminate(point, normal core.Vec3, scene core.Scene, sampler core.Sampler) core.Vec3 {
	attenuation := -normal.Dot(dl.Direction)
	if attenuation <= 0 {
		return scene.Skylight()
	}

	if _, isHit := scene.Raycast(point, dl.Direction.Negate()); isHit {
		return scene.Skylight()
	}

	return dl.Intensity.Multiply(attenuation)
}
