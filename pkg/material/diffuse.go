package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Diffuse represents a Lambertian surface lit only by direct light
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

func (d *Diffuse) Type() MaterialType {
	return MaterialTypeDiffuse
}

// ComputeLight sums the contribution of every light and tints it by the albedo
func (d *Diffuse) ComputeLight(ctx ShadingContext, hit core.HitInfo) Shading {
	var incoming core.Vec3
	for _, light := range ctx.Scene.Lights() {
		incoming = incoming.Add(light.Illuminate(hit.Point, hit.Normal, ctx.Scene, ctx.Sampler))
	}
	return Shading{Direct: incoming.MultiplyVec(d.Albedo)}
}
