package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type MaterialType string

const (
	MaterialTypeDiffuse           MaterialType = "diffuse"
	MaterialTypeReflective        MaterialType = "reflective"
	MaterialTypePerfectReflective MaterialType = "perfect_reflective"
)

// Material computes the light leaving a surface hit.
// The set is closed: Diffuse, Reflective and PerfectReflective.
//
// Materials never trace rays themselves. Reflections are returned as Bounces,
// which the renderer traces and adds to Direct, weighted per bounce.
type Material interface {
	Type() MaterialType
	ComputeLight(ctx ShadingContext, hit core.HitInfo) Shading
}

// ShadingContext carries the per-ray state a material needs
type ShadingContext struct {
	Scene    core.Scene
	Info     core.RayCastInfo // depth of the ray that produced the hit
	MaxDepth int              // bounce limit
	Sampler  core.Sampler
}

// Exhausted reports whether the ray chain has passed the bounce limit
func (ctx ShadingContext) Exhausted() bool {
	return ctx.Info.Depth() > ctx.MaxDepth
}

// Shading is the outgoing light of a hit: Direct + Σ Weight ⊙ trace(Bounce.Direction)
type Shading struct {
	Direct  core.Vec3
	Bounces []Bounce
}

// Bounce requests a secondary ray from the hit point
type Bounce struct {
	Direction core.Vec3 // unit direction
	Weight    core.Vec3
}

// skylightOnly ends a chain, returning the ambient color
func skylightOnly(ctx ShadingContext) Shading {
	return Shading{Direct: ctx.Scene.Skylight()}
}
