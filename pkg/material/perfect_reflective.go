package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PerfectReflective is an ideal tinted mirror: a single, unperturbed reflection
type PerfectReflective struct {
	Tint core.Vec3
}

// NewPerfectReflective creates a new mirror material
func NewPerfectReflective(tint core.Vec3) *PerfectReflective {
	return &PerfectReflective{Tint: tint}
}

func (p *PerfectReflective) Type() MaterialType {
	return MaterialTypePerfectReflective
}

// ComputeLight returns the mirror bounce weighted by the tint
func (p *PerfectReflective) ComputeLight(ctx ShadingContext, hit core.HitInfo) Shading {
	if ctx.Exhausted() {
		return skylightOnly(ctx)
	}

	return Shading{
		Bounces: []Bounce{{
			Direction: core.Reflect(hit.Incoming, hit.Normal),
			Weight:    p.Tint,
		}},
	}
}
