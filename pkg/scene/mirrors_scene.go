package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates a rough mirror sphere and a diffuse sphere in front
// of a tinted circular mirror, lit by a Monte Carlo area light
func NewMirrorsScene() (*Scene, *geometry.Camera) {
	// Slightly raised, looking a little down
	camera := geometry.NewCamera(core.NewVec3(-1, 0, 0.5), core.NewRotationFromEuler(0, 0.15, 0))

	s := NewScene(nil, nil, core.NewVec3(0.05, 0.05, 0.08))

	s.AddObject(
		geometry.NewInfinitePlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)),
		material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6)),
	)
	s.AddObject(
		geometry.NewDisc(core.NewVec3(6, 0, 0.5), core.NewVec3(-1, 0, 0), 3),
		material.NewPerfectReflective(core.NewVec3(0.9, 0.9, 0.95)),
	)
	s.AddObject(
		geometry.NewSphere(core.NewVec3(3, -1.2, -0.2), 0.8),
		material.NewReflective(0.08, 8),
	)
	s.AddObject(
		geometry.NewSphere(core.NewVec3(3, 1.2, -0.2), 0.8),
		material.NewDiffuse(core.NewVec3(0.85, 0.2, 0.2)),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(1, 0, 3), core.NewVec3(4, 4, 4)))
	// Patch facing down, above the spheres
	s.AddLight(lights.NewAreaLight(
		core.NewSimilarity(core.NewVec3(3, 0, 2.5), core.NewRotationFromEuler(0, math.Pi/2, 0), 0.75),
		core.NewVec3(2, 2, 2),
		lights.AreaSamplingMonteCarlo,
		lights.DefaultMonteCarloSamples,
	))

	return s, camera
}
