package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a floor and a single sphere lit by a tilted square area light.
// The camera sits at the origin looking down +x.
func NewDefaultScene() (*Scene, *geometry.Camera) {
	camera := geometry.NewCamera(core.NewVec3(0, 0, 0), core.IdentityRotation())

	s := NewScene(nil, nil, core.Vec3{})

	// Floor one unit below the camera
	s.AddObject(
		geometry.NewInfinitePlane(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
		material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)),
	)
	s.AddObject(
		geometry.NewSphere(core.NewVec3(3, 0, 0), 1.0),
		material.NewDiffuse(core.NewVec3(0.9, 0.35, 0.25)),
	)

	// Half-size patch above and to the right of the camera, turned 45° about z
	s.AddLight(lights.NewAreaLight(
		core.NewSimilarity(core.NewVec3(0, 1, 1), core.NewRotationFromEuler(0, 0, -math.Pi/4), 0.5),
		core.NewVec3(1, 1, 1),
		lights.AreaSamplingGrid,
		lights.DefaultGridHalfWidth,
	))

	return s, camera
}
