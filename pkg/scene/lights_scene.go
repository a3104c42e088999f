package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewLightsScene creates two spheres on a disc lit by two point lights and a dim sun
func NewLightsScene() (*Scene, *geometry.Camera) {
	camera := geometry.NewCamera(core.NewVec3(0, 0, 0), core.IdentityRotation())

	s := NewScene(nil, nil, core.NewVec3(0.02, 0.02, 0.03))

	s.AddObject(
		geometry.NewDisc(core.NewVec3(3, 0, -1), core.NewVec3(0, 0, 1), 2.5),
		material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7)),
	)
	s.AddObject(
		geometry.NewSphere(core.NewVec3(2, 0.5, 0.5), 0.6),
		material.NewDiffuse(core.NewVec3(0.2, 0.4, 0.9)),
	)
	s.AddObject(
		geometry.NewSphere(core.NewVec3(3, 0, 0), 1.0),
		material.NewDiffuse(core.NewVec3(0.9, 0.8, 0.3)),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 1, 0.5), core.NewVec3(1, 1, 1)))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, -1, 0.5), core.NewVec3(1, 1, 1)))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, -1), core.NewVec3(0.1, 0.1, 0.1)))

	return s, camera
}
